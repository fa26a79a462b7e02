package services

import (
	"context"
	"log"
	"time"

	"rnbridge/internal/caching"
	"rnbridge/internal/common"
	"rnbridge/internal/models"
	"rnbridge/internal/repositories"
)

const directoryCacheTTL = 5 * time.Minute

type UniversityService interface {
	Create(ctx context.Context, university *models.University) error
	List(ctx context.Context) ([]*models.University, error)
	Get(ctx context.Context, id int64) (*models.University, error)
	ListByCountry(ctx context.Context, country string) ([]*models.University, error)
	ListByProgram(ctx context.Context, program string) ([]*models.University, error)
	Search(ctx context.Context, query string) ([]*models.University, error)
	ListByBudget(ctx context.Context, min, max float64) ([]*models.University, error)
	Update(ctx context.Context, university *models.University) (*models.University, error)
	Delete(ctx context.Context, id int64) error
}

type universityService struct {
	universityRepo repositories.UniversityRepository
	cache          caching.CacheService
}

func NewUniversityService(universityRepo repositories.UniversityRepository, cache caching.CacheService) UniversityService {
	return &universityService{
		universityRepo: universityRepo,
		cache:          cache,
	}
}

func (s *universityService) Create(ctx context.Context, university *models.University) error {
	if err := common.ValidateRequiredString(university.Name, "name"); err != nil {
		return err
	}
	if err := common.ValidateRequiredString(university.Country, "country"); err != nil {
		return err
	}

	if err := s.universityRepo.Create(ctx, university); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

// List serves the full directory through the cache when possible.
func (s *universityService) List(ctx context.Context) ([]*models.University, error) {
	if cached, err := s.cache.GetUniversityList(ctx, "all"); err == nil {
		return cached, nil
	}

	universities, err := s.universityRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetUniversityList(ctx, "all", universities, directoryCacheTTL); err != nil {
		log.Printf("Failed to cache university list: %v", err)
	}
	return universities, nil
}

func (s *universityService) Get(ctx context.Context, id int64) (*models.University, error) {
	if cached, err := s.cache.GetUniversity(ctx, id); err == nil {
		return cached, nil
	}

	university, err := s.universityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetUniversity(ctx, university, directoryCacheTTL); err != nil {
		log.Printf("Failed to cache university %d: %v", id, err)
	}
	return university, nil
}

func (s *universityService) ListByCountry(ctx context.Context, country string) ([]*models.University, error) {
	return s.universityRepo.ListByCountry(ctx, country)
}

func (s *universityService) ListByProgram(ctx context.Context, program string) ([]*models.University, error) {
	return s.universityRepo.ListByProgram(ctx, program)
}

func (s *universityService) Search(ctx context.Context, query string) ([]*models.University, error) {
	return s.universityRepo.Search(ctx, query)
}

func (s *universityService) ListByBudget(ctx context.Context, min, max float64) ([]*models.University, error) {
	return s.universityRepo.ListByBudget(ctx, min, max)
}

func (s *universityService) Update(ctx context.Context, university *models.University) (*models.University, error) {
	if err := common.ValidateRequiredString(university.Name, "name"); err != nil {
		return nil, err
	}
	if err := common.ValidateRequiredString(university.Country, "country"); err != nil {
		return nil, err
	}

	updated, err := s.universityRepo.Update(ctx, university)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return updated, nil
}

func (s *universityService) Delete(ctx context.Context, id int64) error {
	if err := s.universityRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *universityService) invalidate(ctx context.Context) {
	if err := s.cache.InvalidateUniversities(ctx); err != nil {
		log.Printf("Failed to invalidate university cache: %v", err)
	}
}
