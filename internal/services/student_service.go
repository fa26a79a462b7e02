package services

import (
	"context"
	"log"

	"rnbridge/internal/common"
	"rnbridge/internal/models"
	"rnbridge/internal/repositories"
)

type StudentService interface {
	Apply(ctx context.Context, student *models.Student) error
	List(ctx context.Context) ([]*models.Student, error)
	Get(ctx context.Context, id int64) (*models.Student, error)
	Update(ctx context.Context, student *models.Student) (*models.Student, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
	ListByStatus(ctx context.Context, status string) ([]*models.Student, error)
	ListByCountry(ctx context.Context, country string) ([]*models.Student, error)
}

type studentService struct {
	studentRepo repositories.StudentRepository
	notifier    NotificationService
}

func NewStudentService(studentRepo repositories.StudentRepository, notifier NotificationService) StudentService {
	return &studentService{
		studentRepo: studentRepo,
		notifier:    notifier,
	}
}

// Apply validates and inserts the application. Email uniqueness is enforced
// by the store constraint; the repository surfaces duplicates as
// common.ErrDuplicateEmail. The receipt email never fails the request.
func (s *studentService) Apply(ctx context.Context, student *models.Student) error {
	if err := common.ValidateRequiredString(student.FirstName, "first_name"); err != nil {
		return err
	}
	if err := common.ValidateRequiredString(student.LastName, "last_name"); err != nil {
		return err
	}
	if err := common.ValidateRequiredString(student.Email, "email"); err != nil {
		return err
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return err
	}

	if err := s.notifier.SendApplicationReceipt(ctx, student); err != nil {
		log.Printf("Email sending failed: %v", err)
	}

	return nil
}

func (s *studentService) List(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.List(ctx)
}

func (s *studentService) Get(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

func (s *studentService) Update(ctx context.Context, student *models.Student) (*models.Student, error) {
	if err := common.ValidateRequiredString(student.FirstName, "first_name"); err != nil {
		return nil, err
	}
	if err := common.ValidateRequiredString(student.LastName, "last_name"); err != nil {
		return nil, err
	}
	return s.studentRepo.Update(ctx, student)
}

func (s *studentService) UpdateStatus(ctx context.Context, id int64, status string) (*models.Student, error) {
	if err := common.ValidateRequiredString(status, "status"); err != nil {
		return nil, err
	}
	return s.studentRepo.UpdateStatus(ctx, id, status)
}

func (s *studentService) Delete(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}

func (s *studentService) ListByStatus(ctx context.Context, status string) ([]*models.Student, error) {
	return s.studentRepo.ListByStatus(ctx, status)
}

func (s *studentService) ListByCountry(ctx context.Context, country string) ([]*models.Student, error) {
	return s.studentRepo.ListByCountry(ctx, country)
}
