package repositories

import (
	"context"

	"rnbridge/internal/models"
)

// CatalogRepository serves the read-only marketing content: consulting
// services and approved student testimonials.
type CatalogRepository interface {
	ListServices(ctx context.Context) ([]*models.Service, error)
	ListTestimonials(ctx context.Context) ([]*models.Testimonial, error)
}

type catalogRepo struct {
	db Database
}

func NewCatalogRepository(db Database) CatalogRepository {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) ListServices(ctx context.Context) ([]*models.Service, error) {
	query := `
		SELECT id, name, description, price, duration, is_active, created_at
		FROM services
		WHERE is_active = true
		ORDER BY id ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*models.Service
	for rows.Next() {
		svc := &models.Service{}
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.Description, &svc.Price, &svc.Duration, &svc.IsActive, &svc.CreatedAt); err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	return services, rows.Err()
}

func (r *catalogRepo) ListTestimonials(ctx context.Context) ([]*models.Testimonial, error) {
	query := `
		SELECT id, student_name, country, university, program, testimonial, rating, is_approved, created_at
		FROM testimonials
		WHERE is_approved = true
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var testimonials []*models.Testimonial
	for rows.Next() {
		t := &models.Testimonial{}
		if err := rows.Scan(&t.ID, &t.StudentName, &t.Country, &t.University, &t.Program, &t.Testimonial, &t.Rating, &t.IsApproved, &t.CreatedAt); err != nil {
			return nil, err
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}
