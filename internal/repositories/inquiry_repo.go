package repositories

import (
	"context"
	"errors"

	"rnbridge/internal/common"
	"rnbridge/internal/models"

	"github.com/jackc/pgx/v5"
)

type InquiryRepository interface {
	Ping(ctx context.Context) error
	Create(ctx context.Context, inquiry *models.Inquiry) error
	List(ctx context.Context) ([]*models.Inquiry, error)
	GetByID(ctx context.Context, id int64) (*models.Inquiry, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Inquiry, error)
	Delete(ctx context.Context, id int64) error
}

type inquiryRepo struct {
	db Database
}

func NewInquiryRepository(db Database) InquiryRepository {
	return &inquiryRepo{db: db}
}

// Ping is the liveness probe used by the submit path before attempting a
// real write.
func (r *inquiryRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *inquiryRepo) Create(ctx context.Context, inquiry *models.Inquiry) error {
	query := `
		INSERT INTO contact_inquiries (name, email, phone, country_of_interest, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, status, created_at
	`
	return r.db.QueryRow(ctx, query, inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.CountryOfInterest, inquiry.Message).
		Scan(&inquiry.ID, &inquiry.Status, &inquiry.CreatedAt)
}

func (r *inquiryRepo) List(ctx context.Context) ([]*models.Inquiry, error) {
	query := `
		SELECT id, name, email, phone, country_of_interest, message, status, created_at
		FROM contact_inquiries
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inquiries []*models.Inquiry
	for rows.Next() {
		inquiry := &models.Inquiry{}
		if err := rows.Scan(&inquiry.ID, &inquiry.Name, &inquiry.Email, &inquiry.Phone, &inquiry.CountryOfInterest, &inquiry.Message, &inquiry.Status, &inquiry.CreatedAt); err != nil {
			return nil, err
		}
		inquiries = append(inquiries, inquiry)
	}
	return inquiries, rows.Err()
}

func (r *inquiryRepo) GetByID(ctx context.Context, id int64) (*models.Inquiry, error) {
	inquiry := &models.Inquiry{}
	query := `
		SELECT id, name, email, phone, country_of_interest, message, status, created_at
		FROM contact_inquiries
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).
		Scan(&inquiry.ID, &inquiry.Name, &inquiry.Email, &inquiry.Phone, &inquiry.CountryOfInterest, &inquiry.Message, &inquiry.Status, &inquiry.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return inquiry, nil
}

func (r *inquiryRepo) UpdateStatus(ctx context.Context, id int64, status string) (*models.Inquiry, error) {
	inquiry := &models.Inquiry{}
	query := `
		UPDATE contact_inquiries
		SET status = $1
		WHERE id = $2
		RETURNING id, name, email, phone, country_of_interest, message, status, created_at
	`
	err := r.db.QueryRow(ctx, query, status, id).
		Scan(&inquiry.ID, &inquiry.Name, &inquiry.Email, &inquiry.Phone, &inquiry.CountryOfInterest, &inquiry.Message, &inquiry.Status, &inquiry.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return inquiry, nil
}

func (r *inquiryRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM contact_inquiries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}
