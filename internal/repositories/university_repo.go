package repositories

import (
	"context"
	"errors"

	"rnbridge/internal/common"
	"rnbridge/internal/models"

	"github.com/jackc/pgx/v5"
)

type UniversityRepository interface {
	Create(ctx context.Context, university *models.University) error
	List(ctx context.Context) ([]*models.University, error)
	GetByID(ctx context.Context, id int64) (*models.University, error)
	ListByCountry(ctx context.Context, country string) ([]*models.University, error)
	ListByProgram(ctx context.Context, program string) ([]*models.University, error)
	Search(ctx context.Context, query string) ([]*models.University, error)
	ListByBudget(ctx context.Context, min, max float64) ([]*models.University, error)
	Update(ctx context.Context, university *models.University) (*models.University, error)
	Delete(ctx context.Context, id int64) error
}

type universityRepo struct {
	db Database
}

func NewUniversityRepository(db Database) UniversityRepository {
	return &universityRepo{db: db}
}

const universityColumns = `id, name, country, city, ranking, tuition_fee_min, tuition_fee_max,
		programs, requirements, application_deadline, website_url, contact_email, created_at`

func scanUniversity(row pgx.Row) (*models.University, error) {
	u := &models.University{}
	err := row.Scan(&u.ID, &u.Name, &u.Country, &u.City, &u.Ranking, &u.TuitionFeeMin, &u.TuitionFeeMax,
		&u.Programs, &u.Requirements, &u.ApplicationDeadline, &u.WebsiteURL, &u.ContactEmail, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *universityRepo) Create(ctx context.Context, university *models.University) error {
	query := `
		INSERT INTO universities (
			name, country, city, ranking, tuition_fee_min,
			tuition_fee_max, programs, requirements,
			application_deadline, website_url, contact_email
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query,
		university.Name, university.Country, university.City, university.Ranking, university.TuitionFeeMin,
		university.TuitionFeeMax, university.Programs, university.Requirements,
		university.ApplicationDeadline, university.WebsiteURL, university.ContactEmail).
		Scan(&university.ID, &university.CreatedAt)
}

// List orders by ranking then name; ranking NULLs sort last so unranked
// entries trail the directory.
func (r *universityRepo) List(ctx context.Context) ([]*models.University, error) {
	query := `SELECT ` + universityColumns + ` FROM universities ORDER BY ranking ASC NULLS LAST, name ASC`
	return r.queryUniversities(ctx, query)
}

func (r *universityRepo) GetByID(ctx context.Context, id int64) (*models.University, error) {
	query := `SELECT ` + universityColumns + ` FROM universities WHERE id = $1`
	u, err := scanUniversity(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *universityRepo) ListByCountry(ctx context.Context, country string) ([]*models.University, error) {
	query := `SELECT ` + universityColumns + ` FROM universities WHERE country = $1 ORDER BY ranking ASC NULLS LAST`
	return r.queryUniversities(ctx, query, country)
}

func (r *universityRepo) ListByProgram(ctx context.Context, program string) ([]*models.University, error) {
	query := `SELECT ` + universityColumns + ` FROM universities WHERE $1 = ANY(programs) ORDER BY ranking ASC NULLS LAST`
	return r.queryUniversities(ctx, query, program)
}

// Search matches a case-insensitive substring against name, country or city.
func (r *universityRepo) Search(ctx context.Context, query string) ([]*models.University, error) {
	sql := `SELECT ` + universityColumns + ` FROM universities
		WHERE name ILIKE $1 OR country ILIKE $1 OR city ILIKE $1
		ORDER BY ranking ASC NULLS LAST`
	return r.queryUniversities(ctx, sql, "%"+query+"%")
}

func (r *universityRepo) ListByBudget(ctx context.Context, min, max float64) ([]*models.University, error) {
	query := `SELECT ` + universityColumns + ` FROM universities
		WHERE tuition_fee_min >= $1 AND tuition_fee_max <= $2
		ORDER BY tuition_fee_min ASC`
	return r.queryUniversities(ctx, query, min, max)
}

func (r *universityRepo) Update(ctx context.Context, university *models.University) (*models.University, error) {
	query := `
		UPDATE universities
		SET name = $1, country = $2, city = $3, ranking = $4,
			tuition_fee_min = $5, tuition_fee_max = $6, programs = $7,
			requirements = $8, application_deadline = $9,
			website_url = $10, contact_email = $11
		WHERE id = $12
		RETURNING ` + universityColumns
	updated, err := scanUniversity(r.db.QueryRow(ctx, query,
		university.Name, university.Country, university.City, university.Ranking,
		university.TuitionFeeMin, university.TuitionFeeMax, university.Programs,
		university.Requirements, university.ApplicationDeadline,
		university.WebsiteURL, university.ContactEmail, university.ID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *universityRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM universities WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *universityRepo) queryUniversities(ctx context.Context, query string, args ...any) ([]*models.University, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var universities []*models.University
	for rows.Next() {
		u, err := scanUniversity(rows)
		if err != nil {
			return nil, err
		}
		universities = append(universities, u)
	}
	return universities, rows.Err()
}
