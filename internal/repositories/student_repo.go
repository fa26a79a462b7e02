package repositories

import (
	"context"
	"errors"

	"rnbridge/internal/common"
	"rnbridge/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	List(ctx context.Context) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Update(ctx context.Context, student *models.Student) (*models.Student, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
	ListByStatus(ctx context.Context, status string) ([]*models.Student, error)
	ListByCountry(ctx context.Context, country string) ([]*models.Student, error)
}

type studentRepo struct {
	db Database
}

func NewStudentRepository(db Database) StudentRepository {
	return &studentRepo{db: db}
}

const studentColumns = `id, first_name, last_name, email, phone, country_of_origin,
		desired_country, desired_program, education_level, english_level,
		budget_range, message, status, created_at, updated_at`

func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(&student.ID, &student.FirstName, &student.LastName, &student.Email,
		&student.Phone, &student.CountryOfOrigin, &student.DesiredCountry, &student.DesiredProgram,
		&student.EducationLevel, &student.EnglishLevel, &student.BudgetRange, &student.Message,
		&student.Status, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// Create inserts the application, relying on the unique constraint on
// students.email. A 23505 violation maps to common.ErrDuplicateEmail so
// concurrent submissions with the same email cannot both land.
func (r *studentRepo) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (
			first_name, last_name, email, phone, country_of_origin,
			desired_country, desired_program, education_level,
			english_level, budget_range, message
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, status, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		student.FirstName, student.LastName, student.Email, student.Phone, student.CountryOfOrigin,
		student.DesiredCountry, student.DesiredProgram, student.EducationLevel,
		student.EnglishLevel, student.BudgetRange, student.Message).
		Scan(&student.ID, &student.Status, &student.CreatedAt, &student.UpdatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return common.ErrDuplicateEmail
	}
	return err
}

func (r *studentRepo) List(ctx context.Context) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY created_at DESC`
	return r.queryStudents(ctx, query)
}

func (r *studentRepo) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return student, nil
}

// Update overwrites every mutable field and refreshes updated_at.
func (r *studentRepo) Update(ctx context.Context, student *models.Student) (*models.Student, error) {
	query := `
		UPDATE students
		SET first_name = $1, last_name = $2, phone = $3,
			country_of_origin = $4, desired_country = $5,
			desired_program = $6, education_level = $7,
			english_level = $8, budget_range = $9, message = $10,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $11
		RETURNING ` + studentColumns
	updated, err := scanStudent(r.db.QueryRow(ctx, query,
		student.FirstName, student.LastName, student.Phone,
		student.CountryOfOrigin, student.DesiredCountry,
		student.DesiredProgram, student.EducationLevel,
		student.EnglishLevel, student.BudgetRange, student.Message,
		student.ID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *studentRepo) UpdateStatus(ctx context.Context, id int64, status string) (*models.Student, error) {
	query := `
		UPDATE students
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING ` + studentColumns
	student, err := scanStudent(r.db.QueryRow(ctx, query, status, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return student, nil
}

func (r *studentRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *studentRepo) ListByStatus(ctx context.Context, status string) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE status = $1 ORDER BY created_at DESC`
	return r.queryStudents(ctx, query, status)
}

func (r *studentRepo) ListByCountry(ctx context.Context, country string) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE desired_country = $1 ORDER BY created_at DESC`
	return r.queryStudents(ctx, query, country)
}

func (r *studentRepo) queryStudents(ctx context.Context, query string, args ...any) ([]*models.Student, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}
