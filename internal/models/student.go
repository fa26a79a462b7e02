package models

import "time"

// Student is a submitted study-abroad application. Email is unique across
// all applications; the constraint lives on the students table.
type Student struct {
	ID              int64     `json:"id" db:"id"`
	FirstName       string    `json:"first_name" db:"first_name"`
	LastName        string    `json:"last_name" db:"last_name"`
	Email           string    `json:"email" db:"email"`
	Phone           *string   `json:"phone" db:"phone"`
	CountryOfOrigin *string   `json:"country_of_origin" db:"country_of_origin"`
	DesiredCountry  *string   `json:"desired_country" db:"desired_country"`
	DesiredProgram  *string   `json:"desired_program" db:"desired_program"`
	EducationLevel  *string   `json:"education_level" db:"education_level"`
	EnglishLevel    *string   `json:"english_level" db:"english_level"`
	BudgetRange     *string   `json:"budget_range" db:"budget_range"`
	Message         *string   `json:"message" db:"message"`
	Status          string    `json:"status" db:"status"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
