package models

import "time"

// Inquiry is a contact-form submission.
type Inquiry struct {
	ID                int64     `json:"id" db:"id"`
	Name              string    `json:"name" db:"name"`
	Email             string    `json:"email" db:"email"`
	Phone             *string   `json:"phone" db:"phone"`
	CountryOfInterest *string   `json:"country_of_interest" db:"country_of_interest"`
	Message           string    `json:"message" db:"message"`
	Status            string    `json:"status" db:"status"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}
