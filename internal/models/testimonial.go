package models

import "time"

// Testimonial is a student review; only approved rows are served publicly.
type Testimonial struct {
	ID          int64     `json:"id" db:"id"`
	StudentName string    `json:"student_name" db:"student_name"`
	Country     *string   `json:"country" db:"country"`
	University  *string   `json:"university" db:"university"`
	Program     *string   `json:"program" db:"program"`
	Testimonial string    `json:"testimonial" db:"testimonial"`
	Rating      *int      `json:"rating" db:"rating"`
	IsApproved  bool      `json:"is_approved" db:"is_approved"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
