package models

import "time"

// University is a directory record searchable by country, program or budget.
// Programs maps to a Postgres TEXT[] column and keeps its insertion order.
type University struct {
	ID                  int64      `json:"id" db:"id"`
	Name                string     `json:"name" db:"name"`
	Country             string     `json:"country" db:"country"`
	City                *string    `json:"city" db:"city"`
	Ranking             *int       `json:"ranking" db:"ranking"`
	TuitionFeeMin       *float64   `json:"tuition_fee_min" db:"tuition_fee_min"`
	TuitionFeeMax       *float64   `json:"tuition_fee_max" db:"tuition_fee_max"`
	Programs            []string   `json:"programs" db:"programs"`
	Requirements        *string    `json:"requirements" db:"requirements"`
	ApplicationDeadline *time.Time `json:"application_deadline" db:"application_deadline"`
	WebsiteURL          *string    `json:"website_url" db:"website_url"`
	ContactEmail        *string    `json:"contact_email" db:"contact_email"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
}
