package database

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

var tableStatements = []string{
	`CREATE TABLE IF NOT EXISTS students (
		id SERIAL PRIMARY KEY,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		phone VARCHAR(20),
		country_of_origin VARCHAR(100),
		desired_country VARCHAR(100),
		desired_program VARCHAR(200),
		education_level VARCHAR(50),
		english_level VARCHAR(20),
		budget_range VARCHAR(50),
		message TEXT,
		status VARCHAR(50) DEFAULT 'pending',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS universities (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		country VARCHAR(100) NOT NULL,
		city VARCHAR(100),
		ranking INTEGER,
		tuition_fee_min DECIMAL(10,2),
		tuition_fee_max DECIMAL(10,2),
		programs TEXT[],
		requirements TEXT,
		application_deadline DATE,
		website_url VARCHAR(255),
		contact_email VARCHAR(255),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS contact_inquiries (
		id SERIAL PRIMARY KEY,
		name VARCHAR(200) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(20),
		country_of_interest VARCHAR(100),
		message TEXT NOT NULL,
		status VARCHAR(50) DEFAULT 'new',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS services (
		id SERIAL PRIMARY KEY,
		name VARCHAR(200) NOT NULL,
		description TEXT,
		price DECIMAL(10,2),
		duration VARCHAR(50),
		is_active BOOLEAN DEFAULT true,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS testimonials (
		id SERIAL PRIMARY KEY,
		student_name VARCHAR(200) NOT NULL,
		country VARCHAR(100),
		university VARCHAR(200),
		program VARCHAR(200),
		testimonial TEXT NOT NULL,
		rating INTEGER CHECK (rating >= 1 AND rating <= 5),
		is_approved BOOLEAN DEFAULT false,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
}

// CreateTables creates the five application tables if they do not exist.
func CreateTables(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range tableStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	log.Println("Database tables created successfully")
	return nil
}

var seedStatements = []string{
	`INSERT INTO universities (name, country, city, ranking, tuition_fee_min, tuition_fee_max, programs, requirements, website_url, contact_email)
	SELECT * FROM (VALUES
		('University of Oxford', 'United Kingdom', 'Oxford', 1, 25000::DECIMAL, 35000::DECIMAL, ARRAY['Computer Science', 'Business', 'Engineering'], 'IELTS 7.0, Strong academic background', 'https://www.ox.ac.uk', 'admissions@ox.ac.uk'),
		('Harvard University', 'United States', 'Cambridge', 2, 45000::DECIMAL, 55000::DECIMAL, ARRAY['Computer Science', 'Business', 'Medicine'], 'TOEFL 100, SAT scores required', 'https://www.harvard.edu', 'admissions@harvard.edu'),
		('Technical University of Munich', 'Germany', 'Munich', 50, 1500::DECIMAL, 3000::DECIMAL, ARRAY['Engineering', 'Computer Science', 'Business'], 'German B2 or English C1', 'https://www.tum.de', 'info@tum.de'),
		('University of Melbourne', 'Australia', 'Melbourne', 41, 30000::DECIMAL, 45000::DECIMAL, ARRAY['Computer Science', 'Business', 'Arts'], 'IELTS 6.5, Academic transcripts', 'https://www.unimelb.edu.au', 'admissions@unimelb.edu.au'),
		('University of Toronto', 'Canada', 'Toronto', 26, 35000::DECIMAL, 50000::DECIMAL, ARRAY['Computer Science', 'Business', 'Medicine'], 'IELTS 6.5, Academic excellence', 'https://www.utoronto.ca', 'admissions@utoronto.ca')
	) AS v(name, country, city, ranking, tuition_fee_min, tuition_fee_max, programs, requirements, website_url, contact_email)
	WHERE NOT EXISTS (SELECT 1 FROM universities)`,
	`INSERT INTO services (name, description, price, duration)
	SELECT * FROM (VALUES
		('University Application', 'Complete university application support including document preparation and submission', 500::DECIMAL, '2-4 weeks'),
		('Visa Application', 'Comprehensive visa application assistance with document preparation', 300::DECIMAL, '1-2 weeks'),
		('Language Training', 'IELTS/TOEFL preparation courses with certified instructors', 200::DECIMAL, '8-12 weeks'),
		('Documentation Services', 'Transcript evaluation and credential assessment services', 150::DECIMAL, '1 week'),
		('Career Guidance', 'Professional career counseling and job placement assistance', 250::DECIMAL, 'Ongoing'),
		('Student Support', '24/7 support including accommodation and airport pickup', 100::DECIMAL, 'Ongoing')
	) AS v(name, description, price, duration)
	WHERE NOT EXISTS (SELECT 1 FROM services)`,
	`INSERT INTO testimonials (student_name, country, university, program, testimonial, rating, is_approved)
	SELECT * FROM (VALUES
		('Ahmed Hassan', 'Egypt', 'University of Oxford', 'Computer Science', 'RNBRIDGE LTD made my dream of studying abroad a reality. Their professional guidance throughout the application process was invaluable.', 5, true),
		('Maria Rodriguez', 'Spain', 'Harvard University', 'Business Administration', 'Excellent service from start to finish. The team was always available to answer my questions and provide support.', 5, true),
		('Li Wei', 'China', 'Technical University of Munich', 'Engineering', 'The visa application process was smooth and efficient. Highly recommend their services for international students.', 5, true),
		('Sarah Johnson', 'Nigeria', 'University of Melbourne', 'Computer Science', 'Professional, reliable, and trustworthy. They helped me secure admission to my dream university.', 5, true),
		('David Kim', 'South Korea', 'University of Toronto', 'Medicine', 'Outstanding support throughout my application journey. The team is knowledgeable and caring.', 5, true)
	) AS v(student_name, country, university, program, testimonial, rating, is_approved)
	WHERE NOT EXISTS (SELECT 1 FROM testimonials)`,
}

// InsertSampleData seeds universities, services and testimonials. Each
// statement only inserts when its table is still empty, so reruns are no-ops.
func InsertSampleData(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range seedStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	log.Println("Sample data inserted successfully")
	return nil
}
