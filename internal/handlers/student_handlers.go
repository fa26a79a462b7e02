package handlers

import (
	"errors"
	"log"
	"net/http"

	"rnbridge/internal/common"
	"rnbridge/internal/models"
	"rnbridge/internal/services"

	"github.com/labstack/echo/v4"
)

// StudentHandlers handles student-application requests
type StudentHandlers struct {
	studentService services.StudentService
}

func NewStudentHandlers(studentService services.StudentService) *StudentHandlers {
	return &StudentHandlers{studentService: studentService}
}

// ApplyRequest is the student-application payload
type ApplyRequest struct {
	FirstName       string  `json:"first_name" validate:"required"`
	LastName        string  `json:"last_name" validate:"required"`
	Email           string  `json:"email" validate:"required"`
	Phone           *string `json:"phone"`
	CountryOfOrigin *string `json:"country_of_origin"`
	DesiredCountry  *string `json:"desired_country"`
	DesiredProgram  *string `json:"desired_program"`
	EducationLevel  *string `json:"education_level"`
	EnglishLevel    *string `json:"english_level"`
	BudgetRange     *string `json:"budget_range"`
	Message         *string `json:"message"`
}

func (r *ApplyRequest) toModel() *models.Student {
	return &models.Student{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		CountryOfOrigin: r.CountryOfOrigin,
		DesiredCountry:  r.DesiredCountry,
		DesiredProgram:  r.DesiredProgram,
		EducationLevel:  r.EducationLevel,
		EnglishLevel:    r.EnglishLevel,
		BudgetRange:     r.BudgetRange,
		Message:         r.Message,
	}
}

// Apply handles POST /api/students/apply
func (h *StudentHandlers) Apply(c echo.Context) error {
	var req ApplyRequest
	if err := c.Bind(&req); err != nil {
		return common.SendValidationError(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "First name, last name, and email are required")
	}

	student := req.toModel()
	if err := h.studentService.Apply(c.Request().Context(), student); err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return common.SendConflictError(c, "A student with this email already exists")
		}
		if common.IsValidationError(err) {
			return common.SendValidationError(c, err.Error())
		}
		log.Printf("Error submitting student application: %v", err)
		return common.SendServerError(c, "submit application")
	}

	data := submissionData{
		ID:        student.ID,
		Status:    student.Status,
		CreatedAt: student.CreatedAt,
	}
	return common.SendMessageData(c, http.StatusCreated, "Student application submitted successfully", data)
}

// ListStudents handles GET /api/students
func (h *StudentHandlers) ListStudents(c echo.Context) error {
	students, err := h.studentService.List(c.Request().Context())
	if err != nil {
		log.Printf("Error fetching students: %v", err)
		return common.SendServerError(c, "fetch students")
	}
	return common.SendData(c, http.StatusOK, students)
}

// GetStudent handles GET /api/students/:id
func (h *StudentHandlers) GetStudent(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return common.SendValidationError(c, "Invalid student ID format")
	}

	student, err := h.studentService.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.SendNotFoundError(c, "Student")
		}
		log.Printf("Error fetching student: %v", err)
		return common.SendServerError(c, "fetch student")
	}
	return common.SendData(c, http.StatusOK, student)
}

// UpdateStudentRequest is the full-record overwrite payload for PUT
type UpdateStudentRequest struct {
	FirstName       string  `json:"first_name" validate:"required"`
	LastName        string  `json:"last_name" validate:"required"`
	Phone           *string `json:"phone"`
	CountryOfOrigin *string `json:"country_of_origin"`
	DesiredCountry  *string `json:"desired_country"`
	DesiredProgram  *string `json:"desired_program"`
	EducationLevel  *string `json:"education_level"`
	EnglishLevel    *string `json:"english_level"`
	BudgetRange     *string `json:"budget_range"`
	Message         *string `json:"message"`
}

// UpdateStudent handles PUT /api/students/:id
func (h *StudentHandlers) UpdateStudent(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return common.SendValidationError(c, "Invalid student ID format")
	}

	var req UpdateStudentRequest
	if err := c.Bind(&req); err != nil {
		return common.SendValidationError(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "First name and last name are required")
	}

	student := &models.Student{
		ID:              id,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		CountryOfOrigin: req.CountryOfOrigin,
		DesiredCountry:  req.DesiredCountry,
		DesiredProgram:  req.DesiredProgram,
		EducationLevel:  req.EducationLevel,
		EnglishLevel:    req.EnglishLevel,
		BudgetRange:     req.BudgetRange,
		Message:         req.Message,
	}

	updated, err := h.studentService.Update(c.Request().Context(), student)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.SendNotFoundError(c, "Student")
		}
		if common.IsValidationError(err) {
			return common.SendValidationError(c, err.Error())
		}
		log.Printf("Error updating student: %v", err)
		return common.SendServerError(c, "update student")
	}
	return common.SendData(c, http.StatusOK, updated)
}

// UpdateStudentStatus handles PATCH /api/students/:id/status
func (h *StudentHandlers) UpdateStudentStatus(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return common.SendValidationError(c, "Invalid student ID format")
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return common.SendValidationError(c, "Invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return common.SendValidationError(c, "Status is required")
	}

	student, err := h.studentService.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.SendNotFoundError(c, "Student")
		}
		log.Printf("Error updating student status: %v", err)
		return common.SendServerError(c, "update student status")
	}
	return common.SendData(c, http.StatusOK, student)
}

// DeleteStudent handles DELETE /api/students/:id
func (h *StudentHandlers) DeleteStudent(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return common.SendValidationError(c, "Invalid student ID format")
	}

	if err := h.studentService.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.SendNotFoundError(c, "Student")
		}
		log.Printf("Error deleting student: %v", err)
		return common.SendServerError(c, "delete student")
	}
	return common.SendMessage(c, http.StatusOK, "Student deleted successfully")
}

// ListStudentsByStatus handles GET /api/students/status/:status
func (h *StudentHandlers) ListStudentsByStatus(c echo.Context) error {
	students, err := h.studentService.ListByStatus(c.Request().Context(), c.Param("status"))
	if err != nil {
		log.Printf("Error fetching students by status: %v", err)
		return common.SendServerError(c, "fetch students")
	}
	return common.SendData(c, http.StatusOK, students)
}

// ListStudentsByCountry handles GET /api/students/country/:country
func (h *StudentHandlers) ListStudentsByCountry(c echo.Context) error {
	students, err := h.studentService.ListByCountry(c.Request().Context(), c.Param("country"))
	if err != nil {
		log.Printf("Error fetching students by country: %v", err)
		return common.SendServerError(c, "fetch students")
	}
	return common.SendData(c, http.StatusOK, students)
}
