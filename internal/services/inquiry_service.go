package services

import (
	"context"
	"log"

	"rnbridge/internal/common"
	"rnbridge/internal/models"
	"rnbridge/internal/repositories"
)

// SubmitResult is the outcome of a contact submission. Degraded marks the
// fallback path where nothing was persisted.
type SubmitResult struct {
	Inquiry  *models.Inquiry
	Degraded bool
}

type InquiryService interface {
	Submit(ctx context.Context, inquiry *models.Inquiry) (*SubmitResult, error)
	List(ctx context.Context) ([]*models.Inquiry, error)
	Get(ctx context.Context, id int64) (*models.Inquiry, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*models.Inquiry, error)
	Delete(ctx context.Context, id int64) error
}

type inquiryService struct {
	inquiryRepo repositories.InquiryRepository
	notifier    NotificationService
	degraded    DegradedModeResponder
}

func NewInquiryService(inquiryRepo repositories.InquiryRepository, notifier NotificationService, degraded DegradedModeResponder) InquiryService {
	return &inquiryService{
		inquiryRepo: inquiryRepo,
		notifier:    notifier,
		degraded:    degraded,
	}
}

// Submit validates the inquiry, probes the store, and either persists the
// row or answers through the degraded responder. Notifications run after
// the commit and their outcome is discarded.
func (s *inquiryService) Submit(ctx context.Context, inquiry *models.Inquiry) (*SubmitResult, error) {
	if err := common.ValidateRequiredString(inquiry.Name, "name"); err != nil {
		return nil, err
	}
	if err := common.ValidateRequiredString(inquiry.Email, "email"); err != nil {
		return nil, err
	}
	if err := common.ValidateRequiredString(inquiry.Message, "message"); err != nil {
		return nil, err
	}

	if err := s.inquiryRepo.Ping(ctx); err != nil {
		log.Printf("Database connection error: %v", err)
		return &SubmitResult{Inquiry: s.degraded.Respond(inquiry), Degraded: true}, nil
	}

	if err := s.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	// Commit done; notify best effort. A relay outage must not fail the
	// submission, so both results are logged and dropped here.
	if err := s.notifier.SendContactNotification(ctx, inquiry); err != nil {
		log.Printf("Email sending failed: %v", err)
	}
	if err := s.notifier.SendContactConfirmation(ctx, inquiry); err != nil {
		log.Printf("Email sending failed: %v", err)
	}

	return &SubmitResult{Inquiry: inquiry}, nil
}

func (s *inquiryService) List(ctx context.Context) ([]*models.Inquiry, error) {
	return s.inquiryRepo.List(ctx)
}

func (s *inquiryService) Get(ctx context.Context, id int64) (*models.Inquiry, error) {
	return s.inquiryRepo.GetByID(ctx, id)
}

func (s *inquiryService) UpdateStatus(ctx context.Context, id int64, status string) (*models.Inquiry, error) {
	if err := common.ValidateRequiredString(status, "status"); err != nil {
		return nil, err
	}
	return s.inquiryRepo.UpdateStatus(ctx, id, status)
}

func (s *inquiryService) Delete(ctx context.Context, id int64) error {
	return s.inquiryRepo.Delete(ctx, id)
}
