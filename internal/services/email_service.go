package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"net/smtp"

	"rnbridge/internal/models"

	"github.com/google/uuid"
)

// NotificationService sends the transactional emails triggered by form
// submissions. Every send is best effort: callers log failures and never
// fail the enclosing request on them.
type NotificationService interface {
	SendContactNotification(ctx context.Context, inquiry *models.Inquiry) error
	SendContactConfirmation(ctx context.Context, inquiry *models.Inquiry) error
	SendApplicationReceipt(ctx context.Context, student *models.Student) error
}

// SMTPConfig carries the mail-relay settings.
type SMTPConfig struct {
	Host       string
	Port       int
	User       string
	Password   string
	From       string
	AdminEmail string
}

type smtpNotificationService struct {
	cfg SMTPConfig

	// sendMail is smtp.SendMail in production; tests swap it out.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPNotificationService builds a sender over the configured relay.
func NewSMTPNotificationService(cfg SMTPConfig) NotificationService {
	return &smtpNotificationService{cfg: cfg, sendMail: smtp.SendMail}
}

var contactNotifyTemplate = template.Must(template.New("contact-notify").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1>RNBRIDGE LTD</h1>
  <h2>New Contact Inquiry</h2>
  <table>
    <tr><td><strong>Name:</strong></td><td>{{.Name}}</td></tr>
    <tr><td><strong>Email:</strong></td><td>{{.Email}}</td></tr>
    {{if .Phone}}<tr><td><strong>Phone:</strong></td><td>{{.Phone}}</td></tr>{{end}}
    {{if .CountryOfInterest}}<tr><td><strong>Country of Interest:</strong></td><td>{{.CountryOfInterest}}</td></tr>{{end}}
    <tr><td><strong>Inquiry ID:</strong></td><td>#{{.ID}}</td></tr>
  </table>
  <h3>Message</h3>
  <p>{{.Message}}</p>
  <p>Reply to: {{.Email}}. Please respond to this inquiry within 24 hours.</p>
</div>
`))

var contactConfirmTemplate = template.Must(template.New("contact-confirm").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1>RNBRIDGE LTD</h1>
  <h2>Dear {{.Name}},</h2>
  <p>Thank you for reaching out to RNBRIDGE LTD. We have received your inquiry
  and our team will get back to you within 24 hours.</p>
  <p><strong>Inquiry ID:</strong> #{{.ID}}<br><strong>Status:</strong> Under Review</p>
  <p>Your Gateway to Global Education</p>
</div>
`))

var applicationReceiptTemplate = template.Must(template.New("application-receipt").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1>RNBRIDGE LTD</h1>
  <h2>Dear {{.FirstName}} {{.LastName}},</h2>
  <p>Thank you for submitting your student application to RNBRIDGE LTD. We're
  excited to help you achieve your international education goals!</p>
  {{if .DesiredCountry}}<p><strong>Desired Country:</strong> {{.DesiredCountry}}</p>{{end}}
  {{if .DesiredProgram}}<p><strong>Desired Program:</strong> {{.DesiredProgram}}</p>{{end}}
  <p><strong>Status:</strong> Under Review</p>
  <p>Our consultants will schedule a consultation call within 48 hours.</p>
  <p>Your Gateway to Global Education</p>
</div>
`))

func (s *smtpNotificationService) SendContactNotification(ctx context.Context, inquiry *models.Inquiry) error {
	subject := fmt.Sprintf("New Contact Inquiry - RNBRIDGE LTD (ID: %d)", inquiry.ID)
	body, err := render(contactNotifyTemplate, inquiry)
	if err != nil {
		return err
	}
	return s.send(ctx, s.cfg.AdminEmail, subject, body)
}

func (s *smtpNotificationService) SendContactConfirmation(ctx context.Context, inquiry *models.Inquiry) error {
	body, err := render(contactConfirmTemplate, inquiry)
	if err != nil {
		return err
	}
	return s.send(ctx, inquiry.Email, "Thank you for contacting RNBRIDGE LTD", body)
}

func (s *smtpNotificationService) SendApplicationReceipt(ctx context.Context, student *models.Student) error {
	body, err := render(applicationReceiptTemplate, student)
	if err != nil {
		return err
	}
	return s.send(ctx, student.Email, "Student Application Received - RNBRIDGE LTD", body)
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *smtpNotificationService) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := buildMessage(s.cfg.From, to, subject, body)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var auth smtp.Auth
	if s.cfg.User != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	}

	if err := s.sendMail(addr, auth, s.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	log.Printf("Email sent to %s: %s", to, subject)
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	fmt.Fprintf(&buf, "Message-ID: <%s@rnbridge>\r\n", uuid.NewString())
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(body)
	return buf.Bytes()
}
