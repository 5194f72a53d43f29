package email

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

type EmailService struct {
	client       *resend.Client
	from         string
	fromName     string
	templatesDir string
	logger       *zap.Logger
}

func NewEmailService(logger *zap.Logger) *EmailService {
	return &EmailService{
		client:       resend.NewClient(os.Getenv("RESEND_API_KEY")),
		from:         os.Getenv("EMAIL_FROM_ADDRESS"),
		fromName:     os.Getenv("EMAIL_FROM_NAME"),
		templatesDir: "pkg/email/templates",
		logger:       logger.Named("email"),
	}
}

func (s *EmailService) SendWelcomeEmail(email, fullName string) error {
	templateData := map[string]interface{}{
		"FullName": fullName,
		"Email":    email,
		"Year":     time.Now().Year(),
	}

	html, err := s.parseTemplate("welcome.html", templateData)
	if err != nil {
		s.logger.Error("parse welcome template", zap.String("to", email), zap.Error(err))
		return err
	}

	return s.send(email, "Welcome to Nawabi Fest!", html)
}

func (s *EmailService) SendVerificationEmail(email, fullName, token string) error {
	verificationLink := os.Getenv("FRONTEND_URL") + "/verify-email?token=" + token

	templateData := map[string]interface{}{
		"FullName":         fullName,
		"VerificationLink": verificationLink,
		"Email":            email,
		"Year":             time.Now().Year(),
	}

	html, err := s.parseTemplate("verify-email.html", templateData)
	if err != nil {
		s.logger.Error("parse verification template", zap.String("to", email), zap.Error(err))
		return err
	}

	return s.send(email, "Verify Your Email - Nawabi Fest", html)
}

func (s *EmailService) SendPasswordResetEmail(email string, resetToken string) error {
	resetLink := os.Getenv("FRONTEND_URL") + "/reset-password?token=" + resetToken

	templateData := map[string]interface{}{
		"ResetLink": resetLink,
		"Email":     email,
		"Year":      time.Now().Year(),
	}

	html, err := s.parseTemplate("reset-password.html", templateData)
	if err != nil {
		s.logger.Error("parse reset template", zap.String("to", email), zap.Error(err))
		return err
	}

	return s.send(email, "Reset Your Password - Nawabi Fest", html)
}

// SendOrderStatusEmail tells the user their order was approved or rejected
// after payment-proof review.
func (s *EmailService) SendOrderStatusEmail(email, fullName string, orderID uint, status, note string) error {
	templateData := map[string]interface{}{
		"FullName": fullName,
		"OrderID":  orderID,
		"Status":   status,
		"Note":     note,
		"Year":     time.Now().Year(),
	}

	html, err := s.parseTemplate("order-status.html", templateData)
	if err != nil {
		s.logger.Error("parse order status template", zap.String("to", email), zap.Error(err))
		return err
	}

	subject := fmt.Sprintf("Your Nawabi Fest Order #%d", orderID)
	return s.send(email, subject, html)
}

func (s *EmailService) send(to, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("send failed", zap.String("to", to), zap.String("subject", subject), zap.Error(err))
		return err
	}

	s.logger.Info("sent", zap.String("to", to), zap.String("subject", subject), zap.String("id", resp.Id))
	return nil
}

func (s *EmailService) parseTemplate(name string, data map[string]interface{}) (string, error) {
	tmpl, err := template.ParseFiles(filepath.Join(s.templatesDir, name))
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
