// internal/services/notification_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/sirupsen/logrus"

	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/config"
	"github.com/MazlumSerbest/acronis-dealer-panel-sub003/internal/models"
)

// NotificationService sends the portal's transactional email: sign-in links
// and application lifecycle notices. Without SMTP configuration it logs
// instead of sending so local development needs no mail server.
type NotificationService struct {
	config *config.Config
}

func NewNotificationService(cfg *config.Config) *NotificationService {
	return &NotificationService{config: cfg}
}

func (s *NotificationService) SendSignInLink(user *models.User, token string) error {
	data := map[string]interface{}{
		"Name":      user.Name,
		"SignInURL": fmt.Sprintf("%s/auth/verify?token=%s", s.config.Portal.BaseURL, token),
		"ExpiresIn": "15 minutes",
	}

	body, err := renderTemplate(signInLinkTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.sendEmail(user.Email, "Your sign-in link", body)
}

func (s *NotificationService) SendApplicationReceived(application *models.Application) error {
	data := map[string]interface{}{
		"ContactName": application.ContactName,
		"CompanyName": application.CompanyName,
	}

	body, err := renderTemplate(applicationReceivedTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.sendEmail(application.Email, "We received your application", body)
}

func (s *NotificationService) SendApplicationApproved(application *models.Application) error {
	data := map[string]interface{}{
		"ContactName": application.ContactName,
		"CompanyName": application.CompanyName,
		"PortalURL":   s.config.Portal.BaseURL,
	}

	body, err := renderTemplate(applicationApprovedTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.sendEmail(application.Email, "Your application has been approved", body)
}

func (s *NotificationService) sendEmail(to, subject, body string) error {
	if s.config.Email.SMTPHost == "" {
		logrus.WithFields(logrus.Fields{"to": to, "subject": subject}).Info("Email skipped, SMTP not configured")
		return nil
	}

	auth := smtp.PlainAuth("", s.config.Email.SMTPUsername, s.config.Email.SMTPPassword, s.config.Email.SMTPHost)

	msg := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s", to, subject, body))

	addr := fmt.Sprintf("%s:%s", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	return smtp.SendMail(addr, auth, s.config.Email.FromEmail, []string{to}, msg)
}

func renderTemplate(templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New("email").Parse(templateStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const signInLinkTemplate = `
<!DOCTYPE html>
<html>
<body>
	<h2>Hello {{.Name}},</h2>
	<p>Click the link below to sign in. It can be used once and expires in {{.ExpiresIn}}.</p>
	<a href="{{.SignInURL}}">Sign in</a>
	<p>If you did not request this, you can ignore this email.</p>
</body>
</html>`

const applicationReceivedTemplate = `
<!DOCTYPE html>
<html>
<body>
	<h2>Hello {{.ContactName}},</h2>
	<p>We received the partner application for {{.CompanyName}}. Our team will review it and get back to you.</p>
</body>
</html>`

const applicationApprovedTemplate = `
<!DOCTYPE html>
<html>
<body>
	<h2>Hello {{.ContactName}},</h2>
	<p>The partner application for {{.CompanyName}} has been approved.</p>
	<a href="{{.PortalURL}}">Open the portal</a>
</body>
</html>`
