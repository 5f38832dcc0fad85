package email

import (
	"bytes"
	"fmt"
	"go-care-backend/config"
	"html/template"
	"net/smtp"
)

// EmailService sends transactional emails via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

// MatchAlertData holds the data for the new-match email sent to a carer
type MatchAlertData struct {
	CarerName    string
	CareType     string
	Score        float64
	DashboardURL string
}

// NewEmailService creates a new email service from SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

// matchAlertTemplate is the HTML template for match alert emails
const matchAlertTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Care Match</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #2a7d5f; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .score-box { background: white; padding: 15px; border-left: 4px solid #2a7d5f; margin-top: 10px; font-size: 18px; }
        .cta { display: inline-block; margin-top: 15px; padding: 12px 24px; background: #2a7d5f; color: white; text-decoration: none; border-radius: 4px; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>You have a new care match</h1>
        </div>
        <div class="content">
            <p>Hi {{.CarerName}},</p>
            <p>A family looking for <strong>{{.CareType}}</strong> care has been matched with your profile.</p>
            <div class="score-box">Match score: <strong>{{.Score}}</strong></div>
            <a class="cta" href="{{.DashboardURL}}">View the match</a>
        </div>
        <div class="footer">
            <p>You are receiving this because your carer profile is live on the marketplace.</p>
        </div>
    </div>
</body>
</html>`

// SendMatchAlert emails a carer that a new match was created for them.
func (s *EmailService) SendMatchAlert(toEmail string, data MatchAlertData) error {
	tmpl, err := template.New("match_alert").Parse(matchAlertTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	subject := "You have a new care match"

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		toEmail,
		subject,
		body.String(),
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{toEmail}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
