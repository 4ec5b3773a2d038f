package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/cofounderbase/cofounderbase/internal/config"
	"github.com/cofounderbase/cofounderbase/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var emailTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// subjectFor maps a transactional template to its fixed subject line.
func subjectFor(templateName string) (string, error) {
	switch templateName {
	case models.EmailTemplateProfileLive:
		return "Your CofounderBase profile is live", nil
	case models.EmailTemplateContactRequest:
		return "Someone wants to connect on CofounderBase", nil
	}
	return "", fmt.Errorf("unknown email template %q", templateName)
}

// renderEmail produces the subject and HTML body for a queued email job.
func renderEmail(job models.EmailJob) (subject, body string, err error) {
	subject, err = subjectFor(job.Template)
	if err != nil {
		return "", "", err
	}

	var buf bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&buf, job.Template+".html", job); err != nil {
		return "", "", fmt.Errorf("failed to execute template: %w", err)
	}
	return subject, buf.String(), nil
}

// SendEmail renders and delivers one transactional email over SMTP.
func SendEmail(cfg config.EmailConfig, job models.EmailJob) error {
	if cfg.From == "" || cfg.Host == "" {
		return fmt.Errorf("email configuration not complete")
	}
	if job.Recipient == "" {
		return fmt.Errorf("recipient is required")
	}

	subject, body, err := renderEmail(job)
	if err != nil {
		return err
	}

	var msg bytes.Buffer
	msg.WriteString("MIME-version: 1.0;\r\n")
	msg.WriteString(fmt.Sprintf("From: %s\r\n", cfg.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", job.Recipient))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	auth := smtp.PlainAuth("", cfg.From, cfg.Password, cfg.Host)
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	if err := smtp.SendMail(addr, auth, cfg.From, []string{job.Recipient}, msg.Bytes()); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
