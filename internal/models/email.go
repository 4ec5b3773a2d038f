package models

// Transactional email templates.
const (
	EmailTemplateProfileLive    = "profile-live"
	EmailTemplateContactRequest = "contact-request"
)

// Email delivery statuses tracked in Redis by the worker.
const (
	EmailStatusQueued = "queued"
	EmailStatusSent   = "sent"
	EmailStatusFailed = "failed"
)

// EmailJob is the payload queued to Kafka for the email worker. Sender
// fields are only set for contact-request emails.
type EmailJob struct {
	ID          string `json:"id"`
	Template    string `json:"template"`
	Recipient   string `json:"recipient"`
	FirstName   string `json:"first_name"`
	ProfileURL  string `json:"profile_url"`
	SenderName  string `json:"sender_name,omitempty"`
	SenderEmail string `json:"sender_email,omitempty"`
	Message     string `json:"message,omitempty"`
}
