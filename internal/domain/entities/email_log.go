package entities

import "time"

type EmailType string

const (
	EmailTypeQuoteConfirmation EmailType = "QUOTE_CONFIRMATION"
	EmailTypeReminder7Days     EmailType = "REMINDER_7_DAYS"
	EmailTypeReminder3Days     EmailType = "REMINDER_3_DAYS"
	EmailTypeReminder1Day      EmailType = "REMINDER_1_DAY"
	EmailTypeAdminNotification EmailType = "ADMIN_NOTIFICATION"
)

type EmailStatus string

const (
	EmailStatusSent   EmailStatus = "sent"
	EmailStatusFailed EmailStatus = "failed"
	// EmailStatusSending marks a claimed reminder whose delivery is in flight.
	EmailStatusSending EmailStatus = "sending"
)

// EmailLog records one delivery outcome for a quote.
//
// Storage model (DynamoDB, email_logs table):
//   - PK: quote_id
//   - SK: log_key
//
// Successful (and in-flight) sends use log_key "SENT#<type>", so at most one
// sent log can exist per (quote, type). Failures use a unique
// "FAILED#<type>#<timestamp>#<id>" key and are kept as history.
type EmailLog struct {
	ID        string            `json:"id"`
	QuoteID   string            `json:"quote_id"`
	Type      EmailType         `json:"type"`
	Status    EmailStatus       `json:"status"`
	Recipient string            `json:"recipient"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// EmailMessage is the payload handed to the email transport.
type EmailMessage struct {
	From    string
	To      string
	Subject string
	HTML    string
}
