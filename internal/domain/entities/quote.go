package entities

import "time"

// QuoteStatus represents the lifecycle of a buyback quote.
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "PENDING"
	QuoteStatusExpired   QuoteStatus = "EXPIRED"
	QuoteStatusCompleted QuoteStatus = "COMPLETED"
	QuoteStatusCancelled QuoteStatus = "CANCELLED"
)

// QuoteValidity is fixed for every quote.
const QuoteValidity = 14 * 24 * time.Hour

// Customer holds the contact details captured with a quote.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Quote is a time-bounded offer issued to one customer for one device configuration.
//
// Storage model (DynamoDB, quotes table):
//   - PK: id
//   - guard item per quote number (id = "quote_number#<number>") enforcing uniqueness
//
// Pricing snapshot:
//   - AtlasPrice is the wholesale source price at quote time.
//   - OfferPrice is frozen at creation; later policy changes never touch it.
type Quote struct {
	ID          string      `json:"id"`
	QuoteNumber string      `json:"quote_number"`
	Customer    Customer    `json:"customer"`
	Model       string      `json:"model"`
	Storage     string      `json:"storage"`
	Network     string      `json:"network"`
	Condition   string      `json:"condition"`
	Grade       Grade       `json:"grade"`
	AtlasPrice  float64     `json:"atlas_price"`
	OfferPrice  float64     `json:"offer_price"`
	Margin      float64     `json:"margin"`
	Status      QuoteStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	ExpiresAt   time.Time   `json:"expires_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
