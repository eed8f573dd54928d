package response

import (
	"time"

	"buyback_service/internal/domain/entities"
	"buyback_service/internal/usecase"
)

type CustomerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// QuoteResponse is the customer view of a quote. Wholesale price and margin
// stay internal.
type QuoteResponse struct {
	ID          string           `json:"id"`
	QuoteNumber string           `json:"quote_number"`
	Customer    CustomerResponse `json:"customer"`
	Model       string           `json:"model"`
	Storage     string           `json:"storage"`
	Network     string           `json:"network"`
	Condition   string           `json:"condition"`
	Grade       string           `json:"grade"`
	OfferPrice  float64          `json:"offer_price"`
	Status      string           `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	ExpiresAt   time.Time        `json:"expires_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:          q.ID,
		QuoteNumber: q.QuoteNumber,
		Customer: CustomerResponse{
			Name:  q.Customer.Name,
			Email: q.Customer.Email,
			Phone: q.Customer.Phone,
		},
		Model:      q.Model,
		Storage:    q.Storage,
		Network:    q.Network,
		Condition:  q.Condition,
		Grade:      string(q.Grade),
		OfferPrice: q.OfferPrice,
		Status:     string(q.Status),
		CreatedAt:  q.CreatedAt,
		ExpiresAt:  q.ExpiresAt,
		UpdatedAt:  q.UpdatedAt,
	}
}

// OfferResponse previews the price a quote would be issued at.
type OfferResponse struct {
	ItemID       string  `json:"item_id"`
	Model        string  `json:"model"`
	Storage      string  `json:"storage"`
	Network      string  `json:"network"`
	Condition    string  `json:"condition"`
	Grade        string  `json:"grade"`
	OfferPrice   float64 `json:"offer_price"`
	ValidForDays int     `json:"valid_for_days"`
}

func FromOffer(o usecase.Offer) OfferResponse {
	return OfferResponse{
		ItemID:       o.ItemID,
		Model:        o.Model,
		Storage:      o.Storage,
		Network:      o.Network,
		Condition:    o.Condition,
		Grade:        string(o.Grade),
		OfferPrice:   o.OfferPrice,
		ValidForDays: int(entities.QuoteValidity / (24 * time.Hour)),
	}
}
