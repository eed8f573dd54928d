package request

import (
	"strings"

	"buyback_service/internal/domain/entities"
	"buyback_service/internal/usecase"
)

type CustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone"`
}

// CreateQuoteRequest is the payload of POST /quotes.
type CreateQuoteRequest struct {
	Model     string          `json:"model" binding:"required"`
	Storage   string          `json:"storage" binding:"required"`
	Network   string          `json:"network" binding:"required"`
	Condition string          `json:"condition" binding:"required"`
	Customer  CustomerRequest `json:"customer" binding:"required"`
}

func (r CreateQuoteRequest) ToInput() usecase.CreateQuoteInput {
	return usecase.CreateQuoteInput{
		Model:     strings.TrimSpace(r.Model),
		Storage:   strings.TrimSpace(r.Storage),
		Network:   strings.TrimSpace(r.Network),
		Condition: strings.TrimSpace(r.Condition),
		Customer: entities.Customer{
			Name:  r.Customer.Name,
			Email: r.Customer.Email,
			Phone: r.Customer.Phone,
		},
	}
}

// OfferQuery is the query string of GET /pricing/offer.
type OfferQuery struct {
	Model     string `form:"model" binding:"required"`
	Storage   string `form:"storage" binding:"required"`
	Network   string `form:"network" binding:"required"`
	Condition string `form:"condition" binding:"required"`
}
