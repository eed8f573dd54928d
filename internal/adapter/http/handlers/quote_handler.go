package handlers

import (
	"context"
	"errors"
	"net/http"

	request "buyback_service/internal/adapter/http/dto/request"
	response "buyback_service/internal/adapter/http/dto/response"
	"buyback_service/internal/domain/entities"
	"buyback_service/internal/usecase"
	"buyback_service/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for buyback quotes.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	log     *zap.Logger
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, log *zap.Logger) *QuoteHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &QuoteHandler{usecase: uc, log: log.Named("quote_handler")}
}

// CreateQuote godoc
// @Summary      Create a quote
// @Description  Prices the device, issues a quote valid for 14 days and emails the customer.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateQuoteRequest  true  "Quote request"
// @Success      201      {object}  response.QuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidQuotePayload)
		return
	}

	q, err := h.usecase.CreateQuote(c.Request.Context(), payload.ToInput())
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(q))
}

// GetQuote godoc
// @Summary  Get a quote by number
// @Tags     quotes
// @Produce  json
// @Param    quote_number  path      string  true  "Quote number"
// @Success  200           {object}  response.QuoteResponse
// @Failure  404           {object}  pkg.HTTPError
// @Router   /quotes/{quote_number} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByNumber(c.Request.Context(), c.Param("quote_number"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// CompleteQuote godoc
// @Summary  Mark a pending quote as completed
// @Tags     quotes
// @Produce  json
// @Param    quote_number  path      string  true  "Quote number"
// @Success  200           {object}  response.QuoteResponse
// @Failure  404           {object}  pkg.HTTPError
// @Failure  409           {object}  pkg.HTTPError
// @Router   /quotes/{quote_number}/complete [patch]
func (h *QuoteHandler) CompleteQuote(c *gin.Context) {
	h.transition(c, h.usecase.Complete)
}

// CancelQuote godoc
// @Summary  Cancel a pending quote
// @Tags     quotes
// @Produce  json
// @Param    quote_number  path      string  true  "Quote number"
// @Success  200           {object}  response.QuoteResponse
// @Failure  404           {object}  pkg.HTTPError
// @Failure  409           {object}  pkg.HTTPError
// @Router   /quotes/{quote_number}/cancel [patch]
func (h *QuoteHandler) CancelQuote(c *gin.Context) {
	h.transition(c, h.usecase.Cancel)
}

func (h *QuoteHandler) transition(
	c *gin.Context,
	updater func(ctx context.Context, quoteNumber string) (entities.Quote, error),
) {
	q, err := updater(c.Request.Context(), c.Param("quote_number"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) fail(c *gin.Context, err error) {
	appErr := mapQuoteError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.Error("quote request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	abortWith(c, appErr)
}

func mapQuoteError(err error) *pkg.AppError {
	if appErr, ok := mapOfferError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomer):
		return pkg.NewDomainErrorSimple("INVALID_CUSTOMER", "Customer name and a valid email are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteNumber):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotPending):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_PENDING", "Quote is no longer pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNumberExhausted):
		return pkg.NewDomainError("QUOTE_NUMBER_CONFLICT", "Could not allocate a quote number, retry", err, http.StatusConflict)
	default:
		return internalError(err)
	}
}
