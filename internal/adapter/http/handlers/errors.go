package handlers

import (
	"errors"
	"net/http"
	"strings"

	"buyback_service/internal/domain/pricing"
	"buyback_service/internal/usecase"
	"buyback_service/pkg"

	"github.com/gin-gonic/gin"
)

// adminUserHeader identifies the admin performing a pricing change.
const adminUserHeader = "X-User-ID"

// mapOfferError covers the errors shared by every endpoint that prices a device.
func mapOfferError(err error) (*pkg.AppError, bool) {
	switch {
	case errors.Is(err, usecase.ErrInvalidDevice):
		return pkg.NewDomainErrorSimple("INVALID_DEVICE", "Model and storage are required", http.StatusBadRequest), true
	case errors.Is(err, usecase.ErrInvalidCondition):
		return pkg.NewDomainErrorSimple("INVALID_CONDITION", "Condition must be one of Flawless, Good, Fair, Broken, No Power", http.StatusBadRequest), true
	case errors.Is(err, usecase.ErrInvalidNetwork):
		return pkg.NewDomainErrorSimple("INVALID_NETWORK", "Network must be one of Unlocked, AT&T, T-Mobile, Verizon, Other", http.StatusBadRequest), true
	case errors.Is(err, usecase.ErrPricingRecordNotFound):
		return pkg.NewDomainErrorSimple("DEVICE_NOT_FOUND", "No pricing for this device configuration", http.StatusNotFound), true
	case errors.Is(err, usecase.ErrPricingUnavailable), errors.Is(err, pricing.ErrInvalidSourcePrice):
		return pkg.NewDomainErrorSimple("PRICING_UNAVAILABLE", "Pricing not available for this condition", http.StatusUnprocessableEntity), true
	}
	return nil, false
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func adminUser(c *gin.Context, fromBody string) string {
	if v := strings.TrimSpace(c.GetHeader(adminUserHeader)); v != "" {
		return v
	}
	return strings.TrimSpace(fromBody)
}
