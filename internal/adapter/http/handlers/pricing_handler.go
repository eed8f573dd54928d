package handlers

import (
	"errors"
	"net/http"

	request "buyback_service/internal/adapter/http/dto/request"
	response "buyback_service/internal/adapter/http/dto/response"
	"buyback_service/internal/usecase"
	"buyback_service/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidOfferQuery      = pkg.NewDomainErrorSimple("INVALID_OFFER_QUERY", "model, storage, network and condition are required", http.StatusBadRequest)
	errInvalidOverridePayload = pkg.NewDomainErrorSimple("INVALID_OVERRIDE_INPUT", "Invalid overrides payload", http.StatusBadRequest)
	errInvalidPolicyPayload   = pkg.NewDomainErrorSimple("INVALID_MARGIN_POLICY_INPUT", "Invalid margin policy payload", http.StatusBadRequest)
	errInvalidImportPayload   = pkg.NewDomainErrorSimple("INVALID_IMPORT_INPUT", "Invalid price import payload", http.StatusBadRequest)
)

// PricingHandler serves the offer preview and the pricing admin endpoints.
type PricingHandler struct {
	usecase usecase.IPricingUseCase
	log     *zap.Logger
}

func NewPricingHandler(uc usecase.IPricingUseCase, log *zap.Logger) *PricingHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PricingHandler{usecase: uc, log: log.Named("pricing_handler")}
}

// GetOffer godoc
// @Summary  Preview the offer for a device
// @Tags     pricing
// @Produce  json
// @Param    model      query     string  true  "Device model"
// @Param    storage    query     string  true  "Storage"
// @Param    network    query     string  true  "Carrier"
// @Param    condition  query     string  true  "Flawless, Good, Fair, Broken or No Power"
// @Success  200        {object}  response.OfferResponse
// @Failure  400        {object}  pkg.HTTPError
// @Failure  404        {object}  pkg.HTTPError
// @Failure  422        {object}  pkg.HTTPError
// @Router   /pricing/offer [get]
func (h *PricingHandler) GetOffer(c *gin.Context) {
	var q request.OfferQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWith(c, errInvalidOfferQuery)
		return
	}

	offer, err := h.usecase.GetOffer(c.Request.Context(), q.Model, q.Storage, q.Network, q.Condition)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOffer(offer))
}

// GetRecordPrices godoc
// @Summary   Show source, override and displayed prices of a record
// @Tags      admin
// @Produce   json
// @Param     item_id  path      string  true  "Variant key"
// @Success   200      {object}  response.RecordPricesResponse
// @Failure   404      {object}  pkg.HTTPError
// @Router    /admin/pricing/{item_id} [get]
func (h *PricingHandler) GetRecordPrices(c *gin.Context) {
	rp, err := h.usecase.GetDisplayPrices(c.Request.Context(), c.Param("item_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRecordPrices(rp))
}

// SaveOverrides godoc
// @Summary      Set or clear manual price overrides
// @Description  A grade mapped to null clears its override. Grades left out are untouched.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        item_id  path      string                    true  "Variant key"
// @Param        payload  body      request.OverridesRequest  true  "Overrides"
// @Success      200      {object}  response.RecordPricesResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /admin/pricing/{item_id}/overrides [put]
func (h *PricingHandler) SaveOverrides(c *gin.Context) {
	var payload request.OverridesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidOverridePayload)
		return
	}
	overrides, err := payload.ToGrades()
	if err != nil {
		abortWith(c, errInvalidOverridePayload)
		return
	}

	rp, err := h.usecase.SaveOverrides(c.Request.Context(), c.Param("item_id"), overrides, adminUser(c, payload.UserID))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRecordPrices(rp))
}

// ImportPrices godoc
// @Summary   Upsert wholesale source prices
// @Tags      admin
// @Accept    json
// @Produce   json
// @Param     payload  body      request.ImportPricesRequest  true  "Rows"
// @Success   200      {object}  response.SyncResultResponse
// @Failure   400      {object}  pkg.HTTPError
// @Router    /admin/pricing/import [post]
func (h *PricingHandler) ImportPrices(c *gin.Context) {
	var payload request.ImportPricesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidImportPayload)
		return
	}

	res, err := h.usecase.SyncSourcePrices(c.Request.Context(), payload.Rows)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSyncResult(res))
}

// SyncFromFeed godoc
// @Summary   Pull source prices from the wholesale feed
// @Tags      admin
// @Produce   json
// @Success   200  {object}  response.SyncResultResponse
// @Failure   503  {object}  pkg.HTTPError
// @Router    /admin/pricing/sync [post]
func (h *PricingHandler) SyncFromFeed(c *gin.Context) {
	res, err := h.usecase.SyncFromFeed(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSyncResult(res))
}

// GetMarginPolicy godoc
// @Summary   Show the active margin policy
// @Tags      admin
// @Produce   json
// @Success   200  {object}  response.MarginPolicyResponse
// @Router    /admin/margins [get]
func (h *PricingHandler) GetMarginPolicy(c *gin.Context) {
	p, err := h.usecase.GetMarginPolicy(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMarginPolicy(p))
}

// SaveMarginPolicy godoc
// @Summary      Replace the margin policy
// @Description  Cached offers of every record are recomputed after the save.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        payload  body      request.MarginPolicyRequest  true  "Policy"
// @Success      200      {object}  response.MarginPolicyResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /admin/margins [put]
func (h *PricingHandler) SaveMarginPolicy(c *gin.Context) {
	var payload request.MarginPolicyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPolicyPayload)
		return
	}

	p, err := h.usecase.SaveMarginPolicy(c.Request.Context(), payload.ToEntity(), adminUser(c, payload.UserID))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromMarginPolicy(p))
}

func (h *PricingHandler) fail(c *gin.Context, err error) {
	appErr := mapPricingError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.Error("pricing request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	abortWith(c, appErr)
}

func mapPricingError(err error) *pkg.AppError {
	if appErr, ok := mapOfferError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidItemID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidOverrides):
		return pkg.NewDomainError("INVALID_OVERRIDES", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidMarginPolicy):
		return pkg.NewDomainError("INVALID_MARGIN_POLICY", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyImport):
		return pkg.NewDomainErrorSimple("EMPTY_IMPORT", "No price rows to import", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFeedNotConfigured):
		return pkg.NewDomainErrorSimple("FEED_NOT_CONFIGURED", "Wholesale price feed is not configured", http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}
