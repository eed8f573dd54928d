package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"buyback_service/internal/adapter/http/handlers/mocks"
	"buyback_service/internal/domain/entities"
	"buyback_service/internal/domain/pricing"
	"buyback_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var errBoom = errors.New("boom")

func pricingRouter(h *PricingHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/pricing/offer", h.GetOffer)
	r.GET("/v1/admin/pricing/:item_id", h.GetRecordPrices)
	r.PUT("/v1/admin/pricing/:item_id/overrides", h.SaveOverrides)
	r.POST("/v1/admin/pricing/import", h.ImportPrices)
	r.POST("/v1/admin/pricing/sync", h.SyncFromFeed)
	r.GET("/v1/admin/margins", h.GetMarginPolicy)
	r.PUT("/v1/admin/margins", h.SaveMarginPolicy)
	return r
}

func TestPricingHandler_GetOffer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing query params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)

		w := performRequest(pricingRouter(NewPricingHandler(uc, nil)), http.MethodGet, "/v1/pricing/offer?model=iPhone", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("source price invalid maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		uc.EXPECT().GetOffer(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.Offer{}, fmt.Errorf("gradeB: %w", pricing.ErrInvalidSourcePrice))

		w := performRequest(pricingRouter(NewPricingHandler(uc, nil)), http.MethodGet,
			"/v1/pricing/offer?model=iPhone+15&storage=128GB&network=Unlocked&condition=Good", "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		uc.EXPECT().GetOffer(gomock.Any(), "iPhone 15", "128GB", "Unlocked", "No Power").
			Return(usecase.Offer{ItemID: "iphone-15|128gb|unlocked", Grade: entities.GradeDOA, OfferPrice: 42}, nil)

		w := performRequest(pricingRouter(NewPricingHandler(uc, nil)), http.MethodGet,
			"/v1/pricing/offer?model=iPhone+15&storage=128GB&network=Unlocked&condition=No+Power", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPricingHandler_SaveOverrides(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown grade", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)

		w := performRequest(pricingRouter(NewPricingHandler(uc, nil)), http.MethodPut,
			"/v1/admin/pricing/item-1/overrides", `{"overrides":{"gradeZ":10}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("null clears and header user wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		uc.EXPECT().SaveOverrides(gomock.Any(), "item-1", gomock.Any(), "admin-7").DoAndReturn(
			func(_ context.Context, _ string, o map[entities.Grade]*float64, _ string) (usecase.RecordPrices, error) {
				if v, ok := o[entities.GradeB]; !ok || v != nil {
					t.Fatalf("expected explicit clear for gradeB, got %v", o)
				}
				if v := o[entities.GradeA]; v == nil || *v != 410 {
					t.Fatalf("unexpected gradeA: %v", v)
				}
				return usecase.RecordPrices{Record: entities.PricingRecord{ID: "item-1"}}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPut, "/v1/admin/pricing/item-1/overrides",
			strings.NewReader(`{"overrides":{"gradeA":410,"gradeB":null},"user_id":"body-user"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(adminUserHeader, "admin-7")
		w := httptest.NewRecorder()
		pricingRouter(NewPricingHandler(uc, nil)).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("usecase validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		uc.EXPECT().SaveOverrides(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(usecase.RecordPrices{}, fmt.Errorf("%w: %w", usecase.ErrInvalidOverrides, pricing.ErrInvalidOverride))

		w := performRequest(pricingRouter(NewPricingHandler(uc, nil)), http.MethodPut,
			"/v1/admin/pricing/item-1/overrides", `{"overrides":{"gradeA":-1}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPricingHandler_RecordAndPolicy(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("record not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		uc.EXPECT().GetDisplayPrices(gomock.Any(), "missing").Return(usecase.RecordPrices{}, usecase.ErrPricingRecordNotFound)

		w := performRequest(pricingRouter(NewPricingHandler(uc, nil)), http.MethodGet, "/v1/admin/pricing/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get policy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		uc.EXPECT().GetMarginPolicy(gomock.Any()).Return(entities.DefaultMarginPolicy(), nil)

		w := performRequest(pricingRouter(NewPricingHandler(uc, nil)), http.MethodGet, "/v1/admin/margins", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid mode rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)

		w := performRequest(pricingRouter(NewPricingHandler(uc, nil)), http.MethodPut, "/v1/admin/margins", `{"mode":"flat"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid policy from usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		uc.EXPECT().SaveMarginPolicy(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.MarginPolicy{}, fmt.Errorf("%w: %w", usecase.ErrInvalidMarginPolicy, entities.ErrInvalidTierTable))

		w := performRequest(pricingRouter(NewPricingHandler(uc, nil)), http.MethodPut, "/v1/admin/margins",
			`{"mode":"tiered","tiered_margins":[{"min":0,"deductions":{"gradeA":10}}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if got := decodeError(t, w).Code; got != "INVALID_MARGIN_POLICY" {
			t.Fatalf("unexpected code %q", got)
		}
	})

	t.Run("save policy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		uc.EXPECT().SaveMarginPolicy(gomock.Any(), gomock.Any(), "ops").DoAndReturn(
			func(_ context.Context, p entities.MarginPolicy, _ string) (entities.MarginPolicy, error) {
				if p.Mode != entities.MarginModePercentage || p.PercentageMargins[entities.GradeA] != 20 {
					t.Fatalf("unexpected policy: %+v", p)
				}
				return p, nil
			},
		)

		w := performRequest(pricingRouter(NewPricingHandler(uc, nil)), http.MethodPut, "/v1/admin/margins",
			`{"mode":"percentage","percentage_margins":{"gradeA":20},"user_id":"ops"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPricingHandler_Import(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)

		w := performRequest(pricingRouter(NewPricingHandler(uc, nil)), http.MethodPost, "/v1/admin/pricing/import", `{"rows":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("import rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		uc.EXPECT().SyncSourcePrices(gomock.Any(), gomock.Len(1)).Return(usecase.SyncResult{Received: 1, Created: 1}, nil)

		w := performRequest(pricingRouter(NewPricingHandler(uc, nil)), http.MethodPost, "/v1/admin/pricing/import",
			`{"rows":[{"model":"Pixel 8","storage":"128GB","network":"Unlocked","price_grade_a":300}]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("feed not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		uc.EXPECT().SyncFromFeed(gomock.Any()).Return(usecase.SyncResult{}, usecase.ErrFeedNotConfigured)

		w := performRequest(pricingRouter(NewPricingHandler(uc, nil)), http.MethodPost, "/v1/admin/pricing/sync", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("feed failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPricingUseCase(ctrl)
		uc.EXPECT().SyncFromFeed(gomock.Any()).Return(usecase.SyncResult{}, errBoom)

		w := performRequest(pricingRouter(NewPricingHandler(uc, nil)), http.MethodPost, "/v1/admin/pricing/sync", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
