package routes

import (
	"buyback_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes  = "/quotes"
	PathPricing = "/pricing"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:quote_number", quoteHandler.GetQuote)
		quotes.PATCH("/:quote_number/complete", quoteHandler.CompleteQuote)
		quotes.PATCH("/:quote_number/cancel", quoteHandler.CancelQuote)
	}
}

func addPricingRoutes(rg *gin.RouterGroup, pricingHandler *handlers.PricingHandler) {
	pricing := rg.Group(PathPricing)
	{
		pricing.GET("/offer", pricingHandler.GetOffer)
	}
}
