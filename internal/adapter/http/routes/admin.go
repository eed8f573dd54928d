package routes

import (
	"buyback_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathAdmin = "/admin"

func addAdminRoutes(rg *gin.RouterGroup, pricingHandler *handlers.PricingHandler) {
	admin := rg.Group(PathAdmin)
	{
		admin.POST("/pricing/import", pricingHandler.ImportPrices)
		admin.POST("/pricing/sync", pricingHandler.SyncFromFeed)
		admin.GET("/pricing/:item_id", pricingHandler.GetRecordPrices)
		admin.PUT("/pricing/:item_id/overrides", pricingHandler.SaveOverrides)

		admin.GET("/margins", pricingHandler.GetMarginPolicy)
		admin.PUT("/margins", pricingHandler.SaveMarginPolicy)
	}
}
