package routes

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"buyback_service/internal/adapter/http/handlers"
	"buyback_service/pkg"

	"github.com/gin-gonic/gin"
)

const PathCron = "/cron"

var (
	errCronDisabled     = pkg.NewDomainErrorSimple("CRON_DISABLED", "CRON_SECRET is not configured", http.StatusServiceUnavailable)
	errCronUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid cron credentials", http.StatusUnauthorized)
)

func addCronRoutes(rg *gin.RouterGroup, reminderHandler *handlers.ReminderHandler, secret string) {
	cron := rg.Group(PathCron, requireBearer(secret))
	{
		cron.POST("/reminders", reminderHandler.RunSweep)
	}
}

// requireBearer accepts only "Authorization: Bearer <secret>". An empty secret
// closes the group.
func requireBearer(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.AbortWithStatusJSON(errCronDisabled.HTTPStatus, errCronDisabled.ToHTTPError())
			return
		}
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(strings.TrimSpace(token)), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(errCronUnauthorized.HTTPStatus, errCronUnauthorized.ToHTTPError())
			return
		}
		c.Next()
	}
}
