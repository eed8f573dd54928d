package handlers

import (
	"net/http"

	response "buyback_service/internal/adapter/http/dto/response"
	"buyback_service/internal/usecase"
	"buyback_service/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReminderHandler lets an external scheduler trigger the reminder sweep.
type ReminderHandler struct {
	usecase usecase.IReminderUseCase
	log     *zap.Logger
}

func NewReminderHandler(uc usecase.IReminderUseCase, log *zap.Logger) *ReminderHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReminderHandler{usecase: uc, log: log.Named("reminder_handler")}
}

// RunSweep godoc
// @Summary      Run the reminder sweep
// @Description  Sends due quote reminders and expires overdue quotes. Call at least daily, hourly is recommended.
// @Tags         cron
// @Produce      json
// @Success      200  {object}  response.SweepResultResponse
// @Failure      401  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /cron/reminders [post]
// @Security     Bearer
func (h *ReminderHandler) RunSweep(c *gin.Context) {
	res, err := h.usecase.ProcessEmailReminders(c.Request.Context())
	if err != nil {
		h.log.Error("reminder sweep failed", zap.Error(err))
		appErr := pkg.NewDomainError("SWEEP_FAILED", "Reminder sweep failed", err, http.StatusInternalServerError)
		abortWith(c, appErr)
		return
	}
	c.JSON(http.StatusOK, response.FromSweepResult(res))
}
