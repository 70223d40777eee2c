package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"acceso-portal/config"
	"acceso-portal/internal/services"
	"acceso-portal/internal/transport/httpdto"
)

// StatusHandler serves the liveness/diagnostic endpoint. It reports
// whether each Telegram pair is configured, never the values.
type StatusHandler struct {
	config  *config.Config
	service *services.AuthService
}

func NewStatusHandler(cfg *config.Config, service *services.AuthService) *StatusHandler {
	return &StatusHandler{config: cfg, service: service}
}

// Status handles GET /api/test and GET /health.
func (h *StatusHandler) Status(c *gin.Context) {
	count, err := h.service.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(MsgInternal))
		return
	}

	c.JSON(http.StatusOK, httpdto.StatusResponse{
		Status:                     "ok",
		Timestamp:                  time.Now().UnixMilli(),
		LoginNotifierConfigured:    h.config.LoginNotifierConfigured(),
		RegisterNotifierConfigured: h.config.RegisterNotifierConfigured(),
		TotalUsers:                 count,
	})
}
