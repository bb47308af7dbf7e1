// Package webhook exposes the conversation engine over HTTP as a
// fulfillment endpoint. The webhook handler is total: malformed input
// degrades to an empty turn and every request gets a 200 with a reply.
package webhook

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/padhakulabs/padhaku/internal/activity"
	"github.com/padhakulabs/padhaku/internal/logger"
	"github.com/padhakulabs/padhaku/internal/session"
)

// Handler serves the fulfillment and operational endpoints.
type Handler struct {
	engine   *session.Engine
	activity *activity.Store
	log      *logger.Logger
}

// NewHandler creates a Handler. activity may be nil; the stats
// endpoint then reports it unavailable.
func NewHandler(engine *session.Engine, act *activity.Store, log *logger.Logger) *Handler {
	return &Handler{engine: engine, activity: act, log: log}
}

// Register attaches the handler's routes to the router.
func (h *Handler) Register(r *gin.Engine) {
	r.POST("/webhook", h.handleWebhook)
	r.GET("/healthz", h.handleHealth)
	r.GET("/stats/:user", h.handleStats)
}

func (h *Handler) handleWebhook(c *gin.Context) {
	turnID := uuid.NewString()
	start := time.Now()

	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		// Treated as an empty turn rather than rejected; the engine
		// answers with its fixed fallback.
		h.log.Warn("malformed webhook payload", "turn_id", turnID, "error", err.Error())
	}

	messages := h.engine.HandleTurn(c.Request.Context(), req.UserID(), req.Text())

	h.log.Info("turn handled",
		"turn_id", turnID,
		"user_id", req.UserID(),
		"messages", len(messages),
		"latency_ms", time.Since(start).Milliseconds(),
	)

	c.JSON(http.StatusOK, NewResponse(messages))
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) handleStats(c *gin.Context) {
	if h.activity == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "activity recording disabled"})
		return
	}

	userID := c.Param("user")
	stats, err := h.activity.Stats(userID)
	if err != nil {
		h.log.Error("stats lookup failed", "user_id", userID, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stats unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": userID, "stats": stats})
}
