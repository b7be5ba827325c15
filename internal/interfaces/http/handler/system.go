package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awerp/backend/internal/interfaces/http/dto"
	"github.com/awerp/backend/internal/interfaces/http/middleware"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping() error
}

// SystemHandler handles health checking and anti-forgery token issuance
type SystemHandler struct {
	BaseHandler
	db           Pinger
	secureCookie bool
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db Pinger, secureCookie bool) *SystemHandler {
	return &SystemHandler{
		db:           db,
		secureCookie: secureCookie,
	}
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/healthz", h.Health)
	rg.GET("/antiforgery/token", h.AntiforgeryToken)
}

// Health reports service and database health
func (h *SystemHandler) Health(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
			dto.ErrCodeInternal,
			"database unreachable",
		))
		return
	}
	h.Success(c, gin.H{"status": "ok"})
}

// AntiforgeryToken issues a fresh anti-forgery token. The token is set as a
// cookie and returned in the body; clients echo it back in the
// X-Antiforgery-Token header on every mutating request.
func (h *SystemHandler) AntiforgeryToken(c *gin.Context) {
	token, err := middleware.IssueAntiforgeryToken(c, h.secureCookie)
	if err != nil {
		h.InternalError(c, "failed to issue anti-forgery token")
		return
	}
	h.Success(c, gin.H{"token": token})
}
