package chat

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"aurelia-backend/internal/shared/server/middleware"
	"aurelia-backend/internal/shared/server/respond"
)

// Handler serves the chat endpoints.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches chat routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/chat/topics", h.topics)
	rg.GET("/chat", h.transcript)
	rg.POST("/chat", h.send)
	rg.DELETE("/chat", h.reset)
}

func (h *Handler) topics(c *gin.Context) {
	respond.OK(c, gin.H{"topics": Topics()})
}

func (h *Handler) transcript(c *gin.Context) {
	msgs, err := h.Svc.Transcript(c.Request.Context(), middleware.VisitorIDFromContext(c))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load chat", nil)
		return
	}
	respond.OK(c, gin.H{"messages": msgs})
}

type sendRequest struct {
	Text string `json:"text"`
}

func (h *Handler) send(c *gin.Context) {
	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	userMsg, reply, err := h.Svc.Send(c.Request.Context(), middleware.VisitorIDFromContext(c), req.Text)
	if err != nil {
		if errors.Is(err, ErrBlankMessage) {
			respond.ValidationError(c, "message text is required", []respond.FieldIssue{{Field: "text", Issue: "required"}})
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to send message", nil)
		return
	}
	respond.OK(c, gin.H{"message": userMsg, "reply": reply})
}

func (h *Handler) reset(c *gin.Context) {
	if err := h.Svc.Reset(c.Request.Context(), middleware.VisitorIDFromContext(c)); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to reset chat", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
