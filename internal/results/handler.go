package results

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"aurelia-backend/internal/shared/server/middleware"
	"aurelia-backend/internal/shared/server/respond"
	"aurelia-backend/internal/shared/telemetry"
)

const maxImportBytes = 64 << 10

// Handler serves the results view and slot management endpoints.
type Handler struct {
	Store    Store
	Renderer *Renderer
}

func NewHandler(store Store, renderer *Renderer) *Handler {
	return &Handler{Store: store, Renderer: renderer}
}

// RegisterRoutes attaches JSON results routes to the API group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/results", h.getResults)
	rg.DELETE("/results", h.clearResults)
	rg.PUT("/results/import", h.importResults)
}

// RegisterPages attaches the HTML results page. The engine must have the
// results templates loaded.
func (h *Handler) RegisterPages(r gin.IRoutes) {
	r.GET("/results", h.resultsPage)
}

func (h *Handler) getResults(c *gin.Context) {
	visitorID := middleware.VisitorIDFromContext(c)
	respond.OK(c, h.Renderer.Render(c.Request.Context(), visitorID))
}

func (h *Handler) resultsPage(c *gin.Context) {
	visitorID := middleware.VisitorIDFromContext(c)
	c.HTML(http.StatusOK, PageTemplate, h.Renderer.Render(c.Request.Context(), visitorID))
}

func (h *Handler) clearResults(c *gin.Context) {
	visitorID := middleware.VisitorIDFromContext(c)
	if err := h.Store.Clear(c.Request.Context(), visitorID); err != nil {
		telemetry.Error("results.clear_failed", map[string]any{"visitor_id": visitorID, "error": err})
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to clear results", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// importResults accepts a payload previously kept under the aureliaResult slot
// and stores it for the visitor.
func (h *Handler) importResults(c *gin.Context) {
	visitorID := middleware.VisitorIDFromContext(c)
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes+1))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "failed to read body", nil)
		return
	}
	if len(raw) > maxImportBytes {
		respond.ValidationError(c, "payload too large", []respond.FieldIssue{{Field: "body", Issue: "too_large"}})
		return
	}
	result, ok := Decode(raw)
	if !ok {
		respond.ValidationError(c, "payload is not a stored result", []respond.FieldIssue{{Field: "body", Issue: "malformed"}})
		return
	}
	if err := h.Store.Save(c.Request.Context(), visitorID, result); err != nil {
		status, code := http.StatusInternalServerError, "storage_error"
		if errors.Is(err, ErrVisitorRequired) {
			status, code = http.StatusBadRequest, "validation_error"
		}
		respond.Error(c, status, code, "failed to import results", nil)
		return
	}
	telemetry.Info("results.imported", map[string]any{"visitor_id": visitorID})
	respond.OK(c, h.Renderer.Render(c.Request.Context(), visitorID))
}
