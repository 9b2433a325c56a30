package catalog

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"aurelia-backend/internal/shared/server/middleware"
	"aurelia-backend/internal/shared/server/respond"
	"aurelia-backend/internal/shared/telemetry"
)

// Handler serves product browsing and the visitor's routine list.
type Handler struct {
	Routines RoutineRepo
}

func NewHandler(routines RoutineRepo) *Handler {
	return &Handler{Routines: routines}
}

// RegisterRoutes attaches catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.listProducts)
	rg.GET("/products/categories", h.listCategories)
	rg.GET("/routine", h.getRoutine)
	rg.POST("/routine", h.addToRoutine)
	rg.DELETE("/routine", h.clearRoutine)
	rg.DELETE("/routine/:name", h.removeFromRoutine)
}

func (h *Handler) listProducts(c *gin.Context) {
	items, err := Search(c.Query("q"), c.Query("category"))
	if err != nil {
		respond.ValidationError(c, "unknown category", []respond.FieldIssue{{Field: "category", Issue: "invalid_option"}})
		return
	}
	respond.OK(c, gin.H{"products": items, "count": len(items)})
}

func (h *Handler) listCategories(c *gin.Context) {
	respond.OK(c, gin.H{"categories": Categories()})
}

func (h *Handler) getRoutine(c *gin.Context) {
	items, err := h.Routines.List(c.Request.Context(), middleware.VisitorIDFromContext(c))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load routine", nil)
		return
	}
	respond.OK(c, gin.H{"items": items})
}

type addRoutineRequest struct {
	Name string `json:"name"`
}

func (h *Handler) addToRoutine(c *gin.Context) {
	var req addRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		respond.ValidationError(c, "name is required", []respond.FieldIssue{{Field: "name", Issue: "required"}})
		return
	}
	if _, ok := Lookup(name); !ok {
		respond.Error(c, http.StatusNotFound, "not_found", ErrUnknownProduct.Error(), nil)
		return
	}
	visitorID := middleware.VisitorIDFromContext(c)
	already, err := h.Routines.Add(c.Request.Context(), visitorID, name)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update routine", nil)
		return
	}
	items, _ := h.Routines.List(c.Request.Context(), visitorID)
	if !already {
		telemetry.Info("routine.added", map[string]any{"visitor_id": visitorID, "product": name})
	}
	respond.OK(c, gin.H{"items": items, "already": already})
}

func (h *Handler) removeFromRoutine(c *gin.Context) {
	visitorID := middleware.VisitorIDFromContext(c)
	if err := h.Routines.Remove(c.Request.Context(), visitorID, c.Param("name")); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update routine", nil)
		return
	}
	items, _ := h.Routines.List(c.Request.Context(), visitorID)
	respond.OK(c, gin.H{"items": items})
}

func (h *Handler) clearRoutine(c *gin.Context) {
	if err := h.Routines.Clear(c.Request.Context(), middleware.VisitorIDFromContext(c)); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to clear routine", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
