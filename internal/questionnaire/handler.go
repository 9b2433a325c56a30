package questionnaire

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"aurelia-backend/internal/profile"
	"aurelia-backend/internal/shared/server/middleware"
	"aurelia-backend/internal/shared/server/respond"
)

// ResultsPath is where a submitted questionnaire sends the visitor.
const ResultsPath = "/api/v1/results"

// Handler wires HTTP handlers to the questionnaire service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches questionnaire routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	q := rg.Group("/questionnaire")
	q.GET("/options", h.options)
	q.POST("", h.start)
	q.GET("/:id", h.get)
	q.PATCH("/:id/answers", h.updateAnswers)
	q.POST("/:id/concerns/toggle", h.toggleConcern)
	q.POST("/:id/next", h.next)
	q.POST("/:id/back", h.back)
	q.POST("/:id/submit", h.submit)
}

func (h *Handler) options(c *gin.Context) {
	respond.OK(c, profile.Catalog())
}

func (h *Handler) start(c *gin.Context) {
	visitorID := middleware.VisitorIDFromContext(c)
	wizard, err := h.Svc.Start(c.Request.Context(), visitorID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start questionnaire", nil)
		return
	}
	c.Set("wizardId", wizard.ID)
	c.Header("Location", "/api/v1/questionnaire/"+wizard.ID)
	respond.JSON(c, http.StatusCreated, toView(wizard))
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	c.Set("wizardId", id)
	wizard, err := h.Svc.Get(c.Request.Context(), middleware.VisitorIDFromContext(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, toView(wizard))
}

func (h *Handler) updateAnswers(c *gin.Context) {
	id := c.Param("id")
	c.Set("wizardId", id)
	var patch profile.AnswerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	wizard, err := h.Svc.UpdateAnswers(c.Request.Context(), middleware.VisitorIDFromContext(c), id, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, toView(wizard))
}

type toggleRequest struct {
	Concern string `json:"concern"`
}

func (h *Handler) toggleConcern(c *gin.Context) {
	id := c.Param("id")
	c.Set("wizardId", id)
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid JSON body", nil)
		return
	}
	wizard, selected, err := h.Svc.ToggleConcern(c.Request.Context(), middleware.VisitorIDFromContext(c), id, strings.TrimSpace(req.Concern))
	if err != nil {
		writeError(c, err)
		return
	}
	respond.OK(c, gin.H{
		"questionnaire": toView(wizard),
		"concern":       strings.TrimSpace(req.Concern),
		"selected":      selected,
	})
}

func (h *Handler) next(c *gin.Context) {
	id := c.Param("id")
	c.Set("wizardId", id)
	wizard, err := h.Svc.Next(c.Request.Context(), middleware.VisitorIDFromContext(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set("stepTransition", fmt.Sprintf("%d->%d", wizard.Step-1, wizard.Step))
	respond.OK(c, toView(wizard))
}

func (h *Handler) back(c *gin.Context) {
	id := c.Param("id")
	c.Set("wizardId", id)
	wizard, err := h.Svc.Back(c.Request.Context(), middleware.VisitorIDFromContext(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set("stepTransition", fmt.Sprintf("%d->%d", wizard.Step+1, wizard.Step))
	respond.OK(c, toView(wizard))
}

func (h *Handler) submit(c *gin.Context) {
	id := c.Param("id")
	c.Set("wizardId", id)
	wizard, result, err := h.Svc.Submit(c.Request.Context(), middleware.VisitorIDFromContext(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set("stepTransition", fmt.Sprintf("%d->submitted", wizard.Step))
	c.Header("Location", ResultsPath)
	respond.OK(c, gin.H{
		"questionnaire": toView(wizard),
		"result":        result,
		"redirect":      ResultsPath,
	})
}

func writeError(c *gin.Context, err error) {
	var verr *profile.ValidationError
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "questionnaire not found", nil)
	case errors.As(err, &verr):
		issues := make([]respond.FieldIssue, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			issues = append(issues, respond.FieldIssue{Field: f.Field, Issue: "invalid_option"})
		}
		respond.ValidationError(c, "invalid answer", issues)
	case IsTransitionError(err):
		respond.Error(c, http.StatusConflict, "invalid_transition", err.Error(), nil)
	case errors.Is(err, ErrStorage):
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to save results", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "questionnaire request failed", nil)
	}
}
