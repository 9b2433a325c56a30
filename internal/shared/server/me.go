package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"aurelia-backend/internal/shared/server/middleware"
	"aurelia-backend/internal/shared/server/respond"
)

// registerMeRoutes attaches the /me endpoint.
func registerMeRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", meHandler)
}

func meHandler(c *gin.Context) {
	visitorID := middleware.VisitorIDFromContext(c)
	if visitorID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "visitor identity missing", nil)
		return
	}
	respond.OK(c, gin.H{
		"visitorId": visitorID,
		"guestId":   strings.TrimPrefix(visitorID, "guest:"),
	})
}
