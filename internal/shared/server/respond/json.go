package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// ValidationError writes a 400 with per-field issues.
func ValidationError(c *gin.Context, message string, issues []FieldIssue) {
	Error(c, http.StatusBadRequest, "validation_error", message, issues)
}

// FieldIssue names a rejected request field.
type FieldIssue struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}
