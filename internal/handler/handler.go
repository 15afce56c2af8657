package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// fail writes the error shape shared by every endpoint.
func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "message": msg})
}

// optionalString maps "" to null for columns where the old data used NULL
// rather than empty strings.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// pathID parses an :id param. The bool is false for non-numeric input,
// which targets no row.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func ok(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}
