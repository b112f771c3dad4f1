package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formflowhq/formflow/pkg/fault"
	"github.com/formflowhq/formflow/pkg/response"
)

// writeError translates a service error into an HTTP status.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case fault.IsValidation(err):
		status = http.StatusBadRequest
	case fault.IsNotFound(err):
		status = http.StatusNotFound
	case fault.IsConflict(err):
		status = http.StatusConflict
	}
	c.JSON(status, response.ErrorResponse{Error: err.Error()})
}
