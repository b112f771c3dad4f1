package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formflowhq/formflow/internal/application"
	"github.com/formflowhq/formflow/internal/domain/response"
	pkgresponse "github.com/formflowhq/formflow/pkg/response"
)

// RespondHandler is the public, unauthenticated respondent surface.
type RespondHandler struct {
	service   *application.RespondService
	analytics *application.AnalyticsService
}

func NewRespondHandler(service *application.RespondService, analytics *application.AnalyticsService) *RespondHandler {
	return &RespondHandler{service: service, analytics: analytics}
}

// Start opens a respondent session for a published form. The view event is
// recorded before anything is rendered.
func (h *RespondHandler) Start(c *gin.Context) {
	step, err := h.service.Start(c.Request.Context(), c.Param("publicId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, step)
}

// Next submits one answer and advances the session; at the last question it
// completes the submission.
func (h *RespondHandler) Next(c *gin.Context) {
	var input response.NextDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, pkgresponse.ErrorResponse{Error: err.Error()})
		return
	}
	step, err := h.service.Next(c.Request.Context(), c.Param("sid"), input.Answer)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, step)
}

// Responses lists a form's submissions for the owner.
func (h *RespondHandler) Responses(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := formID(c)
	if !ok {
		return
	}
	responses, err := h.analytics.Responses(userID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, responses)
}

// Analytics serves the owner's 7-day window comparison.
func (h *RespondHandler) Analytics(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := formID(c)
	if !ok {
		return
	}
	overview, err := h.analytics.Overview(userID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}
