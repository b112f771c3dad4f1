package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/formflowhq/formflow/internal/application"
	"github.com/formflowhq/formflow/internal/domain/form"
	"github.com/formflowhq/formflow/pkg/response"
	"github.com/formflowhq/formflow/pkg/utils"
)

type FormHandler struct {
	service *application.FormService
}

func NewFormHandler(service *application.FormService) *FormHandler {
	return &FormHandler{service: service}
}

func formID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}

func callerID(c *gin.Context) (uint, bool) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return 0, false
	}
	return userID, true
}

func (h *FormHandler) CreateForm(c *gin.Context) {
	var input form.CreateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	userID, ok := callerID(c)
	if !ok {
		return
	}

	f, err := h.service.CreateForm(userID, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, f)
}

func (h *FormHandler) GetForms(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	forms, err := h.service.ListForms(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, forms)
}

func (h *FormHandler) GetFormByID(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := formID(c)
	if !ok {
		return
	}
	f, err := h.service.GetForm(userID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FormHandler) UpdateForm(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := formID(c)
	if !ok {
		return
	}
	var input form.UpdateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	f, err := h.service.UpdateForm(userID, id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FormHandler) DeleteForm(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := formID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteForm(userID, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "form deleted"})
}

func (h *FormHandler) AddQuestion(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := formID(c)
	if !ok {
		return
	}
	var input form.AddQuestionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	f, err := h.service.AddQuestion(userID, id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FormHandler) EditQuestion(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := formID(c)
	if !ok {
		return
	}
	var input form.QuestionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	input.ID = c.Param("qid")
	f, err := h.service.EditQuestion(userID, id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FormHandler) DeleteQuestion(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := formID(c)
	if !ok {
		return
	}
	f, err := h.service.DeleteQuestion(userID, id, c.Param("qid"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FormHandler) Publish(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := formID(c)
	if !ok {
		return
	}
	f, err := h.service.Publish(userID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FormHandler) Unpublish(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := formID(c)
	if !ok {
		return
	}
	f, err := h.service.Unpublish(userID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}
