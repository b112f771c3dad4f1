package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formflowhq/formflow/internal/application"
	"github.com/formflowhq/formflow/internal/domain/form"
	"github.com/formflowhq/formflow/internal/flow"
	"github.com/formflowhq/formflow/pkg/response"
)

type FlowHandler struct {
	service *application.FlowService
}

func NewFlowHandler(service *application.FlowService) *FlowHandler {
	return &FlowHandler{service: service}
}

func (h *FlowHandler) GetGraph(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := formID(c)
	if !ok {
		return
	}
	graph, err := h.service.Graph(userID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, graph)
}

func (h *FlowHandler) MoveNode(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := formID(c)
	if !ok {
		return
	}
	var input form.MoveNodeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	f, err := h.service.MoveNode(userID, id, c.Param("nodeId"), form.Position{X: input.X, Y: input.Y})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// InsertOnEdge accepts the "new" sentinel in place of a numeric form id when
// the form does not exist yet.
func (h *FlowHandler) InsertOnEdge(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	var input form.InsertOnEdgeDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	f, err := h.service.InsertQuestionOnEdge(userID, c.Param("id"), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FlowHandler) UpdateLogic(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := formID(c)
	if !ok {
		return
	}
	var input form.UpdateLogicDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	f, err := h.service.UpdateLogic(userID, id, c.Param("qid"), input.Rules)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FlowHandler) GetConditionMap(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := formID(c)
	if !ok {
		return
	}
	m, err := h.service.ConditionMap(userID, id, c.Param("qid"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *FlowHandler) SaveConditionMap(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := formID(c)
	if !ok {
		return
	}
	var input flow.ConditionMap
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	f, err := h.service.SaveConditionMap(userID, id, c.Param("qid"), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *FlowHandler) Preview(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := formID(c)
	if !ok {
		return
	}
	var input form.PreviewDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	next, err := h.service.Preview(userID, id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"next": next})
}
