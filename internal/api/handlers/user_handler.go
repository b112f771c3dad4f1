package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/formflowhq/formflow/internal/api/middleware"
	"github.com/formflowhq/formflow/internal/application"
	"github.com/formflowhq/formflow/internal/domain/user"
	"github.com/formflowhq/formflow/pkg/response"
)

const tokenLifetime = 24 * time.Hour

type UserHandler struct {
	service *application.UserService
}

func NewUserHandler(service *application.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(c *gin.Context) {
	var input user.RegisterDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	u, err := h.service.Register(input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, u)
}

func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	u, err := h.service.Login(input)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "invalid username or password"})
		return
	}

	token, err := middleware.GenerateToken(u.ID, u.Username, tokenLifetime)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.SetCookie("token", token, int(tokenLifetime.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, response.TokenResponse{Token: token, UID: u.ID, Username: u.Username})
}

func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	u, err := h.service.Profile(userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "logged out"})
}
