package handler

import (
	"errors"
	"net/http"
	"strings"

	"relay-chat/internal/domain/user"
	"relay-chat/internal/services"
	"relay-chat/internal/transport/httpdto"
	relay_errors "relay-chat/pkg/errors"

	"github.com/gin-gonic/gin"
)

const invalidUserBody = "Invalid user body"

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Signup handles POST /user/signup.
func (h *UserHandler) Signup(c *gin.Context) {
	req, ok := bindUserRequest(c)
	if !ok {
		return
	}

	u, err := h.service.Create(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, relay_errors.ErrUsernameExists) {
			c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, httpdto.FromUser(u))
}

// Login handles POST /user/login.
func (h *UserHandler) Login(c *gin.Context) {
	req, ok := bindUserRequest(c)
	if !ok {
		return
	}

	u, err := h.service.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, relay_errors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, httpdto.FromUser(u))
}

// GetUser handles GET /user/getUser/:username.
func (h *UserHandler) GetUser(c *gin.Context) {
	username := c.Param("username")

	u, err := h.service.GetByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, relay_errors.ErrNotFound) {
			c.JSON(http.StatusNotFound, httpdto.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, httpdto.FromUser(u))
}

// DeleteUser handles DELETE /user/deleteUser/:username.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	username := c.Param("username")

	u, err := h.service.DeleteByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, relay_errors.ErrNotFound) {
			c.JSON(http.StatusNotFound, httpdto.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, httpdto.FromUser(u))
}

// ResetPassword handles PATCH /user/resetPassword. The route only exposes
// a password change, though the service underneath accepts any field
// subset.
func (h *UserHandler) ResetPassword(c *gin.Context) {
	req, ok := bindUserRequest(c)
	if !ok {
		return
	}

	u, err := h.service.Update(c.Request.Context(), req.Username, user.Update{Password: &req.Password})
	if err != nil {
		if errors.Is(err, relay_errors.ErrNotFound) {
			c.JSON(http.StatusNotFound, httpdto.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, httpdto.FromUser(u))
}

// bindUserRequest parses and validates the shared user body. Responds 400
// with the plain-text body the clients expect and returns ok=false when
// the body is unusable.
func bindUserRequest(c *gin.Context) (httpdto.UserRequest, bool) {
	var req httpdto.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, invalidUserBody)
		return httpdto.UserRequest{}, false
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		c.String(http.StatusBadRequest, invalidUserBody)
		return httpdto.UserRequest{}, false
	}
	return req, true
}
