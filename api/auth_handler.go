package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pos_inventory/internal/auth"
	"pos_inventory/internal/users"
)

// authHandler implements the register and login endpoints.
type authHandler struct {
	userService *users.Service
	tokens      *auth.TokenManager
	logger      *zap.Logger
}

func newAuthHandler(userService *users.Service, tokens *auth.TokenManager, logger *zap.Logger) *authHandler {
	return &authHandler{
		userService: userService,
		tokens:      tokens,
		logger:      logger,
	}
}

// handleRegister handles POST /api/v1/register.
func (h *authHandler) handleRegister(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrMissingFields), errors.Is(err, users.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.logger.Error("failed to register user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register user"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "user registered", "data": user})
}

// handleLogin handles POST /api/v1/login.
func (h *authHandler) handleLogin(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not registered"})
		case errors.Is(err, users.ErrBadCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect password"})
		default:
			h.logger.Error("failed to log in user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		}
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Role)
	if err != nil {
		h.logger.Error("failed to issue token", zap.Uint("user_id", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
