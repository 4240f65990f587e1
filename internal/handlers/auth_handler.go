package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/metrics"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/models"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/repository"
	"github.com/upadhyaysaumya55/CruiseShip-Management-System/internal/services"
)

type AuthHandler struct {
	auth   *services.AuthService
	tokens *services.TokenService
}

func NewAuthHandler(auth *services.AuthService, tokens *services.TokenService) *AuthHandler {
	return &AuthHandler{auth: auth, tokens: tokens}
}

// RegisterRequest deliberately has no role field: the role is fixed by
// the endpoint, and anything the client sends for it is dropped during
// binding.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

var roleLabels = map[models.Role]string{
	models.RoleVoyager:    "Voyager",
	models.RoleAdmin:      "Admin",
	models.RoleManager:    "Manager",
	models.RoleHeadCook:   "HeadCook",
	models.RoleSupervisor: "Supervisor",
}

// Register returns the handler for one role-specific registration
// endpoint.
func (h *AuthHandler) Register(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, fieldErrors(err))
			return
		}

		user, err := h.auth.Register(req.Email, req.Username, req.Password, role)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrDuplicateEmail):
				badRequest(c, map[string][]string{"email": {"This email is already registered."}})
			case errors.Is(err, repository.ErrDuplicateUsername):
				badRequest(c, map[string][]string{"username": {"This username is already taken."}})
			default:
				internalError(c)
			}
			return
		}

		metrics.RegistrationsTotal.WithLabelValues(string(role)).Inc()

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": roleLabels[role] + " registered successfully",
			"user": gin.H{
				"id":       user.ID,
				"username": user.Username,
				"email":    user.Email,
				"role":     user.Role,
			},
		})
	}
}

func (h *AuthHandler) SessionLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Email and password required",
		})
		return
	}

	user, err := h.auth.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid credentials",
			})
			return
		}
		internalError(c)
		return
	}

	session, err := h.auth.LoginSession(user)
	if err != nil {
		internalError(c)
		return
	}

	c.SetCookie(
		services.SessionCookieKey,
		session.ID,
		int(h.auth.SessionTTL().Seconds()),
		"/",
		"",
		false,
		true,
	)

	metrics.LoginsTotal.WithLabelValues("session").Inc()

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"username": user.Username,
		"role":     user.Role,
		"user_id":  user.ID,
	})
}

// SessionLogout always succeeds; an unknown or missing cookie just
// means there is nothing left to invalidate.
func (h *AuthHandler) SessionLogout(c *gin.Context) {
	if sessionID, err := c.Cookie(services.SessionCookieKey); err == nil {
		h.auth.Logout(sessionID)
	}
	c.SetCookie(services.SessionCookieKey, "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}

// Token is the JWT login: verifies credentials and returns an
// access/refresh pair with the identity claims echoed in the body.
func (h *AuthHandler) Token(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, fieldErrors(err))
		return
	}

	user, err := h.auth.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid email or password.",
			})
			return
		}
		internalError(c)
		return
	}

	pair, err := h.tokens.IssuePair(user)
	if err != nil {
		internalError(c)
		return
	}

	metrics.LoginsTotal.WithLabelValues("token").Inc()

	c.JSON(http.StatusOK, gin.H{
		"access":   pair.Access,
		"refresh":  pair.Refresh,
		"user_id":  user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
	})
}

func (h *AuthHandler) TokenRefresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, fieldErrors(err))
		return
	}

	pair, err := h.tokens.Refresh(req.Refresh)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "invalid or expired refresh token",
			})
			return
		}
		internalError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access":  pair.Access,
		"refresh": pair.Refresh,
	})
}
