package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"intern-hub.backend/internal/domain/entities"
	domainerrors "intern-hub.backend/internal/domain/errors"
	"intern-hub.backend/internal/interfaces/http/middleware"
	"intern-hub.backend/internal/interfaces/http/response"
)

// AuthService is the slice of the auth usecase the handler needs
type AuthService interface {
	Signup(ctx context.Context, input *entities.SignupInput) (*entities.Account, error)
	Login(ctx context.Context, input *entities.LoginInput) (*entities.Account, string, error)
	Me(ctx context.Context, accountID uuid.UUID) (*entities.Account, error)
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	service      AuthService
	tokenExpiry  time.Duration
	secureCookie bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service AuthService, tokenExpiry time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		service:      service,
		tokenExpiry:  tokenExpiry,
		secureCookie: secureCookie,
	}
}

// Signup handles POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var input entities.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Fail(c, http.StatusBadRequest, "Email and password are required", nil)
		return
	}

	account, err := h.service.Signup(c.Request.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrAccountRejected):
			response.Fail(c, http.StatusForbidden,
				"This email has been rejected by the administrator and cannot be used.",
				gin.H{"status": domainerrors.TagRejected})
		case errors.Is(err, domainerrors.ErrAlreadyExists):
			response.Fail(c, http.StatusConflict, "Email already in use", nil)
		case errors.Is(err, domainerrors.ErrBadRequest):
			response.Fail(c, http.StatusBadRequest, "Email and password are required", nil)
		default:
			response.Error(c, err)
		}
		return
	}

	response.Success(c, http.StatusCreated,
		"Account created successfully. Your account is pending admin approval.",
		gin.H{"user": reviewedAccount(account)})
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Fail(c, http.StatusBadRequest, "Email and password are required", nil)
		return
	}

	account, token, err := h.service.Login(c.Request.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, domainerrors.ErrInvalidCredentials):
			response.Fail(c, http.StatusUnauthorized, "Invalid email or password", nil)
		case errors.Is(err, domainerrors.ErrAccountRejected):
			response.Fail(c, http.StatusForbidden,
				"Your account has been rejected. You cannot log in with this email.",
				gin.H{"status": domainerrors.TagRejected})
		case errors.Is(err, domainerrors.ErrPendingApproval):
			response.Fail(c, http.StatusForbidden,
				"Your account is pending admin approval.",
				gin.H{"status": domainerrors.TagPendingApproval})
		default:
			response.Error(c, err)
		}
		return
	}

	h.setAccessCookie(c, token, int(h.tokenExpiry.Seconds()))
	response.Success(c, http.StatusOK, "Logged in successfully", gin.H{
		"user":  safeAccount(account),
		"token": token,
	})
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setAccessCookie(c, "", -1)
	response.Success(c, http.StatusOK, "Logged out successfully", nil)
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	account, err := h.service.Me(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "User not found", nil)
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", gin.H{"user": safeAccount(account)})
}

func (h *AuthHandler) setAccessCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AccessTokenCookie, token, maxAge, "/", "", h.secureCookie, true)
}
