package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"intern-hub.backend/internal/domain/entities"
	domainerrors "intern-hub.backend/internal/domain/errors"
	"intern-hub.backend/internal/interfaces/http/middleware"
	"intern-hub.backend/internal/interfaces/http/response"
)

// ProfileService is the slice of the profile usecase the handler needs
type ProfileService interface {
	Get(ctx context.Context, accountID uuid.UUID) (*entities.Account, error)
	Save(ctx context.Context, accountID uuid.UUID, input *entities.SaveProfileInput) (*entities.Account, error)
}

// ProfileHandler handles the student profile endpoints
type ProfileHandler struct {
	service ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// Get handles GET /api/v1/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	account, err := h.service.Get(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "User not found", nil)
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Profile fetched successfully", profileData(account))
}

// Save handles PUT /api/v1/profile
func (h *ProfileHandler) Save(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	var input entities.SaveProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	account, err := h.service.Save(c.Request.Context(), accountID, &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "User not found", nil)
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", profileData(account))
}

// Summary handles GET /api/v1/profile/summary
func (h *ProfileHandler) Summary(c *gin.Context) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	account, err := h.service.Get(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "User not found", nil)
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Profile summary fetched successfully", summaryData(account))
}
