package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"intern-hub.backend/internal/domain/entities"
	domainerrors "intern-hub.backend/internal/domain/errors"
	"intern-hub.backend/internal/domain/repositories"
	"intern-hub.backend/internal/interfaces/http/response"
	"intern-hub.backend/pkg/utils"
)

// ReviewService is the slice of the review usecase the handler needs
type ReviewService interface {
	ApproveAccount(ctx context.Context, id uuid.UUID) (*entities.Account, error)
	RejectAccount(ctx context.Context, id uuid.UUID) (*entities.Account, error)
	ApproveProfile(ctx context.Context, accountID uuid.UUID) (*entities.Account, error)
	RejectProfile(ctx context.Context, accountID uuid.UUID) (*entities.Account, error)
	ListAccounts(ctx context.Context, status string, page, limit int) ([]*entities.Account, utils.PaginationMeta, error)
	ListStudents(ctx context.Context, status string, page, limit int) ([]*entities.Account, utils.PaginationMeta, error)
	GetStudent(ctx context.Context, id uuid.UUID) (*entities.Account, error)
}

// StatsService serves the dashboard counters
type StatsService interface {
	Get(ctx context.Context) (*repositories.DirectoryStats, error)
}

// AdminHandler handles the admin review endpoints
type AdminHandler struct {
	review ReviewService
	stats  StatsService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(review ReviewService, stats StatsService) *AdminHandler {
	return &AdminHandler{review: review, stats: stats}
}

// ListUsers handles GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, limit := paginationQuery(c)

	accounts, meta, err := h.review.ListAccounts(c.Request.Context(), c.Query("status"), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	users := make([]gin.H, 0, len(accounts))
	for _, a := range accounts {
		users = append(users, reviewedAccount(a))
	}
	response.Success(c, http.StatusOK, "Users fetched successfully", gin.H{
		"users":      users,
		"pagination": meta,
	})
}

// ApproveUser handles POST /api/v1/admin/users/:id/approve
func (h *AdminHandler) ApproveUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	account, err := h.review.ApproveAccount(c.Request.Context(), id)
	if err != nil {
		h.reviewError(c, err, "Could not approve user")
		return
	}
	response.Success(c, http.StatusOK, "User approved successfully", gin.H{"user": reviewedAccount(account)})
}

// RejectUser handles POST /api/v1/admin/users/:id/reject
func (h *AdminHandler) RejectUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	account, err := h.review.RejectAccount(c.Request.Context(), id)
	if err != nil {
		h.reviewError(c, err, "Could not reject user")
		return
	}
	response.Success(c, http.StatusOK, "User rejected successfully", gin.H{"user": reviewedAccount(account)})
}

// ListStudents handles GET /api/v1/admin/students
func (h *AdminHandler) ListStudents(c *gin.Context) {
	page, limit := paginationQuery(c)

	students, meta, err := h.review.ListStudents(c.Request.Context(), c.Query("status"), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	rows := make([]gin.H, 0, len(students))
	for _, s := range students {
		rows = append(rows, studentData(s))
	}
	response.Success(c, http.StatusOK, "Students fetched successfully", gin.H{
		"students":   rows,
		"pagination": meta,
	})
}

// GetStudent handles GET /api/v1/admin/students/:id
func (h *AdminHandler) GetStudent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	account, err := h.review.GetStudent(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, "Student not found", nil)
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Student fetched successfully", studentData(account))
}

// ApproveStudent handles POST /api/v1/admin/students/:id/approve
func (h *AdminHandler) ApproveStudent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	account, err := h.review.ApproveProfile(c.Request.Context(), id)
	if err != nil {
		h.reviewError(c, err, "Failed to approve user")
		return
	}
	response.Success(c, http.StatusOK, "User approved successfully", gin.H{"user": studentData(account)})
}

// RejectStudent handles POST /api/v1/admin/students/:id/reject
func (h *AdminHandler) RejectStudent(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	account, err := h.review.RejectProfile(c.Request.Context(), id)
	if err != nil {
		h.reviewError(c, err, "Failed to reject user")
		return
	}
	response.Success(c, http.StatusOK, "User rejected successfully", gin.H{"user": studentData(account)})
}

// Stats handles GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Get(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch admin stats", nil)
		return
	}
	response.Success(c, http.StatusOK, "", stats)
}

func (h *AdminHandler) reviewError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, domainerrors.ErrNotFound) {
		response.Fail(c, http.StatusNotFound, "User not found", nil)
		return
	}
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		response.Fail(c, appErr.Status, appErr.Message, nil)
		return
	}
	response.Fail(c, http.StatusInternalServerError, fallback, nil)
}

func idParam(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Param("id")
	if raw == "" {
		response.Fail(c, http.StatusBadRequest, "User id is missing", nil)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "Invalid user id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func paginationQuery(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	return page, limit
}
