package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"intern-hub.backend/internal/domain/entities"
	"intern-hub.backend/internal/interfaces/http/response"
	"intern-hub.backend/pkg/utils"
)

// DirectoryService is the slice of the directory usecase the handler needs
type DirectoryService interface {
	Search(ctx context.Context, query, city, diploma string, page, limit int) ([]*entities.Account, utils.PaginationMeta, error)
}

// DirectoryHandler serves the public intern directory
type DirectoryHandler struct {
	service DirectoryService
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(service DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

// Search handles GET /api/v1/interns/search
func (h *DirectoryHandler) Search(c *gin.Context) {
	page, limit := paginationQuery(c)

	results, meta, err := h.service.Search(
		c.Request.Context(),
		c.Query("q"),
		c.DefaultQuery("city", "all"),
		c.DefaultQuery("diploma", "all"),
		page, limit,
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	interns := make([]gin.H, 0, len(results))
	for _, a := range results {
		interns = append(interns, internData(a))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Interns fetched",
		"data":    interns,
		"pagination": gin.H{
			"total":           meta.Total,
			"totalPages":      meta.TotalPages,
			"currentPage":     meta.Page,
			"limit":           meta.Limit,
			"hasNextPage":     meta.HasNext,
			"hasPreviousPage": meta.HasPrevious,
		},
	})
}
