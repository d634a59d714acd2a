package usecases

import (
	"context"
	"strings"

	"intern-hub.backend/internal/domain/entities"
	"intern-hub.backend/internal/domain/repositories"
	"intern-hub.backend/pkg/utils"
)

// DirectoryUsecase serves the public intern directory
type DirectoryUsecase struct {
	profileRepo repositories.ProfileRepository
}

// NewDirectoryUsecase creates a new directory usecase
func NewDirectoryUsecase(profileRepo repositories.ProfileRepository) *DirectoryUsecase {
	return &DirectoryUsecase{profileRepo: profileRepo}
}

// Search runs the visibility-gated directory query. The "all" sentinel
// on city and diploma means no narrowing.
func (u *DirectoryUsecase) Search(ctx context.Context, query, city, diploma string, page, limit int) ([]*entities.Account, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)

	filter := repositories.DirectorySearchFilter{
		Query:   strings.TrimSpace(query),
		City:    normalizeFacet(city),
		Diploma: normalizeFacet(diploma),
		Offset:  params.CalculateOffset(),
		Limit:   params.Limit,
	}

	results, total, err := u.profileRepo.Search(ctx, filter)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return results, utils.CalculateMeta(total, params.Page, params.Limit), nil
}

func normalizeFacet(v string) string {
	trimmed := strings.TrimSpace(v)
	if strings.EqualFold(trimmed, "all") {
		return ""
	}
	return trimmed
}
