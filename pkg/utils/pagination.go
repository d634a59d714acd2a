package utils

import "math"

const (
	// DefaultLimit is used when the requested page size is absent or not allowed
	DefaultLimit = 10
)

// AllowedLimits are the page sizes the API accepts
var AllowedLimits = []int{5, 10, 25}

// PaginationParams holds pagination request parameters
type PaginationParams struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// PaginationMeta holds pagination response metadata
type PaginationMeta struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	HasNext     bool  `json:"hasNext"`
	HasPrevious bool  `json:"hasPrevious"`
}

// NormalizeLimit clamps the requested page size to the allow-list
func NormalizeLimit(limit int) int {
	for _, allowed := range AllowedLimits {
		if limit == allowed {
			return limit
		}
	}
	return DefaultLimit
}

// GetPaginationParams extracts page and limit with defaults
func GetPaginationParams(page, limit int) PaginationParams {
	if page < 1 {
		page = 1
	}
	return PaginationParams{
		Page:  page,
		Limit: NormalizeLimit(limit),
	}
}

// CalculateOffset returns the SQL offset
func (p PaginationParams) CalculateOffset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// CalculateMeta generates pagination metadata. TotalPages is never below
// one so clients always render at least one page.
func CalculateMeta(total int64, page, limit int) PaginationMeta {
	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	if totalPages < 1 {
		totalPages = 1
	}

	return PaginationMeta{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
