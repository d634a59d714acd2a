package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"intern-hub.backend/internal/domain/entities"
)

// StudentListFilter narrows the admin student review list by
// profile-track derived status. Only complete profiles are listed.
type StudentListFilter struct {
	Status entities.ReviewStatus
	Offset int
	Limit  int
}

// DirectorySearchFilter is the public directory query. Empty strings
// mean "no narrowing"; Query matches case-insensitively across first
// name, last name, email and student number.
type DirectorySearchFilter struct {
	Query   string
	City    string
	Diploma string
	Offset  int
	Limit   int
}

// DirectoryStats are the admin dashboard counters.
type DirectoryStats struct {
	TotalStudents    int64 `json:"totalStudents"`
	ApprovedProfiles int64 `json:"approvedProfiles"`
	PendingProfiles  int64 `json:"pendingProfiles"`
	Last24h          struct {
		NewStudents      int64 `json:"newStudents"`
		ApprovedProfiles int64 `json:"approvedProfiles"`
		PendingProfiles  int64 `json:"pendingProfiles"`
	} `json:"last24h"`
}

// ProfileRepository defines profile data operations
type ProfileRepository interface {
	GetByAccountID(ctx context.Context, accountID uuid.UUID) (*entities.Profile, error)
	// Replace upserts the profile scalars and recreates all four child
	// collections from the given profile. Review flags on an existing
	// row are preserved and copied back onto the argument. Callers run
	// it inside a UnitOfWork transaction.
	Replace(ctx context.Context, profile *entities.Profile) error
	SetReview(ctx context.Context, accountID uuid.UUID, approved, rejected bool) error
	ListStudents(ctx context.Context, filter StudentListFilter) ([]*entities.Account, int64, error)
	Search(ctx context.Context, filter DirectorySearchFilter) ([]*entities.Account, int64, error)
	Stats(ctx context.Context, since time.Time) (*DirectoryStats, error)
}
