package repositories

import (
	"context"

	"github.com/google/uuid"
	"intern-hub.backend/internal/domain/entities"
)

// AccountListFilter narrows the admin user list by account-track
// derived status. An empty status means no filter.
type AccountListFilter struct {
	Status entities.ReviewStatus
	Offset int
	Limit  int
}

// AccountRepository defines account data operations
type AccountRepository interface {
	Create(ctx context.Context, account *entities.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Account, error)
	GetByEmail(ctx context.Context, email string) (*entities.Account, error)
	UpdateIdentity(ctx context.Context, id uuid.UUID, upd entities.IdentityUpdate) error
	// SetApproval writes both flags in one statement so the
	// never-both-true invariant holds after every call.
	SetApproval(ctx context.Context, id uuid.UUID, approved, rejected bool) error
	List(ctx context.Context, filter AccountListFilter) ([]*entities.Account, int64, error)
}
