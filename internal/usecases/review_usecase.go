package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"intern-hub.backend/internal/domain/entities"
	domainerrors "intern-hub.backend/internal/domain/errors"
	"intern-hub.backend/internal/domain/repositories"
	"intern-hub.backend/pkg/logger"
	"intern-hub.backend/pkg/utils"
)

// ReviewUsecase handles the admin approval workflows: the account track
// that gates login and the profile track that gates the directory.
type ReviewUsecase struct {
	accountRepo repositories.AccountRepository
	profileRepo repositories.ProfileRepository
	notifier    repositories.Notifier
}

// NewReviewUsecase creates a new review usecase
func NewReviewUsecase(
	accountRepo repositories.AccountRepository,
	profileRepo repositories.ProfileRepository,
	notifier repositories.Notifier,
) *ReviewUsecase {
	return &ReviewUsecase{
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		notifier:    notifier,
	}
}

// ApproveAccount grants login access. Re-approving is a no-op.
func (u *ReviewUsecase) ApproveAccount(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
	if err := u.accountRepo.SetApproval(ctx, id, true, false); err != nil {
		return nil, err
	}
	account, err := u.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.notifyApproved(ctx, account)
	return account, nil
}

// RejectAccount revokes login access and permanently blocks the email
func (u *ReviewUsecase) RejectAccount(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
	if err := u.accountRepo.SetApproval(ctx, id, false, true); err != nil {
		return nil, err
	}
	account, err := u.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.notifyRejected(ctx, account)
	return account, nil
}

// ApproveProfile publishes the profile to the directory. Only the
// profile flags change; the account track is untouched.
func (u *ReviewUsecase) ApproveProfile(ctx context.Context, accountID uuid.UUID) (*entities.Account, error) {
	if err := u.profileRepo.SetReview(ctx, accountID, true, false); err != nil {
		return nil, err
	}
	account, err := u.getWithProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}
	u.notifyApproved(ctx, account)
	return account, nil
}

// RejectProfile pulls the profile from the directory and disables the
// auto-approve shortcut on future saves
func (u *ReviewUsecase) RejectProfile(ctx context.Context, accountID uuid.UUID) (*entities.Account, error) {
	if err := u.profileRepo.SetReview(ctx, accountID, false, true); err != nil {
		return nil, err
	}
	account, err := u.getWithProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}
	u.notifyRejected(ctx, account)
	return account, nil
}

// ListAccounts returns the admin user list filtered by account-track status
func (u *ReviewUsecase) ListAccounts(ctx context.Context, status string, page, limit int) ([]*entities.Account, utils.PaginationMeta, error) {
	parsed, err := parseStatusFilter(status)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}

	params := utils.GetPaginationParams(page, limit)
	accounts, total, err := u.accountRepo.List(ctx, repositories.AccountListFilter{
		Status: parsed,
		Offset: params.CalculateOffset(),
		Limit:  params.Limit,
	})
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return accounts, utils.CalculateMeta(total, params.Page, params.Limit), nil
}

// ListStudents returns the admin review list of complete student
// profiles filtered by profile-track status
func (u *ReviewUsecase) ListStudents(ctx context.Context, status string, page, limit int) ([]*entities.Account, utils.PaginationMeta, error) {
	parsed, err := parseStatusFilter(status)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}

	params := utils.GetPaginationParams(page, limit)
	students, total, err := u.profileRepo.ListStudents(ctx, repositories.StudentListFilter{
		Status: parsed,
		Offset: params.CalculateOffset(),
		Limit:  params.Limit,
	})
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return students, utils.CalculateMeta(total, params.Page, params.Limit), nil
}

// GetStudent returns one student with the full profile for the review dialog
func (u *ReviewUsecase) GetStudent(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
	return u.getWithProfile(ctx, id)
}

func (u *ReviewUsecase) getWithProfile(ctx context.Context, accountID uuid.UUID) (*entities.Account, error) {
	account, err := u.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	profile, err := u.profileRepo.GetByAccountID(ctx, accountID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	account.Profile = profile
	return account, nil
}

// notification failures never fail the review action
func (u *ReviewUsecase) notifyApproved(ctx context.Context, account *entities.Account) {
	if u.notifier == nil {
		return
	}
	n := repositories.Notification{To: account.Email, Name: account.Name.String}
	if err := u.notifier.NotifyApproved(ctx, n); err != nil {
		logger.Error(ctx, "approval notification failed", zap.String("email", account.Email), zap.Error(err))
	}
}

func (u *ReviewUsecase) notifyRejected(ctx context.Context, account *entities.Account) {
	if u.notifier == nil {
		return
	}
	n := repositories.Notification{To: account.Email, Name: account.Name.String}
	if err := u.notifier.NotifyRejected(ctx, n); err != nil {
		logger.Error(ctx, "rejection notification failed", zap.String("email", account.Email), zap.Error(err))
	}
}

// parseStatusFilter maps a query value onto a derived status. Empty and
// "all" mean no filter; anything else unknown is a client error.
func parseStatusFilter(status string) (entities.ReviewStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "", "ALL":
		return "", nil
	case string(entities.StatusApproved):
		return entities.StatusApproved, nil
	case string(entities.StatusRejected):
		return entities.StatusRejected, nil
	case string(entities.StatusPending):
		return entities.StatusPending, nil
	default:
		return "", domainerrors.BadRequest("Invalid status filter")
	}
}
