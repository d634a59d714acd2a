package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"intern-hub.backend/internal/domain/entities"
	domainerrors "intern-hub.backend/internal/domain/errors"
	"intern-hub.backend/internal/domain/repositories"
	"intern-hub.backend/pkg/crypto"
	"intern-hub.backend/pkg/jwt"
)

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	accountRepo repositories.AccountRepository
	jwtService  *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(accountRepo repositories.AccountRepository, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{
		accountRepo: accountRepo,
		jwtService:  jwtService,
	}
}

// Signup creates a pending USER account. A previously rejected email is
// permanently blocked from signing up again.
func (u *AuthUsecase) Signup(ctx context.Context, input *entities.SignupInput) (*entities.Account, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrBadRequest
	}

	existing, err := u.accountRepo.GetByEmail(ctx, email)
	if err == nil {
		if existing.IsRejected {
			return nil, domainerrors.ErrAccountRejected
		}
		return nil, domainerrors.ErrAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	account := &entities.Account{
		Email:        email,
		Name:         nullFromInput(input.Name),
		PasswordHash: passwordHash,
		Role:         entities.AccountRoleUser,
		IsApproved:   false,
		IsRejected:   false,
	}
	if err := u.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Login checks credentials first, then the account gate. A bad password
// never reveals whether the account is blocked.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.Account, string, error) {
	email := normalizeEmail(input.Email)

	account, err := u.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, "", domainerrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !crypto.CheckPassword(input.Password, account.PasswordHash) {
		return nil, "", domainerrors.ErrInvalidCredentials
	}

	switch entities.ResolveAccountStatus(account) {
	case entities.StatusRejected:
		return nil, "", domainerrors.ErrAccountRejected
	case entities.StatusPending:
		return nil, "", domainerrors.ErrPendingApproval
	}

	token, err := u.jwtService.GenerateToken(account.ID, account.Email, string(account.Role))
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

// Me returns the authenticated account
func (u *AuthUsecase) Me(ctx context.Context, accountID uuid.UUID) (*entities.Account, error) {
	return u.accountRepo.GetByID(ctx, accountID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func nullFromInput(s string) null.String {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return null.String{}
	}
	return null.StringFrom(trimmed)
}
