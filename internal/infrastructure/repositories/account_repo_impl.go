package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"intern-hub.backend/internal/domain/entities"
	domainerrors "intern-hub.backend/internal/domain/errors"
	domainRepos "intern-hub.backend/internal/domain/repositories"
	"intern-hub.backend/internal/infrastructure/models"
)

// AccountRepository implements account data operations
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create creates a new account. A duplicate email surfaces as
// ErrAlreadyExists so a concurrent signup racing past the usecase's
// existence check still gets a conflict, not a 500.
func (r *AccountRepository) Create(ctx context.Context, account *entities.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	m := accountToModel(account)
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	account.CreatedAt = m.CreatedAt
	account.UpdatedAt = m.UpdatedAt
	return nil
}

// isUniqueViolation recognizes a unique-constraint failure from either
// backend: SQLSTATE 23505 on postgres, the constraint message on sqlite.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var coded interface{ SQLState() string }
	if errors.As(err, &coded) && coded.SQLState() == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// GetByID gets an account by ID
func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Account, error) {
	var m models.Account
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return accountToEntity(&m), nil
}

// GetByEmail gets an account by email. Callers normalize the email to
// lowercase before lookup; rows are stored lowercase.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*entities.Account, error) {
	var m models.Account
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return accountToEntity(&m), nil
}

// UpdateIdentity updates the legacy identity fields written by a profile save
func (r *AccountRepository) UpdateIdentity(ctx context.Context, id uuid.UUID, upd entities.IdentityUpdate) error {
	updates := map[string]interface{}{
		"first_name":     upd.FirstName.Ptr(),
		"last_name":      upd.LastName.Ptr(),
		"name":           upd.Name.Ptr(),
		"student_number": upd.StudentNumber.Ptr(),
		"establishment":  upd.Establishment.Ptr(),
		"diploma":        upd.Diploma.Ptr(),
		"updated_at":     time.Now(),
	}
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Account{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetApproval writes both approval flags in one statement
func (r *AccountRepository) SetApproval(ctx context.Context, id uuid.UUID, approved, rejected bool) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Account{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_approved": approved,
		"is_rejected": rejected,
		"updated_at":  time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists USER accounts filtered by account-track derived status,
// newest first. Admins never show up in the review list.
func (r *AccountRepository) List(ctx context.Context, filter domainRepos.AccountListFilter) ([]*entities.Account, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Account{}).
		Where("role = ?", string(entities.AccountRoleUser))
	query = applyAccountStatusFilter(query, filter.Status)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var accountModels []models.Account
	if err := query.Order("created_at DESC").Offset(filter.Offset).Limit(filter.Limit).Find(&accountModels).Error; err != nil {
		return nil, 0, err
	}

	accounts := make([]*entities.Account, 0, len(accountModels))
	for i := range accountModels {
		accounts = append(accounts, accountToEntity(&accountModels[i]))
	}
	return accounts, total, nil
}

func applyAccountStatusFilter(query *gorm.DB, status entities.ReviewStatus) *gorm.DB {
	switch status {
	case entities.StatusApproved:
		return query.Where("is_rejected = ? AND is_approved = ?", false, true)
	case entities.StatusRejected:
		return query.Where("is_rejected = ?", true)
	case entities.StatusPending:
		return query.Where("is_rejected = ? AND is_approved = ?", false, false)
	default:
		return query
	}
}

func accountToModel(a *entities.Account) *models.Account {
	return &models.Account{
		ID:            a.ID,
		Email:         a.Email,
		Name:          a.Name.Ptr(),
		PasswordHash:  a.PasswordHash,
		Role:          string(a.Role),
		FirstName:     a.FirstName.Ptr(),
		LastName:      a.LastName.Ptr(),
		StudentNumber: a.StudentNumber.Ptr(),
		Establishment: a.Establishment.Ptr(),
		Diploma:       a.Diploma.Ptr(),
		IsApproved:    a.IsApproved,
		IsRejected:    a.IsRejected,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func accountToEntity(m *models.Account) *entities.Account {
	a := &entities.Account{
		ID:            m.ID,
		Email:         m.Email,
		Name:          null.StringFromPtr(m.Name),
		PasswordHash:  m.PasswordHash,
		Role:          entities.AccountRole(m.Role),
		FirstName:     null.StringFromPtr(m.FirstName),
		LastName:      null.StringFromPtr(m.LastName),
		StudentNumber: null.StringFromPtr(m.StudentNumber),
		Establishment: null.StringFromPtr(m.Establishment),
		Diploma:       null.StringFromPtr(m.Diploma),
		IsApproved:    m.IsApproved,
		IsRejected:    m.IsRejected,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Profile != nil {
		a.Profile = profileToEntity(m.Profile)
	}
	return a
}
