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

// ProfileRepository implements profile data operations
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetByAccountID gets a profile with its child collections
func (r *ProfileRepository) GetByAccountID(ctx context.Context, accountID uuid.UUID) (*entities.Profile, error) {
	var m models.Profile
	err := GetDB(ctx, r.db).WithContext(ctx).
		Preload("Courses").
		Preload("Skills").
		Preload("Languages").
		Preload("Experiences").
		Where("account_id = ?", accountID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return profileToEntity(&m), nil
}

// Replace upserts the profile row and recreates every child collection
// from the submitted payload. The form is the single source of truth
// per save, so children are deleted in full and recreated rather than
// diffed; child ids are not stable across saves.
func (r *ProfileRepository) Replace(ctx context.Context, profile *entities.Profile) error {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var existing models.Profile
	err := db.Where("account_id = ?", profile.AccountID).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile.ID = uuid.New()
		m := profileToModel(profile)
		if err := db.Create(m).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		profile.ID = existing.ID
		profile.IsProfileApproved = existing.IsProfileApproved
		profile.IsProfileRejected = existing.IsProfileRejected
		updates := map[string]interface{}{
			"phone":                 profile.Phone.Ptr(),
			"city":                  profile.City.Ptr(),
			"linkedin":              profile.Linkedin.Ptr(),
			"presentation":          profile.Presentation.Ptr(),
			"expected_graduation":   profile.ExpectedGraduation.Ptr(),
			"class_projects":        profile.ClassProjects.Ptr(),
			"is_complete":           profile.IsComplete,
			"is_available_for_work": profile.IsAvailableForWork,
			"updated_at":            time.Now(),
		}
		if err := db.Model(&models.Profile{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
			return err
		}
		for _, child := range []interface{}{&models.Course{}, &models.Skill{}, &models.Language{}, &models.Experience{}} {
			if err := db.Where("profile_id = ?", existing.ID).Delete(child).Error; err != nil {
				return err
			}
		}
	}

	return r.createChildren(db, profile)
}

func (r *ProfileRepository) createChildren(db *gorm.DB, profile *entities.Profile) error {
	for i := range profile.Courses {
		c := &profile.Courses[i]
		c.ID = uuid.New()
		m := &models.Course{ID: c.ID, ProfileID: profile.ID, Name: c.Name, Note: c.Note.Ptr()}
		if err := db.Create(m).Error; err != nil {
			return err
		}
	}
	for i := range profile.Skills {
		s := &profile.Skills[i]
		s.ID = uuid.New()
		m := &models.Skill{
			ID:                 s.ID,
			ProfileID:          profile.ID,
			Name:               s.Name,
			Level:              s.Level,
			CertificateURL:     s.CertificateURL.Ptr(),
			IsCertificateValid: s.IsCertificateValid,
		}
		if err := db.Create(m).Error; err != nil {
			return err
		}
	}
	for i := range profile.Languages {
		l := &profile.Languages[i]
		l.ID = uuid.New()
		m := &models.Language{ID: l.ID, ProfileID: profile.ID, Name: l.Name, Level: l.Level}
		if err := db.Create(m).Error; err != nil {
			return err
		}
	}
	for i := range profile.Experiences {
		ex := &profile.Experiences[i]
		ex.ID = uuid.New()
		m := &models.Experience{
			ID:              ex.ID,
			ProfileID:       profile.ID,
			Title:           ex.Title,
			Company:         ex.Company,
			Period:          ex.Period,
			SupervisorName:  ex.SupervisorName.Ptr(),
			SupervisorEmail: ex.SupervisorEmail.Ptr(),
		}
		if err := db.Create(m).Error; err != nil {
			return err
		}
	}
	return nil
}

// SetReview writes both profile review flags in one statement
func (r *ProfileRepository) SetReview(ctx context.Context, accountID uuid.UUID, approved, rejected bool) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Profile{}).
		Where("account_id = ?", accountID).
		Updates(map[string]interface{}{
			"is_profile_approved": approved,
			"is_profile_rejected": rejected,
			"updated_at":          time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListStudents lists non-admin accounts with a complete profile,
// filtered by profile-track derived status, newest first
func (r *ProfileRepository) ListStudents(ctx context.Context, filter domainRepos.StudentListFilter) ([]*entities.Account, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Account{}).
		Joins("JOIN profiles ON profiles.account_id = accounts.id").
		Where("accounts.role <> ?", string(entities.AccountRoleAdmin)).
		Where("profiles.is_complete = ?", true)

	switch filter.Status {
	case entities.StatusApproved:
		query = query.Where("profiles.is_profile_rejected = ? AND profiles.is_profile_approved = ?", false, true)
	case entities.StatusRejected:
		query = query.Where("profiles.is_profile_rejected = ?", true)
	case entities.StatusPending:
		query = query.Where("profiles.is_profile_rejected = ? AND profiles.is_profile_approved = ?", false, false)
	}

	return r.findAccountsWithProfile(query, filter.Offset, filter.Limit)
}

// Search returns the public directory page. A pair is visible iff the
// account is approved and not rejected and the profile is complete,
// profile-approved and available for work.
func (r *ProfileRepository) Search(ctx context.Context, filter domainRepos.DirectorySearchFilter) ([]*entities.Account, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Account{}).
		Joins("JOIN profiles ON profiles.account_id = accounts.id").
		Where("accounts.is_approved = ? AND accounts.is_rejected = ?", true, false).
		Where("profiles.is_complete = ? AND profiles.is_profile_approved = ? AND profiles.is_available_for_work = ?", true, true, true)

	if q := strings.TrimSpace(filter.Query); q != "" {
		term := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"LOWER(accounts.first_name) LIKE ? OR LOWER(accounts.last_name) LIKE ? OR LOWER(accounts.email) LIKE ? OR LOWER(accounts.student_number) LIKE ?",
			term, term, term, term,
		)
	}
	if filter.City != "" {
		query = query.Where("profiles.city = ?", filter.City)
	}
	if filter.Diploma != "" {
		query = query.Where("accounts.diploma = ?", filter.Diploma)
	}

	return r.findAccountsWithProfile(query, filter.Offset, filter.Limit)
}

func (r *ProfileRepository) findAccountsWithProfile(query *gorm.DB, offset, limit int) ([]*entities.Account, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var accountModels []models.Account
	err := query.
		Preload("Profile").
		Preload("Profile.Courses").
		Preload("Profile.Skills").
		Preload("Profile.Languages").
		Preload("Profile.Experiences").
		Order("accounts.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&accountModels).Error
	if err != nil {
		return nil, 0, err
	}

	accounts := make([]*entities.Account, 0, len(accountModels))
	for i := range accountModels {
		accounts = append(accounts, accountToEntity(&accountModels[i]))
	}
	return accounts, total, nil
}

// Stats computes the admin dashboard counters. since bounds the
// last-24h window.
func (r *ProfileRepository) Stats(ctx context.Context, since time.Time) (*domainRepos.DirectoryStats, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)
	stats := &domainRepos.DirectoryStats{}

	base := func() *gorm.DB {
		return db.Model(&models.Account{}).
			Joins("JOIN profiles ON profiles.account_id = accounts.id").
			Where("profiles.is_complete = ?", true)
	}

	if err := base().Count(&stats.TotalStudents).Error; err != nil {
		return nil, err
	}
	if err := base().Where("profiles.is_profile_approved = ?", true).Count(&stats.ApprovedProfiles).Error; err != nil {
		return nil, err
	}
	if err := base().Where("profiles.is_profile_approved = ? AND profiles.is_profile_rejected = ?", false, false).Count(&stats.PendingProfiles).Error; err != nil {
		return nil, err
	}
	if err := base().Where("accounts.created_at >= ?", since).Count(&stats.Last24h.NewStudents).Error; err != nil {
		return nil, err
	}
	if err := base().Where("accounts.created_at >= ? AND profiles.is_profile_approved = ?", since, true).Count(&stats.Last24h.ApprovedProfiles).Error; err != nil {
		return nil, err
	}
	if err := base().Where("accounts.created_at >= ? AND profiles.is_profile_approved = ? AND profiles.is_profile_rejected = ?", since, false, false).Count(&stats.Last24h.PendingProfiles).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func profileToModel(p *entities.Profile) *models.Profile {
	return &models.Profile{
		ID:                 p.ID,
		AccountID:          p.AccountID,
		Phone:              p.Phone.Ptr(),
		City:               p.City.Ptr(),
		Linkedin:           p.Linkedin.Ptr(),
		Presentation:       p.Presentation.Ptr(),
		ExpectedGraduation: p.ExpectedGraduation.Ptr(),
		ClassProjects:      p.ClassProjects.Ptr(),
		IsComplete:         p.IsComplete,
		IsAvailableForWork: p.IsAvailableForWork,
		IsProfileApproved:  p.IsProfileApproved,
		IsProfileRejected:  p.IsProfileRejected,
	}
}

func profileToEntity(m *models.Profile) *entities.Profile {
	p := &entities.Profile{
		ID:                 m.ID,
		AccountID:          m.AccountID,
		Phone:              null.StringFromPtr(m.Phone),
		City:               null.StringFromPtr(m.City),
		Linkedin:           null.StringFromPtr(m.Linkedin),
		Presentation:       null.StringFromPtr(m.Presentation),
		ExpectedGraduation: null.StringFromPtr(m.ExpectedGraduation),
		ClassProjects:      null.StringFromPtr(m.ClassProjects),
		IsComplete:         m.IsComplete,
		IsAvailableForWork: m.IsAvailableForWork,
		IsProfileApproved:  m.IsProfileApproved,
		IsProfileRejected:  m.IsProfileRejected,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
	for _, c := range m.Courses {
		p.Courses = append(p.Courses, entities.Course{ID: c.ID, Name: c.Name, Note: null.StringFromPtr(c.Note)})
	}
	for _, s := range m.Skills {
		p.Skills = append(p.Skills, entities.Skill{
			ID:                 s.ID,
			Name:               s.Name,
			Level:              s.Level,
			CertificateURL:     null.StringFromPtr(s.CertificateURL),
			IsCertificateValid: s.IsCertificateValid,
		})
	}
	for _, l := range m.Languages {
		p.Languages = append(p.Languages, entities.Language{ID: l.ID, Name: l.Name, Level: l.Level})
	}
	for _, ex := range m.Experiences {
		p.Experiences = append(p.Experiences, entities.Experience{
			ID:              ex.ID,
			Title:           ex.Title,
			Company:         ex.Company,
			Period:          ex.Period,
			SupervisorName:  null.StringFromPtr(ex.SupervisorName),
			SupervisorEmail: null.StringFromPtr(ex.SupervisorEmail),
		})
	}
	return p
}
