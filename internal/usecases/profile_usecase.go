package usecases

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"intern-hub.backend/internal/domain/entities"
	domainerrors "intern-hub.backend/internal/domain/errors"
	"intern-hub.backend/internal/domain/repositories"
)

// ProfileUsecase handles the student profile form
type ProfileUsecase struct {
	accountRepo repositories.AccountRepository
	profileRepo repositories.ProfileRepository
	uow         repositories.UnitOfWork
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(
	accountRepo repositories.AccountRepository,
	profileRepo repositories.ProfileRepository,
	uow repositories.UnitOfWork,
) *ProfileUsecase {
	return &ProfileUsecase{
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		uow:         uow,
	}
}

// Get returns the account with its profile attached. An account without
// a profile is not an error; Profile stays nil.
func (u *ProfileUsecase) Get(ctx context.Context, accountID uuid.UUID) (*entities.Account, error) {
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

// Save validates the full form, then writes the account identity fields
// and the profile with its four child collections in one transaction.
// A complete save auto-approves the account unless the profile was
// rejected by an admin.
func (u *ProfileUsecase) Save(ctx context.Context, accountID uuid.UUID, input *entities.SaveProfileInput) (*entities.Account, error) {
	if fieldErrors := validateProfileInput(input); len(fieldErrors) > 0 {
		return nil, domainerrors.NewValidationError(fieldErrors)
	}

	firstName := nullFromInput(input.FirstName)
	lastName := nullFromInput(input.LastName)
	identity := entities.IdentityUpdate{
		FirstName:     firstName,
		LastName:      lastName,
		Name:          joinedName(firstName, lastName),
		StudentNumber: nullFromInput(input.StudentNumber),
		Establishment: nullFromInput(input.Establishment),
		Diploma:       nullFromInput(input.Diploma),
	}

	courses, skills, languages, experiences := input.NormalizedChildren()
	profile := &entities.Profile{
		AccountID:          accountID,
		Phone:              nullFromInput(input.Phone),
		City:               nullFromInput(input.City),
		Linkedin:           nullFromInput(input.Linkedin),
		Presentation:       nullFromInput(input.Presentation),
		ExpectedGraduation: nullFromInput(input.ExpectedGraduation),
		ClassProjects:      nullFromInput(input.ClassProjects),
		IsComplete:         true,
		IsAvailableForWork: input.IsAvailableForWork == nil || *input.IsAvailableForWork,
		Courses:            courses,
		Skills:             skills,
		Languages:          languages,
		Experiences:        experiences,
	}

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.accountRepo.UpdateIdentity(txCtx, accountID, identity); err != nil {
			return err
		}
		if err := u.profileRepo.Replace(txCtx, profile); err != nil {
			return err
		}
		// Replace copied the stored review flags back onto profile
		if profile.IsComplete && !profile.IsProfileRejected {
			return u.accountRepo.SetApproval(txCtx, accountID, true, false)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.Get(ctx, accountID)
}

func validateProfileInput(input *entities.SaveProfileInput) map[string]string {
	fieldErrors := make(map[string]string)

	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	studentNumber := strings.TrimSpace(input.StudentNumber)
	establishment := strings.TrimSpace(input.Establishment)
	diploma := strings.TrimSpace(input.Diploma)
	phone := strings.TrimSpace(input.Phone)
	city := strings.TrimSpace(input.City)
	presentation := strings.TrimSpace(input.Presentation)

	if firstName == "" {
		fieldErrors["firstName"] = "First name is required"
	}
	if lastName == "" {
		fieldErrors["lastName"] = "Last name is required"
	}
	if studentNumber == "" {
		fieldErrors["studentNumber"] = "Student number is required"
	}
	if establishment == "" {
		fieldErrors["establishment"] = "Establishment is required"
	}
	if diploma == "" {
		fieldErrors["diploma"] = "Diploma is required"
	}
	if phone == "" {
		fieldErrors["phone"] = "Phone is required"
	} else if utf8.RuneCountInString(phone) < 6 {
		fieldErrors["phone"] = "Phone number looks too short"
	}
	if city == "" {
		fieldErrors["city"] = "City is required"
	}
	if presentation == "" {
		fieldErrors["presentation"] = "Presentation is required"
	} else if utf8.RuneCountInString(presentation) < 30 {
		// counted in characters, not bytes, so accented text measures
		// the way students expect
		fieldErrors["presentation"] = "Presentation should be at least 30 characters"
	}

	return fieldErrors
}

func joinedName(first, last null.String) null.String {
	parts := make([]string, 0, 2)
	if first.Valid {
		parts = append(parts, first.String)
	}
	if last.Valid {
		parts = append(parts, last.String)
	}
	if len(parts) == 0 {
		return null.String{}
	}
	return null.StringFrom(strings.Join(parts, " "))
}
