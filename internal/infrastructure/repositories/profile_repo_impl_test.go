package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"intern-hub.backend/internal/domain/entities"
	domainerrors "intern-hub.backend/internal/domain/errors"
	domainRepos "intern-hub.backend/internal/domain/repositories"
)

func TestProfileRepository_ReplaceCreatesThenUpdates(t *testing.T) {
	db := newTestDB(t)
	createAccountTable(t, db)
	createProfileTables(t, db)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	a := seedAccount(t, db, "dan@school.com", false, false)

	_, err := repo.GetByAccountID(ctx, a.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	p := completeProfile(a.ID)
	require.NoError(t, repo.Replace(ctx, p))

	got, err := repo.GetByAccountID(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, got.IsComplete)
	require.Len(t, got.Courses, 1)
	require.Len(t, got.Skills, 1)
	require.Len(t, got.Languages, 1)
	require.Len(t, got.Experiences, 1)
	firstCourseID := got.Courses[0].ID

	// second save fully replaces the children
	p2 := completeProfile(a.ID)
	p2.City = null.StringFrom("Lyon")
	p2.Courses = []entities.Course{
		{Name: "Algorithms"},
		{Name: "Databases", Note: null.StringFrom("B+")},
	}
	p2.Skills = nil
	require.NoError(t, repo.Replace(ctx, p2))
	require.Equal(t, got.ID, p2.ID)

	got2, err := repo.GetByAccountID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, "Lyon", got2.City.String)
	require.Len(t, got2.Courses, 2)
	require.Empty(t, got2.Skills)
	for _, c := range got2.Courses {
		require.NotEqual(t, firstCourseID, c.ID, "child ids are not stable across saves")
	}
}

func TestProfileRepository_ReplacePreservesReviewFlags(t *testing.T) {
	db := newTestDB(t)
	createAccountTable(t, db)
	createProfileTables(t, db)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	a := seedAccount(t, db, "eve@school.com", false, false)
	require.NoError(t, repo.Replace(ctx, completeProfile(a.ID)))
	require.NoError(t, repo.SetReview(ctx, a.ID, false, true))

	p := completeProfile(a.ID)
	require.NoError(t, repo.Replace(ctx, p))
	require.True(t, p.IsProfileRejected, "existing review flags copied back onto the saved profile")

	got, err := repo.GetByAccountID(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, got.IsProfileRejected)
	require.False(t, got.IsProfileApproved)
}

func TestProfileRepository_SetReview(t *testing.T) {
	db := newTestDB(t)
	createAccountTable(t, db)
	createProfileTables(t, db)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	a := seedAccount(t, db, "frank@school.com", false, false)
	require.NoError(t, repo.Replace(ctx, completeProfile(a.ID)))

	require.NoError(t, repo.SetReview(ctx, a.ID, true, false))
	got, err := repo.GetByAccountID(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, got.IsProfileApproved)
	require.False(t, got.IsProfileRejected)

	// approving again is idempotent
	require.NoError(t, repo.SetReview(ctx, a.ID, true, false))

	require.NoError(t, repo.SetReview(ctx, a.ID, false, true))
	got, err = repo.GetByAccountID(ctx, a.ID)
	require.NoError(t, err)
	require.False(t, got.IsProfileApproved)
	require.True(t, got.IsProfileRejected)

	require.ErrorIs(t, repo.SetReview(ctx, uuid.New(), true, false), domainerrors.ErrNotFound)
}

func TestProfileRepository_SearchVisibility(t *testing.T) {
	db := newTestDB(t)
	createAccountTable(t, db)
	createProfileTables(t, db)
	repo := NewProfileRepository(db)
	accountRepo := NewAccountRepository(db)
	ctx := context.Background()

	// visible: approved account, approved+available+complete profile
	visible := seedAccount(t, db, "visible@school.com", true, false)
	require.NoError(t, accountRepo.UpdateIdentity(ctx, visible.ID, entities.IdentityUpdate{
		FirstName: null.StringFrom("Vera"),
		LastName:  null.StringFrom("Nováková"),
		Diploma:   null.StringFrom("M2"),
	}))
	require.NoError(t, repo.Replace(ctx, completeProfile(visible.ID)))
	require.NoError(t, repo.SetReview(ctx, visible.ID, true, false))

	// hidden: profile never approved
	hiddenPending := seedAccount(t, db, "pendingprofile@school.com", true, false)
	require.NoError(t, repo.Replace(ctx, completeProfile(hiddenPending.ID)))

	// hidden: not available for work
	hiddenBusy := seedAccount(t, db, "busy@school.com", true, false)
	busyProfile := completeProfile(hiddenBusy.ID)
	busyProfile.IsAvailableForWork = false
	require.NoError(t, repo.Replace(ctx, busyProfile))
	require.NoError(t, repo.SetReview(ctx, hiddenBusy.ID, true, false))

	// hidden: rejected account
	hiddenRejected := seedAccount(t, db, "rejectedacct@school.com", false, true)
	require.NoError(t, repo.Replace(ctx, completeProfile(hiddenRejected.ID)))
	require.NoError(t, repo.SetReview(ctx, hiddenRejected.ID, true, false))

	results, total, err := repo.Search(ctx, domainRepos.DirectorySearchFilter{Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, results, 1)
	require.Equal(t, "visible@school.com", results[0].Email)
	require.NotNil(t, results[0].Profile)
	require.Len(t, results[0].Profile.Skills, 1)
}

func TestProfileRepository_SearchNarrowing(t *testing.T) {
	db := newTestDB(t)
	createAccountTable(t, db)
	createProfileTables(t, db)
	repo := NewProfileRepository(db)
	accountRepo := NewAccountRepository(db)
	ctx := context.Background()

	paris := seedAccount(t, db, "paris@school.com", true, false)
	require.NoError(t, accountRepo.UpdateIdentity(ctx, paris.ID, entities.IdentityUpdate{
		FirstName:     null.StringFrom("Pierre"),
		LastName:      null.StringFrom("Durand"),
		StudentNumber: null.StringFrom("P-1001"),
		Diploma:       null.StringFrom("M1"),
	}))
	require.NoError(t, repo.Replace(ctx, completeProfile(paris.ID)))
	require.NoError(t, repo.SetReview(ctx, paris.ID, true, false))

	lyon := seedAccount(t, db, "lyon@school.com", true, false)
	require.NoError(t, accountRepo.UpdateIdentity(ctx, lyon.ID, entities.IdentityUpdate{
		FirstName: null.StringFrom("Lucie"),
		LastName:  null.StringFrom("Bernard"),
		Diploma:   null.StringFrom("M2"),
	}))
	lyonProfile := completeProfile(lyon.ID)
	lyonProfile.City = null.StringFrom("Lyon")
	require.NoError(t, repo.Replace(ctx, lyonProfile))
	require.NoError(t, repo.SetReview(ctx, lyon.ID, true, false))

	// case-insensitive substring over name/email/student number
	byName, total, err := repo.Search(ctx, domainRepos.DirectorySearchFilter{Query: "pIeRr", Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "paris@school.com", byName[0].Email)

	byNumber, _, err := repo.Search(ctx, domainRepos.DirectorySearchFilter{Query: "p-1001", Limit: 10})
	require.NoError(t, err)
	require.Len(t, byNumber, 1)

	byCity, _, err := repo.Search(ctx, domainRepos.DirectorySearchFilter{City: "Lyon", Limit: 10})
	require.NoError(t, err)
	require.Len(t, byCity, 1)
	require.Equal(t, "lyon@school.com", byCity[0].Email)

	byDiploma, _, err := repo.Search(ctx, domainRepos.DirectorySearchFilter{Diploma: "M1", Limit: 10})
	require.NoError(t, err)
	require.Len(t, byDiploma, 1)

	// conjunctive: city+diploma that belong to different students
	none, total, err := repo.Search(ctx, domainRepos.DirectorySearchFilter{City: "Lyon", Diploma: "M1", Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 0, total)
	require.Empty(t, none)
}

func TestProfileRepository_ListStudentsByProfileStatus(t *testing.T) {
	db := newTestDB(t)
	createAccountTable(t, db)
	createProfileTables(t, db)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	approved := seedAccount(t, db, "sapproved@school.com", true, false)
	require.NoError(t, repo.Replace(ctx, completeProfile(approved.ID)))
	require.NoError(t, repo.SetReview(ctx, approved.ID, true, false))

	pending := seedAccount(t, db, "spending@school.com", true, false)
	require.NoError(t, repo.Replace(ctx, completeProfile(pending.ID)))

	rejected := seedAccount(t, db, "srejected@school.com", true, false)
	require.NoError(t, repo.Replace(ctx, completeProfile(rejected.ID)))
	require.NoError(t, repo.SetReview(ctx, rejected.ID, false, true))

	// admins never appear in the student review list
	admin := &entities.Account{
		ID: uuid.New(), Email: "admin@school.com", PasswordHash: "hash",
		Role: entities.AccountRoleAdmin, IsApproved: true,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	require.NoError(t, NewAccountRepository(db).Create(ctx, admin))
	require.NoError(t, repo.Replace(ctx, completeProfile(admin.ID)))

	all, total, err := repo.ListStudents(ctx, domainRepos.StudentListFilter{Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, all, 3)

	got, _, err := repo.ListStudents(ctx, domainRepos.StudentListFilter{Status: entities.StatusApproved, Limit: 10})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "sapproved@school.com", got[0].Email)

	got, _, err = repo.ListStudents(ctx, domainRepos.StudentListFilter{Status: entities.StatusPending, Limit: 10})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "spending@school.com", got[0].Email)

	got, _, err = repo.ListStudents(ctx, domainRepos.StudentListFilter{Status: entities.StatusRejected, Limit: 10})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "srejected@school.com", got[0].Email)
	require.NotNil(t, got[0].Profile)
	require.True(t, got[0].Profile.IsProfileRejected)
}

func TestProfileRepository_Stats(t *testing.T) {
	db := newTestDB(t)
	createAccountTable(t, db)
	createProfileTables(t, db)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	approved := seedAccount(t, db, "statsa@school.com", true, false)
	require.NoError(t, repo.Replace(ctx, completeProfile(approved.ID)))
	require.NoError(t, repo.SetReview(ctx, approved.ID, true, false))

	pending := seedAccount(t, db, "statsp@school.com", true, false)
	require.NoError(t, repo.Replace(ctx, completeProfile(pending.ID)))

	rejected := seedAccount(t, db, "statsr@school.com", true, false)
	require.NoError(t, repo.Replace(ctx, completeProfile(rejected.ID)))
	require.NoError(t, repo.SetReview(ctx, rejected.ID, false, true))

	since := time.Now().Add(-24 * time.Hour)
	stats, err := repo.Stats(ctx, since)
	require.NoError(t, err)
	require.EqualValues(t, 3, stats.TotalStudents)
	require.EqualValues(t, 1, stats.ApprovedProfiles)
	require.EqualValues(t, 1, stats.PendingProfiles)
	require.EqualValues(t, 3, stats.Last24h.NewStudents)

	old, err := repo.Stats(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 0, old.Last24h.NewStudents)
}
