package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"intern-hub.backend/internal/domain/entities"
	"intern-hub.backend/internal/domain/repositories"
	"intern-hub.backend/internal/usecases"
)

func TestDirectorySearch_NormalizesFilters(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	uc := usecases.NewDirectoryUsecase(profileRepo)

	// "all" facets collapse to no filter, query is trimmed
	profileRepo.On("Search", mock.Anything, repositories.DirectorySearchFilter{
		Query:   "alice",
		City:    "",
		Diploma: "",
		Offset:  0,
		Limit:   10,
	}).Return([]*entities.Account{{Email: "alice@school.com"}}, int64(1), nil)

	results, meta, err := uc.Search(context.Background(), "  alice ", "all", "ALL", 1, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1, meta.TotalPages)
	assert.EqualValues(t, 1, meta.Total)
}

func TestDirectorySearch_FacetsPassedThrough(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	uc := usecases.NewDirectoryUsecase(profileRepo)

	profileRepo.On("Search", mock.Anything, repositories.DirectorySearchFilter{
		City:    "Lyon",
		Diploma: "M2",
		Offset:  25,
		Limit:   25,
	}).Return([]*entities.Account{}, int64(60), nil)

	_, meta, err := uc.Search(context.Background(), "", "Lyon", "M2", 2, 25)
	require.NoError(t, err)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrevious)
}

func TestDirectorySearch_BadLimitFallsBack(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	uc := usecases.NewDirectoryUsecase(profileRepo)

	profileRepo.On("Search", mock.Anything, mock.MatchedBy(func(f repositories.DirectorySearchFilter) bool {
		return f.Limit == 10 && f.Offset == 0
	})).Return([]*entities.Account{}, int64(0), nil)

	_, meta, err := uc.Search(context.Background(), "", "", "", 0, 999)
	require.NoError(t, err)
	assert.Equal(t, 10, meta.Limit)
	assert.Equal(t, 1, meta.Page)
}

func TestDirectorySearch_RepositoryError(t *testing.T) {
	profileRepo := new(MockProfileRepository)
	uc := usecases.NewDirectoryUsecase(profileRepo)
	dbErr := errors.New("db down")

	profileRepo.On("Search", mock.Anything, mock.Anything).Return(nil, int64(0), dbErr)

	_, _, err := uc.Search(context.Background(), "x", "", "", 1, 10)
	assert.ErrorIs(t, err, dbErr)
}
