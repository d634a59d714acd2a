package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"intern-hub.backend/internal/domain/entities"
	"intern-hub.backend/pkg/utils"
)

type stubDirectoryService struct {
	results []*entities.Account
	meta    utils.PaginationMeta
	err     error

	lastQuery   string
	lastCity    string
	lastDiploma string
	lastPage    int
	lastLimit   int
}

func (s *stubDirectoryService) Search(ctx context.Context, query, city, diploma string, page, limit int) ([]*entities.Account, utils.PaginationMeta, error) {
	s.lastQuery, s.lastCity, s.lastDiploma = query, city, diploma
	s.lastPage, s.lastLimit = page, limit
	return s.results, s.meta, s.err
}

func directoryRouter(service DirectoryService) *gin.Engine {
	h := NewDirectoryHandler(service)
	r := gin.New()
	r.GET("/api/v1/interns/search", h.Search)
	return r
}

func TestSearchEndpoint(t *testing.T) {
	intern := &entities.Account{
		ID:        uuid.New(),
		Email:     "visible@school.com",
		FirstName: null.StringFrom("Vera"),
		Diploma:   null.StringFrom("M2"),
		Profile: &entities.Profile{
			City:   null.StringFrom("Paris"),
			Skills: []entities.Skill{{ID: uuid.New(), Name: "Go", Level: "expert"}},
		},
	}
	service := &stubDirectoryService{
		results: []*entities.Account{intern},
		meta:    utils.CalculateMeta(1, 1, 10),
	}
	r := directoryRouter(service)

	w := doJSON(t, r, http.MethodGet, "/api/v1/interns/search?q=vera&city=Paris&diploma=M2&page=1&limit=10", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "vera", service.lastQuery)
	assert.Equal(t, "Paris", service.lastCity)
	assert.Equal(t, "M2", service.lastDiploma)

	body := decodeBody(t, w)
	assert.Equal(t, "Interns fetched", body["message"])
	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	card := data[0].(map[string]interface{})
	assert.Equal(t, "visible@school.com", card["email"])
	// review flags never leak into the public directory
	_, hasApproved := card["isApproved"]
	assert.False(t, hasApproved)

	pagination := body["pagination"].(map[string]interface{})
	assert.EqualValues(t, 1, pagination["total"])
	assert.EqualValues(t, 1, pagination["totalPages"])
	assert.EqualValues(t, 1, pagination["currentPage"])
	assert.Equal(t, false, pagination["hasNextPage"])
	assert.Equal(t, false, pagination["hasPreviousPage"])
}

func TestSearchEndpoint_DefaultsFacetsToAll(t *testing.T) {
	service := &stubDirectoryService{meta: utils.CalculateMeta(0, 1, 10)}
	r := directoryRouter(service)

	w := doJSON(t, r, http.MethodGet, "/api/v1/interns/search", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "all", service.lastCity)
	assert.Equal(t, "all", service.lastDiploma)
	assert.Equal(t, 1, service.lastPage)
	assert.Equal(t, 10, service.lastLimit)

	data := decodeBody(t, w)["data"].([]interface{})
	assert.Empty(t, data)
}

func TestSearchEndpoint_Error(t *testing.T) {
	r := directoryRouter(&stubDirectoryService{err: errors.New("db down")})

	w := doJSON(t, r, http.MethodGet, "/api/v1/interns/search", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["success"])
}
