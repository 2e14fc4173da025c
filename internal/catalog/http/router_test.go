package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/AlibekovAA/course-advisor/backend/internal/catalog/domain"
	cataloghttp "github.com/AlibekovAA/course-advisor/backend/internal/catalog/http"
	"github.com/AlibekovAA/course-advisor/backend/internal/common/config"
	"github.com/AlibekovAA/course-advisor/backend/internal/common/logger"
	"github.com/AlibekovAA/course-advisor/backend/internal/store"
)

var cfg = config.AdvisorConfig{RequestTimeout: 5 * time.Second}

func TestCatalog_ListsInStoreOrder(t *testing.T) {
	courses := []catalogdomain.Course{
		{ID: 3, Title: "Oil Painting", Category: "Art", Difficulty: "Intermediate"},
		{ID: 1, Title: "Intro Go", Category: "Systems", Difficulty: "Beginner"},
	}
	mem, err := store.NewMemoryStore(nil, courses)
	require.NoError(t, err)
	h := cataloghttp.NewHandler(mem, cfg, logger.Discard())

	for _, path := range []string{"/courses/", "/courses"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.JSONEq(t, `[
			{"id": 3, "title": "Oil Painting", "category": "Art", "difficulty": "Intermediate"},
			{"id": 1, "title": "Intro Go", "category": "Systems", "difficulty": "Beginner"}
		]`, rec.Body.String())
	}
}

func TestCatalog_EmptyIsArray(t *testing.T) {
	mem, err := store.NewMemoryStore(nil, nil)
	require.NoError(t, err)
	h := cataloghttp.NewHandler(mem, cfg, logger.Discard())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/courses/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

type failingLister struct{}

func (failingLister) ListCourses(context.Context) ([]catalogdomain.Course, error) {
	return nil, errors.New("open /srv/db.json: permission denied")
}

func TestCatalog_StoreFailure(t *testing.T) {
	h := cataloghttp.NewHandler(failingLister{}, cfg, logger.Discard())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/courses/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "/srv/db.json")

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "STORE_UNAVAILABLE", body["code"])
}
