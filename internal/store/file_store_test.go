package store_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/AlibekovAA/course-advisor/backend/internal/catalog/domain"
	"github.com/AlibekovAA/course-advisor/backend/internal/store"
	userdomain "github.com/AlibekovAA/course-advisor/backend/internal/user/domain"
)

const sampleDB = `{
  "users": [
    {"id": 1, "username": "alice", "email": "alice@example.com", "hashed_password": "$2b$12$abc", "enrolled_courses": [1, 99]},
    {"id": 2, "username": "bob", "email": "bob@example.com", "hashed_password": "$2b$12$def"}
  ],
  "courses": [
    {"id": 1, "title": "Intro Go", "category": "Systems", "difficulty": "Beginner"},
    {"id": 2, "title": "Intro Rust", "category": "Systems", "difficulty": "Beginner"},
    {"id": 3, "title": "Oil Painting", "category": "Art", "difficulty": "Intermediate"}
  ]
}`

func writeDB(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestFileStore_FindByUsername(t *testing.T) {
	s := store.NewFileStore(writeDB(t, sampleDB))

	u, err := s.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, userdomain.ID(1), u.ID)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, "$2b$12$abc", u.PasswordHash)
	assert.Equal(t, []int64{1, 99}, u.EnrolledCourseIDs)
}

func TestFileStore_MissingEnrollmentIsEmpty(t *testing.T) {
	s := store.NewFileStore(writeDB(t, sampleDB))

	u, err := s.FindByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
	assert.Empty(t, u.EnrolledCourseIDs)
}

func TestFileStore_UnknownUser(t *testing.T) {
	s := store.NewFileStore(writeDB(t, sampleDB))

	_, err := s.FindByUsername(context.Background(), "mallory")
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	_, err = s.FindByID(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestFileStore_ListCoursesKeepsOrder(t *testing.T) {
	s := store.NewFileStore(writeDB(t, sampleDB))

	courses, err := s.ListCourses(context.Background())
	require.NoError(t, err)

	require.Len(t, courses, 3)
	assert.Equal(t, catalogdomain.Course{ID: 1, Title: "Intro Go", Category: "Systems", Difficulty: "Beginner"}, courses[0])
	assert.Equal(t, int64(2), courses[1].ID)
	assert.Equal(t, int64(3), courses[2].ID)
}

func TestFileStore_ReflectsLatestWrite(t *testing.T) {
	path := writeDB(t, sampleDB)
	s := store.NewFileStore(path)

	_, err := s.FindByUsername(context.Background(), "bob")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`{"users": [], "courses": []}`), 0o600))

	_, err = s.FindByUsername(context.Background(), "bob")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestFileStore_MalformedRecords(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{"users": [`},
		{"bad email", `{"users": [{"id": 1, "username": "a", "email": "nope", "hashed_password": "x"}], "courses": []}`},
		{"missing hash", `{"users": [{"id": 1, "username": "a", "email": "a@example.com"}], "courses": []}`},
		{"duplicate username", `{"users": [
			{"id": 1, "username": "a", "email": "a@example.com", "hashed_password": "x"},
			{"id": 2, "username": "a", "email": "b@example.com", "hashed_password": "y"}], "courses": []}`},
		{"duplicate user id", `{"users": [
			{"id": 1, "username": "a", "email": "a@example.com", "hashed_password": "x"},
			{"id": 1, "username": "b", "email": "b@example.com", "hashed_password": "y"}], "courses": []}`},
		{"course without category", `{"users": [], "courses": [{"id": 1, "title": "t", "difficulty": "d"}]}`},
		{"duplicate course id", `{"users": [], "courses": [
			{"id": 1, "title": "t", "category": "c"},
			{"id": 1, "title": "u", "category": "c"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := store.NewFileStore(writeDB(t, tt.body))

			_, err := s.ListCourses(context.Background())
			assert.ErrorIs(t, err, store.ErrMalformedRecord)
		})
	}
}

func TestFileStore_MissingFile(t *testing.T) {
	s := store.NewFileStore(filepath.Join(t.TempDir(), "absent.json"))

	_, err := s.FindByUsername(context.Background(), "alice")
	require.Error(t, err)
	assert.False(t, errors.Is(err, store.ErrUserNotFound))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	users := []userdomain.User{{ID: 5, Username: "carol", Email: "carol@example.com", PasswordHash: "h", EnrolledCourseIDs: []int64{2}}}
	courses := []catalogdomain.Course{{ID: 2, Title: "Intro Rust", Category: "Systems", Difficulty: "Beginner"}}

	require.NoError(t, store.WriteFile(path, users, courses))

	s := store.NewFileStore(path)
	u, err := s.FindByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, users[0], u)

	got, err := s.ListCourses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, courses, got)
}

func TestFileStore_OneBadRecordFailsEveryRead(t *testing.T) {
	s := store.NewFileStore(writeDB(t, `{
  "users": [
    {"id": 1, "username": "alice", "email": "alice@example.com", "hashed_password": "x"},
    {"id": 2, "username": "bob", "email": "not-an-email", "hashed_password": "y"}
  ],
  "courses": [{"id": 1, "title": "Intro Go", "category": "Systems"}]
}`))
	ctx := context.Background()

	_, err := s.FindByUsername(ctx, "alice")
	assert.ErrorIs(t, err, store.ErrMalformedRecord, "a well-formed user is not served from a malformed document")

	_, err = s.FindByID(ctx, 1)
	assert.ErrorIs(t, err, store.ErrMalformedRecord)

	_, err = s.ListCourses(ctx)
	assert.ErrorIs(t, err, store.ErrMalformedRecord)
}
