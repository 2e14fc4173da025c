package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	catalogdomain "github.com/AlibekovAA/course-advisor/backend/internal/catalog/domain"
	userdomain "github.com/AlibekovAA/course-advisor/backend/internal/user/domain"
)

const fileStoreName = "file"

// FileStore reads a db.json document on every call. The document is
// validated as a whole: a single malformed or duplicated record fails every
// read with ErrMalformedRecord until the file is fixed.
type FileStore struct {
	path      string
	validator *recordValidator
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path:      path,
		validator: newRecordValidator(),
	}
}

func (s *FileStore) FindByUsername(ctx context.Context, username string) (userdomain.User, error) {
	snap, err := s.read(ctx, "find_user_by_name")
	if err != nil {
		return userdomain.User{}, err
	}
	for _, u := range snap.Users {
		if u.Username == username {
			return u.toDomain(), nil
		}
	}
	return userdomain.User{}, ErrUserNotFound
}

func (s *FileStore) FindByID(ctx context.Context, id userdomain.ID) (userdomain.User, error) {
	snap, err := s.read(ctx, "find_user_by_id")
	if err != nil {
		return userdomain.User{}, err
	}
	for _, u := range snap.Users {
		if userdomain.ID(u.ID) == id {
			return u.toDomain(), nil
		}
	}
	return userdomain.User{}, ErrUserNotFound
}

func (s *FileStore) ListCourses(ctx context.Context) ([]catalogdomain.Course, error) {
	snap, err := s.read(ctx, "list_courses")
	if err != nil {
		return nil, err
	}
	courses := make([]catalogdomain.Course, 0, len(snap.Courses))
	for _, c := range snap.Courses {
		courses = append(courses, c.toDomain())
	}
	return courses, nil
}

func (s *FileStore) read(ctx context.Context, operation string) (snapshot, error) {
	start := time.Now()
	snap, err := s.load(ctx)
	if err != nil {
		recordReadError(fileStoreName, operation)
		return snapshot{}, err
	}
	observeRead(fileStoreName, operation, start)
	return snap, nil
}

func (s *FileStore) load(ctx context.Context) (snapshot, error) {
	if err := ctx.Err(); err != nil {
		return snapshot{}, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return snapshot{}, fmt.Errorf("failed to read store file: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return snapshot{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	if err := s.validator.validateSnapshot(snap); err != nil {
		return snapshot{}, err
	}
	return snap, nil
}

// WriteFile serializes users and courses in the db.json layout. It exists
// for seeding; the advisor itself never writes to the store.
func WriteFile(path string, users []userdomain.User, courses []catalogdomain.Course) error {
	snap := snapshot{
		Users:   make([]userRecord, 0, len(users)),
		Courses: make([]courseRecord, 0, len(courses)),
	}
	for _, u := range users {
		snap.Users = append(snap.Users, userRecordFromDomain(u))
	}
	for _, c := range courses {
		snap.Courses = append(snap.Courses, courseRecord(c))
	}

	if err := newRecordValidator().validateSnapshot(snap); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store file: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}
