package store

import (
	"context"
	"sync"

	catalogdomain "github.com/AlibekovAA/course-advisor/backend/internal/catalog/domain"
	userdomain "github.com/AlibekovAA/course-advisor/backend/internal/user/domain"
)

// MemoryStore is an in-process store used by tests and local demos.
type MemoryStore struct {
	mu      sync.RWMutex
	users   []userRecord
	courses []courseRecord
}

func NewMemoryStore(users []userdomain.User, courses []catalogdomain.Course) (*MemoryStore, error) {
	snap := snapshot{
		Users:   make([]userRecord, 0, len(users)),
		Courses: make([]courseRecord, 0, len(courses)),
	}
	for _, u := range users {
		snap.Users = append(snap.Users, userRecordFromDomain(u).clone())
	}
	for _, c := range courses {
		snap.Courses = append(snap.Courses, courseRecord(c))
	}

	if err := newRecordValidator().validateSnapshot(snap); err != nil {
		return nil, err
	}

	return &MemoryStore{users: snap.Users, courses: snap.Courses}, nil
}

func (s *MemoryStore) FindByUsername(_ context.Context, username string) (userdomain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u.toDomain(), nil
		}
	}
	return userdomain.User{}, ErrUserNotFound
}

func (s *MemoryStore) FindByID(_ context.Context, id userdomain.ID) (userdomain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if userdomain.ID(u.ID) == id {
			return u.toDomain(), nil
		}
	}
	return userdomain.User{}, ErrUserNotFound
}

func (s *MemoryStore) ListCourses(_ context.Context) ([]catalogdomain.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	courses := make([]catalogdomain.Course, 0, len(s.courses))
	for _, c := range s.courses {
		courses = append(courses, c.toDomain())
	}
	return courses, nil
}

// RemoveUser simulates an external deletion.
func (s *MemoryStore) RemoveUser(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.users[:0]
	for _, u := range s.users {
		if u.Username != username {
			kept = append(kept, u)
		}
	}
	s.users = kept
}

func (r userRecord) clone() userRecord {
	r.EnrolledCourses = append([]int64(nil), r.EnrolledCourses...)
	return r
}
