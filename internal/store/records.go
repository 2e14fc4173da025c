package store

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	catalogdomain "github.com/AlibekovAA/course-advisor/backend/internal/catalog/domain"
	userdomain "github.com/AlibekovAA/course-advisor/backend/internal/user/domain"
)

// snapshot mirrors the db.json layout.
type snapshot struct {
	Users   []userRecord   `json:"users" validate:"dive"`
	Courses []courseRecord `json:"courses" validate:"dive"`
}

type userRecord struct {
	ID              int64   `json:"id" validate:"gte=0"`
	Username        string  `json:"username" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	HashedPassword  string  `json:"hashed_password" validate:"required"`
	EnrolledCourses []int64 `json:"enrolled_courses" validate:"dive,gte=0"`
}

type courseRecord struct {
	ID         int64  `json:"id" validate:"gte=0"`
	Title      string `json:"title" validate:"required"`
	Category   string `json:"category" validate:"required"`
	Difficulty string `json:"difficulty"`
}

func (r userRecord) toDomain() userdomain.User {
	enrolled := make([]int64, len(r.EnrolledCourses))
	copy(enrolled, r.EnrolledCourses)
	return userdomain.User{
		ID:                userdomain.ID(r.ID),
		Username:          r.Username,
		Email:             r.Email,
		PasswordHash:      r.HashedPassword,
		EnrolledCourseIDs: enrolled,
	}
}

func userRecordFromDomain(u userdomain.User) userRecord {
	return userRecord{
		ID:              int64(u.ID),
		Username:        u.Username,
		Email:           u.Email,
		HashedPassword:  u.PasswordHash,
		EnrolledCourses: u.EnrolledCourseIDs,
	}
}

func (r courseRecord) toDomain() catalogdomain.Course {
	return catalogdomain.Course(r)
}

// recordValidator rejects malformed records at the store boundary so the
// rest of the service only ever sees well-formed users and courses.
type recordValidator struct {
	v *validator.Validate
}

func newRecordValidator() *recordValidator {
	return &recordValidator{v: validator.New(validator.WithRequiredStructEnabled())}
}

func (rv *recordValidator) validateSnapshot(s snapshot) error {
	if err := rv.v.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	userIDs := make(map[int64]struct{}, len(s.Users))
	usernames := make(map[string]struct{}, len(s.Users))
	for _, u := range s.Users {
		if _, dup := userIDs[u.ID]; dup {
			return fmt.Errorf("%w: duplicate user id %d", ErrMalformedRecord, u.ID)
		}
		if _, dup := usernames[u.Username]; dup {
			return fmt.Errorf("%w: duplicate username %q", ErrMalformedRecord, u.Username)
		}
		userIDs[u.ID] = struct{}{}
		usernames[u.Username] = struct{}{}
	}

	courseIDs := make(map[int64]struct{}, len(s.Courses))
	for _, c := range s.Courses {
		if _, dup := courseIDs[c.ID]; dup {
			return fmt.Errorf("%w: duplicate course id %d", ErrMalformedRecord, c.ID)
		}
		courseIDs[c.ID] = struct{}{}
	}

	return nil
}

func (rv *recordValidator) validateUser(u userRecord) error {
	if err := rv.v.Struct(u); err != nil {
		return fmt.Errorf("%w: user %d: %v", ErrMalformedRecord, u.ID, err)
	}
	return nil
}

func (rv *recordValidator) validateCourse(c courseRecord) error {
	if err := rv.v.Struct(c); err != nil {
		return fmt.Errorf("%w: course %d: %v", ErrMalformedRecord, c.ID, err)
	}
	return nil
}
