// Package store holds the read-only record store the advisor consumes:
// users looked up by name or id, and the ordered course catalog. Every call
// reflects the backing snapshot at the time of the call; nothing is cached.
package store

import (
	"context"
	"errors"

	catalogdomain "github.com/AlibekovAA/course-advisor/backend/internal/catalog/domain"
	userdomain "github.com/AlibekovAA/course-advisor/backend/internal/user/domain"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrMalformedRecord = errors.New("malformed store record")
)

type UserReader interface {
	FindByUsername(ctx context.Context, username string) (userdomain.User, error)
	FindByID(ctx context.Context, id userdomain.ID) (userdomain.User, error)
}

type CourseLister interface {
	ListCourses(ctx context.Context) ([]catalogdomain.Course, error)
}

type Store interface {
	UserReader
	CourseLister
}
