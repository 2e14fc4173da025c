package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	pgx "github.com/jackc/pgx/v4"

	catalogdomain "github.com/AlibekovAA/course-advisor/backend/internal/catalog/domain"
	userdomain "github.com/AlibekovAA/course-advisor/backend/internal/user/domain"
)

const pgStoreName = "postgres"

// pgQuerier is the subset of *pgxpool.Pool the store needs.
type pgQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PgStore reads users, enrollments and courses from Postgres. Expected
// tables: users(id, username, email, password_hash),
// enrollments(user_id, course_id) and courses(id, title, category, difficulty).
type PgStore struct {
	db        pgQuerier
	validator *recordValidator
}

func NewPgStore(db pgQuerier) *PgStore {
	return &PgStore{db: db, validator: newRecordValidator()}
}

const selectUserSQL = `
SELECT u.id, u.username, u.email, u.password_hash,
       COALESCE(array_agg(e.course_id ORDER BY e.course_id) FILTER (WHERE e.course_id IS NOT NULL), '{}')
FROM users u
LEFT JOIN enrollments e ON e.user_id = u.id
WHERE %s
GROUP BY u.id, u.username, u.email, u.password_hash`

func (s *PgStore) FindByUsername(ctx context.Context, username string) (userdomain.User, error) {
	return s.findUser(ctx, "find_user_by_name", fmt.Sprintf(selectUserSQL, "u.username = $1"), username)
}

func (s *PgStore) FindByID(ctx context.Context, id userdomain.ID) (userdomain.User, error) {
	return s.findUser(ctx, "find_user_by_id", fmt.Sprintf(selectUserSQL, "u.id = $1"), int64(id))
}

func (s *PgStore) findUser(ctx context.Context, operation, query string, arg any) (userdomain.User, error) {
	start := time.Now()

	var rec userRecord
	err := s.db.QueryRow(ctx, query, arg).Scan(
		&rec.ID,
		&rec.Username,
		&rec.Email,
		&rec.HashedPassword,
		&rec.EnrolledCourses,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			observeRead(pgStoreName, operation, start)
			return userdomain.User{}, ErrUserNotFound
		}
		recordReadError(pgStoreName, operation)
		return userdomain.User{}, fmt.Errorf("failed to %s: %w", operation, err)
	}

	if err := s.validator.validateUser(rec); err != nil {
		recordReadError(pgStoreName, operation)
		return userdomain.User{}, err
	}

	observeRead(pgStoreName, operation, start)
	return rec.toDomain(), nil
}

func (s *PgStore) ListCourses(ctx context.Context) ([]catalogdomain.Course, error) {
	const operation = "list_courses"
	start := time.Now()

	rows, err := s.db.Query(ctx, `SELECT id, title, category, difficulty FROM courses ORDER BY id`)
	if err != nil {
		recordReadError(pgStoreName, operation)
		return nil, fmt.Errorf("failed to %s: %w", operation, err)
	}
	defer rows.Close()

	courses := []catalogdomain.Course{}
	for rows.Next() {
		var rec courseRecord
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Category, &rec.Difficulty); err != nil {
			recordReadError(pgStoreName, operation)
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		if err := s.validator.validateCourse(rec); err != nil {
			recordReadError(pgStoreName, operation)
			return nil, err
		}
		courses = append(courses, rec.toDomain())
	}

	if err := rows.Err(); err != nil {
		recordReadError(pgStoreName, operation)
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	observeRead(pgStoreName, operation, start)
	return courses, nil
}
