package jwtverify

import (
	"context"
	"net/http"
	"strings"

	commonhttp "github.com/AlibekovAA/course-advisor/backend/internal/common/http"
	userdomain "github.com/AlibekovAA/course-advisor/backend/internal/user/domain"
)

// Resolver maps a raw bearer token to its user. An empty token must be
// rejected like any other invalid one.
type Resolver interface {
	Resolve(ctx context.Context, token string) (userdomain.User, error)
}

type contextKey string

const userKey contextKey = "session_user"

func Middleware(resolver Resolver, errorHandler *commonhttp.ErrorHandler) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := resolver.Resolve(r.Context(), BearerToken(r))
			if err != nil {
				errorHandler.HandleError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// BearerToken returns the credentials of an "Authorization: Bearer" header,
// or "" when the header is absent or uses another scheme.
func BearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func FromContext(ctx context.Context) (userdomain.User, bool) {
	user, ok := ctx.Value(userKey).(userdomain.User)
	return user, ok
}
