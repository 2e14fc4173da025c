package service

import (
	"context"
	"errors"

	commonerrors "github.com/AlibekovAA/course-advisor/backend/internal/common/errors"
	"github.com/AlibekovAA/course-advisor/backend/internal/common/logger"
	"github.com/AlibekovAA/course-advisor/backend/internal/store"
	userdomain "github.com/AlibekovAA/course-advisor/backend/internal/user/domain"
)

type tokenValidator interface {
	Validate(token string) (string, error)
}

// SessionResolver turns a bearer token into the user it names. It is the
// only gate in front of identity-scoped handlers.
type SessionResolver struct {
	tokens tokenValidator
	users  store.UserReader
	log    *logger.Logger
}

func NewSessionResolver(tokens tokenValidator, users store.UserReader, log *logger.Logger) *SessionResolver {
	return &SessionResolver{tokens: tokens, users: users, log: log}
}

func (r *SessionResolver) Resolve(ctx context.Context, token string) (userdomain.User, error) {
	username, err := r.tokens.Validate(token)
	if err != nil {
		r.log.WithFields(ctx, logger.Fields{
			"action": "session_token_rejected",
			"reason": failureReason(err),
		}).Warnf("session rejected: %v", err)
		incrementSessionResolved("rejected")
		return userdomain.User{}, ErrUnauthenticated.WithCause(err)
	}

	user, err := r.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			r.log.WithFields(ctx, logger.Fields{
				"username": username,
				"action":   "session_user_not_found",
			}).Warn("session rejected: subject no longer exists")
			incrementSessionResolved("rejected")
			return userdomain.User{}, ErrUnauthenticated.WithCause(err)
		}
		r.log.WithFields(ctx, logger.Fields{
			"username": username,
			"action":   "session_store_error",
		}).Errorf("session lookup failed: %v", err)
		incrementSessionResolved("error")
		return userdomain.User{}, commonerrors.ErrStoreUnavailable.WithCause(err)
	}

	incrementSessionResolved("resolved")
	return user, nil
}
