package service

import (
	"context"
	"errors"
	"time"

	commoncrypto "github.com/AlibekovAA/course-advisor/backend/internal/common/crypto"
	commonerrors "github.com/AlibekovAA/course-advisor/backend/internal/common/errors"
	"github.com/AlibekovAA/course-advisor/backend/internal/common/logger"
	"github.com/AlibekovAA/course-advisor/backend/internal/store"
)

const TokenTypeBearer = "bearer"

type tokenIssuer interface {
	Issue(subject string, ttl time.Duration) (string, error)
}

// decoyPassword is hashed once per service; logins for unknown usernames
// are compared against that hash.
const decoyPassword = "course-advisor-decoy-password"

type AuthService struct {
	users          store.UserReader
	hasher         commoncrypto.PasswordHasher
	tokens         tokenIssuer
	accessTokenTTL time.Duration
	decoyHash      string
	log            *logger.Logger
}

func NewAuthService(
	users store.UserReader,
	hasher commoncrypto.PasswordHasher,
	tokens tokenIssuer,
	accessTokenTTL time.Duration,
	log *logger.Logger,
) *AuthService {
	decoyHash, err := hasher.Hash(decoyPassword)
	if err != nil {
		log.Errorf("auth service: failed to prepare decoy hash: %v", err)
	}

	return &AuthService{
		users:          users,
		hasher:         hasher,
		tokens:         tokens,
		accessTokenTTL: accessTokenTTL,
		decoyHash:      decoyHash,
		log:            log,
	}
}

type LoginInput struct {
	Username string
	Password string
}

type AuthResult struct {
	AccessToken string
	TokenType   string
}

// Login exchanges a username and password for a bearer token. Unknown users
// and wrong passwords fail with the same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (AuthResult, error) {
	s.log.WithFields(ctx, logger.Fields{
		"username": input.Username,
		"action":   "login_attempt",
	}).Info("login attempt")

	user, err := s.users.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.hasher.Verify(input.Password, s.decoyHash)
			s.log.WithFields(ctx, logger.Fields{
				"username": input.Username,
				"action":   "login_user_not_found",
			}).Warn("login failed: user not found")
			incrementLoginAttempt("invalid_credentials")
			return AuthResult{}, ErrInvalidCredentials
		}
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"action":   "login_store_error",
		}).Errorf("login failed: store error: %v", err)
		incrementLoginAttempt("error")
		return AuthResult{}, commonerrors.ErrStoreUnavailable.WithCause(err)
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"user_id":  int64(user.ID),
			"action":   "login_invalid_password",
		}).Warn("login failed: invalid password")
		incrementLoginAttempt("invalid_credentials")
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, s.accessTokenTTL)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": input.Username,
			"user_id":  int64(user.ID),
			"action":   "login_token_issue_failed",
		}).Errorf("login failed: token issue error: %v", err)
		incrementLoginAttempt("error")
		return AuthResult{}, commonerrors.ErrInternalError.WithCause(err)
	}

	s.log.WithFields(ctx, logger.Fields{
		"username": user.Username,
		"user_id":  int64(user.ID),
		"action":   "login_success",
	}).Info("login success")
	incrementLoginAttempt("success")

	return AuthResult{AccessToken: token, TokenType: TokenTypeBearer}, nil
}
