package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AlibekovAA/course-advisor/backend/internal/common/clock"
	"github.com/AlibekovAA/course-advisor/backend/internal/common/constants"
	commoncrypto "github.com/AlibekovAA/course-advisor/backend/internal/common/crypto"
)

var (
	ErrTokenInvalidSignature = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token has expired")
	ErrTokenMalformed        = errors.New("token is malformed")
)

type TokenIssuer struct {
	jwtSecret   []byte
	idGenerator commoncrypto.IDGenerator
	clock       clock.Clock
	parser      *jwt.Parser
}

func NewTokenIssuer(
	jwtSecret string,
	idGenerator commoncrypto.IDGenerator,
	clock clock.Clock,
) *TokenIssuer {
	return &TokenIssuer{
		jwtSecret:   []byte(jwtSecret),
		idGenerator: idGenerator,
		clock:       clock,
		// exp is checked in Validate against the injected clock.
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
	}
}

// Issue signs a token for subject that expires ttl from now. A non-positive
// ttl means no lifetime was requested and DefaultTokenTTL is used.
func (ti *TokenIssuer) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = constants.DefaultTokenTTL
	}

	jti, err := ti.idGenerator.NewID()
	if err != nil {
		return "", fmt.Errorf("failed to generate token id: %w", err)
	}

	now := ti.clock.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ID:        jti,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ti.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	incrementAccessTokensIssued()
	return signed, nil
}

// Validate returns the subject of a token signed with this issuer's secret
// that has not yet reached its exp.
func (ti *TokenIssuer) Validate(tokenString string) (string, error) {
	incrementJWTValidations()

	subject, err := ti.validate(tokenString)
	if err != nil {
		incrementJWTValidationFailed(failureReason(err))
		return "", err
	}
	return subject, nil
}

func (ti *TokenIssuer) validate(tokenString string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := ti.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return ti.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return "", fmt.Errorf("%w: %v", ErrTokenInvalidSignature, err)
		}
		return "", fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing sub claim", ErrTokenMalformed)
	}
	if claims.ExpiresAt == nil {
		return "", fmt.Errorf("%w: missing exp claim", ErrTokenMalformed)
	}
	if !ti.clock.Now().Before(claims.ExpiresAt.Time) {
		return "", ErrTokenExpired
	}

	return claims.Subject, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrTokenExpired):
		return "expired"
	case errors.Is(err, ErrTokenInvalidSignature):
		return "invalid_signature"
	default:
		return "malformed"
	}
}
