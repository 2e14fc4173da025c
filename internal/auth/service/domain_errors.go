package service

import (
	"net/http"

	commonerrors "github.com/AlibekovAA/course-advisor/backend/internal/common/errors"
)

var (
	ErrInvalidCredentials = commonerrors.NewDomainError(
		"INVALID_CREDENTIALS",
		commonerrors.CategoryUnauthorized,
		http.StatusUnauthorized,
		"Incorrect username or password",
	)

	// ErrUnauthenticated covers every bearer failure: bad signature, expiry,
	// malformed token and a subject that no longer exists.
	ErrUnauthenticated = commonerrors.NewDomainError(
		"UNAUTHENTICATED",
		commonerrors.CategoryUnauthorized,
		http.StatusUnauthorized,
		"Could not validate credentials",
	)
)
