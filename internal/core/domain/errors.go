package domain

import "errors"

var (
	// ErrNetwork covers transport failures and unusable API responses.
	ErrNetwork = errors.New("dealership api unavailable")

	// ErrAuth covers missing, expired or insufficient sessions.
	ErrAuth = errors.New("not authorized")

	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
)

// AuthError classifies an ErrAuth failure. Unauthenticated callers are sent
// to the login page; callers with the wrong role get a rejection message.
type AuthError struct {
	Unauthenticated bool
	Message         string
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return ErrAuth
}

var (
	ErrUnauthenticated = &AuthError{Unauthenticated: true, Message: "authentication required"}
	ErrCustomersOnly   = &AuthError{Message: "Only customers can save favorite cars"}
	ErrTestDriveRole   = &AuthError{Message: "Only customers can request test drives"}
	ErrOwnersOnly      = &AuthError{Message: "Owner or admin access required"}
	ErrAdminsOnly      = &AuthError{Message: "Admin access required"}
)

// IsUnauthenticated reports whether err means "no valid session".
func IsUnauthenticated(err error) bool {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Unauthenticated
	}
	return false
}

// ValidationError carries a user-facing reason for a rejected command.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Reason returns the user-facing message of a ValidationError or AuthError
// found in err's chain, or fallback.
func Reason(err error, fallback string) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) && validationErr.Message != "" {
		return validationErr.Message
	}
	var authErr *AuthError
	if errors.As(err, &authErr) && authErr.Message != "" {
		return authErr.Message
	}
	return fallback
}
