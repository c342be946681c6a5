package status

import "errors"

var (
	ErrUserNotFound  = errors.New("auth: user id not found")
	ErrEmptyResponse = errors.New("store: empty response")
)

// AuthError is a sign-in/sign-up failure surfaced by the identity provider.
// The wrapped message is shown to the user as-is.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string { return e.Err.Error() }

func (e *AuthError) Unwrap() error { return e.Err }

// StoreError is a document store read/write failure.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string { return e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }

// UploadError is a blob upload failure. The caller must not proceed to the
// record write when it sees one.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string { return e.Err.Error() }

func (e *UploadError) Unwrap() error { return e.Err }

// NotifyError is a push delivery failure. It is logged and swallowed, never
// shown to the user.
type NotifyError struct {
	Err error
}

func (e *NotifyError) Error() string { return e.Err.Error() }

func (e *NotifyError) Unwrap() error { return e.Err }

// ValidationError is a client-side pre-flight failure. No network call is
// made when one is raised.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// IsValidation reports whether err is a pre-flight validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
