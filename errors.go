package sideeffect

import "errors"

// Sentinel errors for wrapper construction and snapshot transport.
var (
	ErrNilReducer       = errors.New("sideeffect: reduce function must not be nil")
	ErrNilChangeHandler = errors.New("sideeffect: change handler must not be nil")
	ErrNilServerMapper  = errors.New("sideeffect: server state mapper must not be nil")
	ErrNilComponent     = errors.New("sideeffect: display component must not be nil")
	ErrNoEncoder        = errors.New("sideeffect: no snapshot encoder configured")
	ErrNoSnapshot       = errors.New("sideeffect: snapshot store is empty")
	ErrInvalidFormat    = errors.New("sideeffect: invalid snapshot format")
	ErrSignatureInvalid = errors.New("sideeffect: snapshot signature verification failed")
	ErrDecryptFailed    = errors.New("sideeffect: snapshot decryption failed")
)

// IsConfigError checks if err is a wrapper misconfiguration error.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrNilReducer) ||
		errors.Is(err, ErrNilChangeHandler) ||
		errors.Is(err, ErrNilServerMapper) ||
		errors.Is(err, ErrNilComponent)
}

// IsTransportError checks if err is a snapshot decoding or verification error.
func IsTransportError(err error) bool {
	return errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrSignatureInvalid) ||
		errors.Is(err, ErrDecryptFailed)
}
