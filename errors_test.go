package sideeffect

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrorsAreDistinct(t *testing.T) {
	errs := []error{
		ErrNilReducer,
		ErrNilChangeHandler,
		ErrNilServerMapper,
		ErrNilComponent,
		ErrNoEncoder,
		ErrNoSnapshot,
		ErrInvalidFormat,
		ErrSignatureInvalid,
		ErrDecryptFailed,
	}

	for i, err1 := range errs {
		for j, err2 := range errs {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("sentinel errors should be distinct: %v and %v", err1, err2)
			}
		}
	}
}

func TestIsConfigError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil error", nil, false},
		{"ErrNilReducer", ErrNilReducer, true},
		{"ErrNilChangeHandler", ErrNilChangeHandler, true},
		{"ErrNilServerMapper", ErrNilServerMapper, true},
		{"ErrNilComponent", ErrNilComponent, true},
		{"wrapped ErrNilReducer", fmt.Errorf("wrapped: %w", ErrNilReducer), true},
		{"ErrNoSnapshot", ErrNoSnapshot, false},
		{"other error", errors.New("other error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConfigError(tt.err); got != tt.expect {
				t.Errorf("IsConfigError(%v) = %v, want %v", tt.err, got, tt.expect)
			}
		})
	}
}

func TestIsTransportError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		expect bool
	}{
		{"nil error", nil, false},
		{"ErrInvalidFormat", ErrInvalidFormat, true},
		{"ErrSignatureInvalid", ErrSignatureInvalid, true},
		{"ErrDecryptFailed", ErrDecryptFailed, true},
		{"wrapped ErrDecryptFailed", fmt.Errorf("wrapped: %w", ErrDecryptFailed), true},
		{"ErrNilComponent", ErrNilComponent, false},
		{"other error", errors.New("other error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransportError(tt.err); got != tt.expect {
				t.Errorf("IsTransportError(%v) = %v, want %v", tt.err, got, tt.expect)
			}
		})
	}
}
