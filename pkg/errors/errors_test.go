// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/arthur-debert/artlink/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "file not found",
			wantStr: "[NOT_FOUND] file not found",
		},
		{
			name:    "config_error",
			code:    errors.ErrConfigValid,
			message: "invalid configuration",
			wantStr: "[CONFIG_INVALID] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrMaterialize, "cannot link %s to %s", "a.jar", "/out/a.jar")
	if err.Message != "cannot link a.jar to /out/a.jar" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[INTERNAL] internal error: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrResolve, "cannot resolve").
		WithDetail("coordinate", "g:a:1.0").
		WithDetails(map[string]interface{}{"repository": "/repo", "attempts": 1})

	if err.Details["coordinate"] != "g:a:1.0" {
		t.Errorf("coordinate detail = %v", err.Details["coordinate"])
	}
	if err.Details["repository"] != "/repo" || err.Details["attempts"] != 1 {
		t.Errorf("details = %v", err.Details)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrNotYetProduced, "error 1")
	err2 := errors.New(errors.ErrNotYetProduced, "error 2")
	err3 := errors.New(errors.ErrMaterialize, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match errors with the same code")
	}
	if stderrors.Is(err1, err3) {
		t.Error("errors.Is() should not match errors with different codes")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrConfigValid, "bad"), errors.ErrConfigValid, true},
		{"different_code", errors.New(errors.ErrConfigValid, "bad"), errors.ErrInternal, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrMaterialize, "io"), errors.ErrMaterialize, true},
		{"non_artlink_error", stderrors.New("standard error"), errors.ErrNotFound, false},
		{"nil_error", nil, errors.ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := errors.GetErrorCode(errors.New(errors.ErrResolve, "x")); got != errors.ErrResolve {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v", got)
	}
	if got := errors.GetErrorDetails(stderrors.New("plain")); got != nil {
		t.Errorf("GetErrorDetails() = %v", got)
	}
}

func TestDomainConstructors(t *testing.T) {
	t.Run("missing_version_names_coordinate", func(t *testing.T) {
		err := errors.MissingVersion("org.example", "lib")
		if err.Code != errors.ErrMissingVersion {
			t.Errorf("code = %v", err.Code)
		}
		if got := err.Error(); !strings.Contains(got, "org.example:lib") {
			t.Errorf("message %q should name the coordinate", got)
		}
	})

	t.Run("not_yet_produced_names_source", func(t *testing.T) {
		err := errors.NotYetProduced("/build/lib.jar")
		if err.Code != errors.ErrNotYetProduced {
			t.Errorf("code = %v", err.Code)
		}
		if err.Details["source"] != "/build/lib.jar" {
			t.Errorf("details = %v", err.Details)
		}
	})

	t.Run("config", func(t *testing.T) {
		err := errors.Config("invalid scope %q", "bogus")
		if !errors.IsErrorCode(err, errors.ErrConfigValid) {
			t.Errorf("code = %v", err.Code)
		}
	})
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	linkErr := errors.Wrap(rootCause, errors.ErrMaterialize, "cannot link")
	runErr := errors.Wrap(linkErr, errors.ErrInternal, "run failed")

	if !errors.IsErrorCode(runErr, errors.ErrInternal) {
		t.Error("top level should have ErrInternal code")
	}

	var artErr *errors.ArtlinkError
	if stderrors.As(runErr.Unwrap(), &artErr) && artErr.Code != errors.ErrMaterialize {
		t.Errorf("middle error code = %v", artErr.Code)
	}

	if !stderrors.Is(runErr, rootCause) {
		t.Error("should find root cause with errors.Is")
	}
}
