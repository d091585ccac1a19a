package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestStructuredErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *StructuredError
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeInvalidRequest, "factor must be positive"),
			want: "[INVALID_REQUEST] factor must be positive",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeNotFound, "failed to read recipe", fs.ErrNotExist),
			want: "[NOT_FOUND] failed to read recipe: file does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStructuredErrorUnwrap(t *testing.T) {
	cause := fs.ErrNotExist
	err := Wrap(ErrCodeNotFound, "failed to read recipe", cause)

	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("errors.Is does not find the wrapped cause")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	var structured *StructuredError
	if !errors.As(wrapped, &structured) {
		t.Fatal("errors.As does not find the StructuredError")
	}
	if structured.Code != ErrCodeNotFound {
		t.Errorf("code = %q, want %q", structured.Code, ErrCodeNotFound)
	}
}

func TestWrapWithContext(t *testing.T) {
	err := WrapWithContext(ErrCodeInternal, "scale failed", errors.New("boom"),
		map[string]any{"factor": 2.0})
	if err.Context["factor"] != 2.0 {
		t.Errorf("context not preserved: %v", err.Context)
	}
}
