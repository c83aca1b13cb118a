package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	packassets "github.com/alnah/go-packassets"
)

type timeoutError struct{}

func (timeoutError) Error() string { return "i/o timeout" }
func (timeoutError) Timeout() bool { return true }

func TestIsTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("refused"), false},
		{"wrapped timeout", fmt.Errorf("%w: %w", packassets.ErrManifestLoad, timeoutError{}), true},
		{"canceled", context.Canceled, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isTimeout(tt.err); got != tt.want {
				t.Errorf("isTimeout(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestRunDoctor_NoInstances(t *testing.T) {
	t.Parallel()

	result := runDoctor(&session{}, nil)
	if result.Status != statusErrors || len(result.Errors) != 1 {
		t.Errorf("result = %+v, want one error", result)
	}
}
