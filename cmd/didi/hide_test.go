// ABOUTME: Tests for id argument parsing and exit code mapping.
// ABOUTME: Covers validation errors, dedup/sort, and store error codes.

package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/harper/didi/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs([]string{"7", "3", "7", "12"})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 7, 12}, ids)
}

func TestParseIDsRejectsInvalid(t *testing.T) {
	for _, arg := range []string{"abc", "-1", "0", "1.5", ""} {
		t.Run(arg, func(t *testing.T) {
			_, err := parseIDs([]string{"1", arg})
			var validation *ValidationError
			require.True(t, errors.As(err, &validation), "expected ValidationError, got %v", err)
			assert.Equal(t, arg, validation.Arg)
		})
	}
}

func TestValidateIDArgs(t *testing.T) {
	assert.Error(t, validateIDArgs(hideCmd, nil))
	assert.Error(t, validateIDArgs(hideCmd, []string{"x"}))
	assert.NoError(t, validateIDArgs(hideCmd, []string{"1", "2"}))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"generic", errors.New("boom"), ExitError},
		{"validation", &ValidationError{Arg: "x"}, ExitValidation},
		{"not found", fmt.Errorf("failed to open diary: %w", db.ErrNotFound), ExitNotFound},
		{"entry not found", fmt.Errorf("failed to get entry: %w", db.ErrEntryNotFound), ExitNotFound},
		{"already exists", fmt.Errorf("failed to create diary: %w", db.ErrAlreadyExists), ExitAlreadyExists},
		{"storage", fmt.Errorf("wrapped: %w", db.ErrStorage), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
