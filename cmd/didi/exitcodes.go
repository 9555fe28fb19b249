// ABOUTME: Process exit codes for didi.
// ABOUTME: Maps store and validation errors to distinct statuses.

package main

import (
	"errors"

	"github.com/harper/didi/internal/db"
)

const (
	ExitSuccess       = 0 // Success
	ExitError         = 1 // General error (storage failure, bad input)
	ExitNotFound      = 2 // Diary database or entry missing
	ExitAlreadyExists = 3 // create on an existing location
	ExitValidation    = 4 // Invalid id argument
)

func exitCode(err error) int {
	var validation *ValidationError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &validation):
		return ExitValidation
	case errors.Is(err, db.ErrNotFound), errors.Is(err, db.ErrEntryNotFound):
		return ExitNotFound
	case errors.Is(err, db.ErrAlreadyExists):
		return ExitAlreadyExists
	default:
		return ExitError
	}
}
