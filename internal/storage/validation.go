package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

// Validation errors.
var (
	ErrNilContext  = errors.New("context cannot be nil")
	ErrEmptyString = errors.New("string parameter cannot be empty")
	ErrNilReport   = errors.New("run report cannot be nil")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateReport checks the minimal shape of a run report before persisting.
func validateReport(report *model.RunReport) error {
	if report == nil {
		return ErrNilReport
	}
	if report.StartedAt.IsZero() {
		return fmt.Errorf("run report has no start time")
	}
	return nil
}
