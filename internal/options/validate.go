package options

import (
	"errors"
	"strings"

	"jordanella.com/campaign-options/internal/faction"
)

// ErrValidationFailed wraps every validation failure returned by Commit
var ErrValidationFailed = errors.New("campaign options validation failed")

// Status is the outcome of validation
type Status int

const (
	StatusSuccess Status = iota
	StatusWarning
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusWarning:
		return "WARNING"
	case StatusFailure:
		return "FAILURE"
	default:
		return "UNKNOWN"
	}
}

// Result is a validation status with the messages to show the user
type Result struct {
	Status   Status
	Messages []string
}

// OK reports whether the result allows a commit
func (r Result) OK() bool {
	return r.Status == StatusSuccess
}

// ValidationError carries a failed result through an error return
type ValidationError struct {
	Result Result
}

func (e *ValidationError) Error() string {
	return ErrValidationFailed.Error() + ": " + strings.Join(e.Result.Messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// Validate checks the campaign level fields in order and stops at the
// first failure: the name must not be blank, and a faction with a
// non-blank code must be selected
func Validate(name string, f *faction.Faction) Result {
	if strings.TrimSpace(name) == "" {
		return Result{Status: StatusFailure, Messages: []string{"The campaign name cannot be blank."}}
	}
	if f == nil || strings.TrimSpace(f.ShortName()) == "" {
		return Result{Status: StatusFailure, Messages: []string{"A faction must be selected."}}
	}
	return Result{Status: StatusSuccess}
}
