package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound    = errors.New("resource not found")
	ErrLogNotFound = fmt.Errorf("%w: log entry", ErrNotFound)

	// Analysis errors. ErrNoInterventionFound is a usage error: the caller
	// asked about a therapy the subject never marked as started.
	ErrNoInterventionFound = errors.New("no intervention found for therapy")
	ErrUnknownMetric       = errors.New("unknown metric")
	ErrEmptySeries         = errors.New("series contains no records")

	// Validation errors raised at ingestion, before records reach the engine
	ErrMalformedRecord = errors.New("malformed record")
	ErrDuplicateDate   = errors.New("duplicate date for subject")
)

// NewNoInterventionError names the therapy that was never marked started
func NewNoInterventionError(therapy string) error {
	return fmt.Errorf("%w: %q", ErrNoInterventionFound, therapy)
}

// NewMalformedRecordError describes why a record failed ingestion validation
func NewMalformedRecordError(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrMalformedRecord, field, reason)
}

// IsNotFoundError reports whether err is any not-found variant
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsMalformedRecordError reports whether err is an ingestion validation
// failure
func IsMalformedRecordError(err error) bool {
	return errors.Is(err, ErrMalformedRecord) || errors.Is(err, ErrDuplicateDate)
}

// IsUsageError reports whether err is a caller mistake rather than a data
// quality condition. Usage errors propagate; data insufficiency never does.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrNoInterventionFound) ||
		errors.Is(err, ErrUnknownMetric) ||
		errors.Is(err, ErrEmptySeries)
}
