package translate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrRecordIDRequired = errors.New("translate: record id required")
	ErrStoreRequired    = errors.New("translate: store is required")
	ErrLocaleRequired   = errors.New("translate: locale is required")
	ErrPersistence      = errors.New("translate: persistence operation failed")
)

// NotFoundError represents missing rows from store lookups. Read paths treat
// it as an absent result, never as a failure.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether the error marks an absent row.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// PersistenceError identifies which bundle failed during a store operation so
// callers can decide whether to roll the surrounding commit back.
type PersistenceError struct {
	Op       string
	RecordID uuid.UUID
	Locale   string
	Err      error
}

func (e *PersistenceError) Error() string {
	if e == nil {
		return ErrPersistence.Error()
	}
	parts := []string{ErrPersistence.Error()}
	if op := strings.TrimSpace(e.Op); op != "" {
		parts = append(parts, "op="+op)
	}
	if loc := strings.TrimSpace(e.Locale); loc != "" {
		parts = append(parts, "locale="+loc)
	}
	if e.RecordID != uuid.Nil {
		parts = append(parts, "record="+e.RecordID.String())
	}
	msg := strings.Join(parts, ": ")
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *PersistenceError) Unwrap() error {
	if e == nil || e.Err == nil {
		return ErrPersistence
	}
	return e.Err
}

// Is lets errors.Is match the ErrPersistence sentinel while Unwrap exposes
// the underlying store failure unchanged.
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
