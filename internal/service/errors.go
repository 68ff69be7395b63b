package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrQuestionNotFound is returned when a submitted answer references a
// question that does not exist in the catalog.
var ErrQuestionNotFound = errors.New("question not found")

// ValidationError reports malformed input rejected before any write.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// StorageError wraps a durable-store failure. No partial or degraded results
// accompany it.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// GenerationError wraps a failure of the external resolution generator. It is
// surfaced distinctly from StorageError so callers can offer a retry for AI
// generation without implying data loss.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("resolution generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
