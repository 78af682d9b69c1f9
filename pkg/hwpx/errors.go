package hwpx

import "fmt"

// ValidationError reports a style configuration value outside its
// documented range. It is returned at registry build time, before any
// record is constructed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// NewValidationError creates a validation error naming the offending field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ModelError reports a document model consistency defect: a block or run
// referencing a property record that does not exist, or a table whose
// declared grid does not match its populated cells. These are programming
// errors surfaced at construction, not deferred to serialization.
type ModelError struct {
	Operation string
	Message   string
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("model error in %s: %s", e.Operation, e.Message)
}

func newModelError(operation, format string, args ...interface{}) *ModelError {
	return &ModelError{Operation: operation, Message: fmt.Sprintf(format, args...)}
}

// SerializeError reports an internal invariant violation during
// serialization, such as a block or run variant with no mapping. This is
// a fatal defect in the caller, never a recoverable condition.
type SerializeError struct {
	Element string
	Message string
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("serialize error for %s: %s", e.Element, e.Message)
}

func newSerializeError(element, format string, args ...interface{}) *SerializeError {
	return &SerializeError{Element: element, Message: fmt.Sprintf(format, args...)}
}

// PackageError reports a container assembly failure.
type PackageError struct {
	Entry string
	Cause error
}

func (e *PackageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("package error for entry %q: %v", e.Entry, e.Cause)
	}
	return fmt.Sprintf("package error for entry %q", e.Entry)
}

func (e *PackageError) Unwrap() error {
	return e.Cause
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// IsModelError checks if an error is a model consistency error.
func IsModelError(err error) bool {
	_, ok := err.(*ModelError)
	return ok
}

// IsSerializeError checks if an error is a serialization defect.
func IsSerializeError(err error) bool {
	_, ok := err.(*SerializeError)
	return ok
}

// IsPackageError checks if an error is a container assembly failure.
func IsPackageError(err error) bool {
	_, ok := err.(*PackageError)
	return ok
}
