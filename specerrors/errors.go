package specerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrValidation matches every structural validation error in this package.
	ErrValidation = errors.New("validation error")

	// ErrKindMismatch indicates a schema-dialect mismatch.
	ErrKindMismatch = errors.New("kind mismatch")

	// ErrDuplicateParameter indicates a duplicated (name, in) parameter pair.
	ErrDuplicateParameter = errors.New("duplicate parameter")

	// ErrReferenceNotFound indicates an unresolvable definitions-table key.
	ErrReferenceNotFound = errors.New("reference not found")

	// ErrInvalidRequiredFlag indicates a path parameter with required=false.
	ErrInvalidRequiredFlag = errors.New("invalid required flag")

	// ErrConfig indicates a document-assembly configuration error, such as a
	// duplicate operationId or an unknown HTTP method. Errors produced by the
	// builder package match this sentinel.
	ErrConfig = errors.New("configuration error")
)

// KindMismatchError reports that a value built for one schema dialect was
// attached to an entity of an incompatible dialect. Most mismatches are
// compile errors; this error covers the erased paths the type system cannot
// reach (values arriving through any, or structurally illegal combinations
// such as a full schema carrying a primitive item descriptor).
type KindMismatchError struct {
	// Expected is the dialect the host entity belongs to (e.g., "header").
	Expected string
	// Actual is the dialect of the offending value.
	Actual string
	// Field is the attribute or descriptor being attached (e.g., "items").
	Field string
	// Message provides additional context about the failure.
	Message string
}

// Error returns a human-readable error message.
func (e *KindMismatchError) Error() string {
	msg := "kind mismatch"
	if e.Field != "" {
		msg += " on " + e.Field
	}
	if e.Expected != "" && e.Actual != "" {
		msg += fmt.Sprintf(": expected %s, got %s", e.Expected, e.Actual)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *KindMismatchError) Is(target error) bool {
	return target == ErrKindMismatch || target == ErrValidation
}

// DuplicateParameterError reports that two parameters in the same PathItem or
// Operation parameter list share a (name, in) pair.
type DuplicateParameterError struct {
	// Name is the parameter name (case-sensitive).
	Name string
	// In is the parameter location (e.g., "query", "path").
	In string
	// Scope describes the owning list (e.g., "path item /pets", "operation getPets").
	Scope string
}

// Error returns a human-readable error message.
func (e *DuplicateParameterError) Error() string {
	msg := fmt.Sprintf("duplicate parameter (name: %q, in: %q)", e.Name, e.In)
	if e.Scope != "" {
		msg += " in " + e.Scope
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *DuplicateParameterError) Is(target error) bool {
	return target == ErrDuplicateParameter || target == ErrValidation
}

// ReferenceNotFoundError reports that a reference key was absent from the
// document's definitions table at the point of resolution. Resolution failure
// is always reported to the caller, never silently treated as an absent
// inline value.
type ReferenceNotFoundError struct {
	// Key is the definitions-table key that failed to resolve.
	Key string
	// Table identifies the table searched: "definitions", "parameters", or "responses".
	Table string
}

// Error returns a human-readable error message.
func (e *ReferenceNotFoundError) Error() string {
	msg := fmt.Sprintf("reference not found: %q", e.Key)
	if e.Table != "" {
		msg += " in " + e.Table
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ReferenceNotFoundError) Is(target error) bool {
	return target == ErrReferenceNotFound || target == ErrValidation
}

// RequiredFlagError reports a parameter with location "path" declared with
// required=false. Path parameters are always required in Swagger 2.0.
type RequiredFlagError struct {
	// Name is the offending parameter's name.
	Name string
}

// Error returns a human-readable error message.
func (e *RequiredFlagError) Error() string {
	return fmt.Sprintf("parameter %q: location \"path\" requires required=true", e.Name)
}

// Is reports whether target matches this error type.
func (e *RequiredFlagError) Is(target error) bool {
	return target == ErrInvalidRequiredFlag || target == ErrValidation
}
