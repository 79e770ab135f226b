package builder

import (
	"fmt"
	"strings"

	"github.com/swagspec/swagspec/internal/httpwire"
	"github.com/swagspec/swagspec/specerrors"
)

// ComponentType identifies the type of component where an error occurred.
type ComponentType string

const (
	// ComponentOperation indicates an error in an operation definition.
	ComponentOperation ComponentType = "operation"
	// ComponentParameter indicates an error in a parameter definition.
	ComponentParameter ComponentType = "parameter"
	// ComponentDefinition indicates an error in a schema definition.
	ComponentDefinition ComponentType = "definition"
	// ComponentResponse indicates an error in a response definition.
	ComponentResponse ComponentType = "response"
	// ComponentSecurityScheme indicates an error in a security scheme.
	ComponentSecurityScheme ComponentType = "security_scheme"
	// ComponentDocument indicates an error in a document-level setting.
	ComponentDocument ComponentType = "document"
)

// operationLocation tracks where an operationID was first defined.
type operationLocation struct {
	Method string
	Path   string
}

// String returns a human-readable location description.
func (ol operationLocation) String() string {
	return fmt.Sprintf("%s %s", ol.Method, ol.Path)
}

// BuilderError represents a structured error from the builder package.
// It provides detailed context about where and why an error occurred during
// the fluent API building process.
type BuilderError struct {
	// Component is the type of component where the error occurred.
	Component ComponentType
	// Method is the HTTP method (for operation errors).
	Method string
	// Path is the API path (for operation errors) or definition name.
	Path string
	// OperationID is the operation identifier (if applicable).
	OperationID string
	// Field is the specific field with the error (e.g., "minimum").
	Field string
	// Message describes the error.
	Message string
	// FirstOccurrence tracks where a duplicate was first defined.
	FirstOccurrence *operationLocation
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface with a detailed, formatted message.
func (e *BuilderError) Error() string {
	var sb strings.Builder
	sb.WriteString("builder")

	if e.Component != "" {
		sb.WriteString(": ")
		sb.WriteString(string(e.Component))
	}

	if e.Method != "" && e.Path != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Method)
		sb.WriteString(" ")
		sb.WriteString(e.Path)
	} else if e.Path != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Path)
	}

	if e.OperationID != "" {
		sb.WriteString(" [operationId: ")
		sb.WriteString(e.OperationID)
		sb.WriteString("]")
	}

	if e.Field != "" {
		sb.WriteString(" field ")
		sb.WriteString(e.Field)
	}

	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}

	if e.FirstOccurrence != nil {
		sb.WriteString(" (first defined at ")
		sb.WriteString(e.FirstOccurrence.String())
		sb.WriteString(")")
	}

	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}

	return sb.String()
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *BuilderError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type. All BuilderErrors are
// classified as specerrors.ErrConfig, enabling callers to use
// errors.Is(err, specerrors.ErrConfig) to detect builder configuration issues.
func (e *BuilderError) Is(target error) bool {
	return target == specerrors.ErrConfig
}

// Location returns a descriptive location string.
func (e *BuilderError) Location() string {
	if e.Method != "" && e.Path != "" {
		return fmt.Sprintf("%s %s", e.Method, e.Path)
	}
	if e.Path != "" {
		return e.Path
	}
	if e.Component != "" {
		return string(e.Component)
	}
	return "unknown"
}

// NewDuplicateOperationIDError creates an error for duplicate operation IDs.
func NewDuplicateOperationIDError(operationID, method, path string, first *operationLocation) *BuilderError {
	return &BuilderError{
		Component:       ComponentOperation,
		Method:          method,
		Path:            path,
		OperationID:     operationID,
		Message:         fmt.Sprintf("duplicate operationId %q", operationID),
		FirstOccurrence: first,
	}
}

// NewInvalidMethodError creates an error for invalid/unknown HTTP methods.
func NewInvalidMethodError(method, path string) *BuilderError {
	return &BuilderError{
		Component: ComponentOperation,
		Method:    method,
		Path:      path,
		Message:   fmt.Sprintf("unsupported HTTP method: %s (expected one of: %s)", method, strings.Join(httpwire.Methods, ", ")),
	}
}

// NewMediaTypeError creates an error for a malformed consumes/produces entry.
func NewMediaTypeError(method, path, operationID, field, mediaType string) *BuilderError {
	return &BuilderError{
		Component:   ComponentOperation,
		Method:      method,
		Path:        path,
		OperationID: operationID,
		Field:       field,
		Message:     fmt.Sprintf("invalid media type %q", mediaType),
	}
}

// NewParameterConstraintError creates an error for parameter constraint violations.
func NewParameterConstraintError(paramName, operationContext, field, message string) *BuilderError {
	return &BuilderError{
		Component: ComponentParameter,
		Path:      operationContext,
		Field:     field,
		Message:   fmt.Sprintf("parameter %q: %s", paramName, message),
	}
}

// NewDefinitionError creates an error for schema definition issues.
func NewDefinitionError(name, message string, cause error) *BuilderError {
	return &BuilderError{
		Component: ComponentDefinition,
		Path:      name,
		Message:   message,
		Cause:     cause,
	}
}

// BuilderErrors is a collection of BuilderError with formatting support.
type BuilderErrors []*BuilderError

// Error implements the error interface with a formatted multi-error message.
func (errs BuilderErrors) Error() string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		if errs[0] == nil {
			return ""
		}
		return errs[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("builder: %d error(s):\n", len(errs)))
	for _, e := range errs {
		if e == nil {
			continue
		}
		sb.WriteString("  - ")
		// Strip the "builder: " prefix for nested errors to avoid repetition
		errMsg := strings.TrimPrefix(e.Error(), "builder: ")
		sb.WriteString(errMsg)
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// Unwrap returns the errors for Go 1.20+ error wrapping semantics,
// enabling errors.Is and errors.As to work with multiple wrapped errors.
func (errs BuilderErrors) Unwrap() []error {
	result := make([]error, 0, len(errs))
	for _, e := range errs {
		if e == nil {
			continue
		}
		result = append(result, e)
	}
	return result
}
