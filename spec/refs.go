package spec

import (
	"strings"

	"github.com/swagspec/swagspec/specerrors"
)

// Reference prefixes for the three document-level tables.
const (
	// DefinitionsRefPrefix is the JSON reference prefix for reusable schemas.
	DefinitionsRefPrefix = "#/definitions/"
	// ParametersRefPrefix is the JSON reference prefix for reusable parameters.
	ParametersRefPrefix = "#/parameters/"
	// ResponsesRefPrefix is the JSON reference prefix for reusable responses.
	ResponsesRefPrefix = "#/responses/"
)

// Ref is a non-owning named pointer into one of the document's top-level
// tables. The table owns the referenced value; a Ref stays valid regardless
// of any in-memory reachability and is resolved by key lookup, never by
// following a stored link.
type Ref struct {
	// Pointer is the reference string as written, e.g. "#/definitions/Pet".
	Pointer string
}

// Key returns the table key the pointer addresses: the last path segment of
// the reference string.
func (r Ref) Key() string {
	if i := strings.LastIndexByte(r.Pointer, '/'); i >= 0 {
		return r.Pointer[i+1:]
	}
	return r.Pointer
}

// OrRef is a value that is either inlined directly or a Ref into a
// document-level table. The zero value is neither case; treat it as absent.
// Exactly one case is populated by the constructors, and narrowing is a
// lookup, not a cast: the wrong case yields ok=false, never a fault.
type OrRef[T any] struct {
	ref   *Ref
	value *T
}

// Inline wraps a value in the inline case.
func Inline[T any](v *T) *OrRef[T] {
	return &OrRef[T]{value: v}
}

// RefOf wraps a reference pointer in the reference case.
func RefOf[T any](pointer string) *OrRef[T] {
	return &OrRef[T]{ref: &Ref{Pointer: pointer}}
}

// IsRef reports whether the reference case is populated.
func (r *OrRef[T]) IsRef() bool {
	return r != nil && r.ref != nil
}

// Ref narrows to the reference case.
func (r *OrRef[T]) Ref() (Ref, bool) {
	if r == nil || r.ref == nil {
		return Ref{}, false
	}
	return *r.ref, true
}

// Value narrows to the inline case.
func (r *OrRef[T]) Value() (*T, bool) {
	if r == nil || r.value == nil {
		return nil, false
	}
	return r.value, true
}

// Resolve returns the inline value directly, or looks the reference key up
// in table. A missing key is reported with a
// specerrors.ReferenceNotFoundError, never treated as an absent inline
// value. tableName labels the table in the error ("definitions",
// "parameters", "responses").
func (r *OrRef[T]) Resolve(table map[string]*T, tableName string) (*T, error) {
	if v, ok := r.Value(); ok {
		return v, nil
	}
	ref, ok := r.Ref()
	if !ok {
		return nil, &specerrors.ReferenceNotFoundError{Table: tableName}
	}
	if v, ok := table[ref.Key()]; ok && v != nil {
		return v, nil
	}
	return nil, &specerrors.ReferenceNotFoundError{Key: ref.Key(), Table: tableName}
}

// The three catalog instantiations are spelled out directly everywhere:
// a generic alias for one of them does not type-check, because the alias
// participates in the catalog's recursion through its own type argument.

// SchemaRef builds the reference case of an OrRef[Schema] for a definitions
// key.
func SchemaRef(name string) *OrRef[Schema] {
	return RefOf[Schema](DefinitionsRefPrefix + name)
}

// ResponseRef builds the reference case of an OrRef[Response] for a responses
// key.
func ResponseRef(name string) *OrRef[Response] {
	return RefOf[Response](ResponsesRefPrefix + name)
}

// ParameterRef builds the reference case of an OrRef[Parameter] for a
// parameters key.
func ParameterRef(name string) *OrRef[Parameter] {
	return RefOf[Parameter](ParametersRefPrefix + name)
}
