package spec

// The Swagger 2.0 object model carries the same validation attributes in
// three places with slightly different shapes: full schemas, non-body
// parameters, and response headers. Each place is a dialect, and a value
// built for one dialect is not legal in another. The dialect markers below
// tag every SchemaCommon and PrimitiveItems instantiation so that
// cross-dialect attachment is a compile error wherever Go's type system can
// express it; the residual cases are rejected by Validate with a
// specerrors.KindMismatchError.

// SchemaKind marks the full JSON-Schema dialect used by Schema.
type SchemaKind struct{}

// ParamKind marks the simple dialect used by non-body parameters.
type ParamKind struct{}

// HeaderKind marks the dialect used by response headers.
type HeaderKind struct{}

// Kind is the closed set of schema dialect markers.
type Kind interface {
	SchemaKind | ParamKind | HeaderKind
}

// PrimitiveKind is the subset of dialects whose array items are described by
// a PrimitiveItems descriptor rather than a nested schema. Full schemas are
// excluded: their items are SchemaItems, and a PrimitiveItems cannot be
// instantiated for SchemaKind at all.
type PrimitiveKind interface {
	ParamKind | HeaderKind
}

// KindName returns the dialect name for K, used in diagnostics.
func KindName[K Kind]() string {
	var k K
	switch any(k).(type) {
	case SchemaKind:
		return "schema"
	case ParamKind:
		return "parameter"
	case HeaderKind:
		return "header"
	}
	return "unknown"
}
