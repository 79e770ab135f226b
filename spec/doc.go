// Package spec is the in-memory object model for Swagger 2.0 documents.
//
// Most entities are plain structs with yaml and json tags, mirroring the
// specification's object catalog: Document, Info, PathItem, Operation,
// Response, and so on. Specification extensions (keys starting with "x-")
// are captured in each entity's Extra map. Three pieces of structure do not
// map onto plain structs and shape the rest of the package.
//
// # Dialects
//
// The validation attributes (type, format, numeric bounds, lengths, enum,
// multipleOf) appear in three dialects: full schemas, non-body parameters,
// and response headers. The shared block is defined once as
// SchemaCommon[K], where K is a phantom marker (SchemaKind, ParamKind,
// HeaderKind) that makes the three instantiations distinct types. Item
// descriptors follow the same rule: the primitive dialects use
// PrimitiveItems[K], full schemas use SchemaItems, and attaching a
// descriptor to the wrong dialect either does not compile or is rejected by
// AttachItems with a specerrors.KindMismatchError. Restrictions the type
// system cannot carry (object is legal only in schemas, file only in
// formData parameters, nothing extra in headers) are enforced by the
// Validate methods.
//
// The shared attributes are read and written through the entities' promoted
// accessors; CommonProjection is the uniform interface over all five dialect
// entities.
//
// # Sums
//
// Values the wire format flattens are kept as explicit two-or-three-case
// sums with constructor/narrowing pairs: OrRef[T] (inline value or $ref),
// ParameterSchema (body schema or simple dialect), SchemaItems (single or
// tuple), and SecurityScheme (basic, apiKey, or oauth2). Narrowing against
// the wrong case returns ok=false; it never panics. References are resolved
// by key against the document's tables (Definitions, Parameters, Responses),
// and a missing key is a specerrors.ReferenceNotFoundError.
//
// # Responses
//
// Per-status responses live in a Responses value split into Default and
// Codes. ResponseIndex presents either an Operation's collection or a bare
// Responses value as a flat Get/Set/Delete view with last-write-wins
// semantics; status codes are opaque strings at this layer.
//
// Entities mutate in place; holders that need isolation take a DeepCopy.
// Serialization goes through the struct tags plus the wire hooks in wire.go,
// for both JSON and YAML.
package spec
