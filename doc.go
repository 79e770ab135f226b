// Package swagspec provides a strongly typed, in-memory object model for
// Swagger 2.0 (OpenAPI 2.0) documents.
//
// swagspec models the parts of the Swagger 2.0 object model that resist a
// plain struct translation: the validation attributes shared across three
// schema dialects, the closed sums the wire format flattens away, and the
// status-code response map. The model is built around three packages:
//
//   - spec: the document model itself. Every entity is a plain struct with
//     yaml and json tags; the shapes the wire format cannot express directly
//     carry custom marshal hooks.
//   - specerrors: the error taxonomy. Every validation failure matches a
//     package sentinel through errors.Is, and structured error types carry
//     the details.
//   - builder: fluent document assembly with error accumulation, definition
//     naming strategies, and file output.
//
// # The dialect system
//
// Swagger 2.0 repeats the same validation attributes (type, format, bounds,
// enum, and so on) in three places with slightly different rules: full
// schemas, non-body parameters, and response headers. spec captures the
// shared block once as a generic struct tagged by a phantom dialect marker:
//
//	var s spec.Schema           // SchemaCommon[SchemaKind]
//	var p spec.ParamOtherSchema // SchemaCommon[ParamKind]
//	var h spec.Header           // SchemaCommon[HeaderKind]
//
// Attaching one dialect's item descriptor to another dialect's entity does
// not compile; the residual dynamic cases are rejected by Validate with a
// specerrors.KindMismatchError. The per-dialect type restrictions the type
// system cannot carry (object is schema-only, file is formData-only) are
// enforced the same way.
//
// # Closed sums
//
// Three wire shapes are sums the model keeps explicit instead of flattening
// into optional fields: a value that is either inline or a $ref
// (spec.OrRef), a parameter schema that is either a full body schema or the
// simple non-body dialect (spec.ParameterSchema), and a security scheme that
// is basic, apiKey, or oauth2 (spec.SecurityScheme). Each sum is narrowed by
// lookup, never by cast:
//
//	if ref, ok := s.Ref(); ok {
//		// reference case
//	}
//
// # Quick Start
//
// Assemble a document with the builder:
//
//	import "github.com/swagspec/swagspec/builder"
//
//	b := builder.New()
//	b.SetTitle("Petstore").SetVersion("1.0.0")
//	b.AddOperation("get", "/pets",
//		builder.WithOperationID("listPets"),
//		builder.WithQueryParam("limit", spec.TypeInteger),
//		builder.WithResponse(200, builder.WithResponseDescription("ok")),
//	)
//	doc, err := b.Build()
//
// Or unmarshal one directly:
//
//	var doc spec.Document
//	err := yaml.Unmarshal(data, &doc)
//	err = doc.Validate()
//
// # Specification Reference
//
// The modeled specification is OAS 2.0 (Swagger):
// https://spec.openapis.org/oas/v2.0.html
package swagspec
