// Package builder provides programmatic construction of Swagger 2.0 documents.
//
// The builder accumulates document sections through a fluent API and assembles
// a *spec.Document when Build is called. Errors raised along the way (duplicate
// operationIds, unknown HTTP methods, contradictory parameter constraints) are
// collected rather than returned immediately, so a full chain of calls can be
// written without per-call error handling:
//
//	b := builder.New().
//		SetTitle("Pet Store").
//		SetVersion("1.0.0").
//		SetHost("petstore.example.com")
//
//	b.AddOperation("get", "/pets/{id}",
//		builder.WithOperationID("getPet"),
//		builder.WithPathParam("id", spec.TypeInteger),
//		builder.WithResponse(200,
//			builder.WithResponseDescription("the pet"),
//			builder.WithResponseSchemaRef("Pet"),
//		),
//	)
//
//	doc, err := b.Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Accumulated errors surface from Build as a BuilderErrors collection; every
// element matches specerrors.ErrConfig under errors.Is.
//
// # Definition Naming
//
// Names passed to AddDefinition can be normalized with a naming strategy:
//
//	b := builder.New(builder.WithDefinitionNaming(builder.DefinitionNamingPascalCase))
//	b.AddDefinition("pet_owner", schema) // stored as "PetOwner"
//
// The builder does not validate the assembled document beyond its own
// bookkeeping. Call Document.Validate on the result for full structural
// validation.
package builder
