package builder_test

import (
	"fmt"
	"log"

	"github.com/swagspec/swagspec/builder"
	"github.com/swagspec/swagspec/spec"
)

// Example demonstrates basic builder usage.
func Example() {
	b := builder.New().
		SetTitle("Pet Store API").
		SetVersion("1.0.0").
		SetHost("petstore.example.com").
		SetBasePath("/v2")

	petRef := b.AddDefinition("Pet", &spec.Schema{
		Title:    "Pet",
		Required: []string{"name"},
	})

	b.AddOperation("get", "/pets",
		builder.WithOperationID("listPets"),
		builder.WithQueryParam("limit", spec.TypeInteger,
			builder.WithParamFormat("int32"),
		),
		builder.WithResponse(200,
			builder.WithResponseDescription("A list of pets"),
			builder.WithResponseSchema(petRef),
		),
	)

	doc, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Swagger: %s\n", doc.Swagger)
	fmt.Printf("Title: %s\n", doc.Info.Title)
	fmt.Printf("Paths: %d\n", len(doc.Paths))
	fmt.Printf("Definitions: %d\n", len(doc.Definitions))
	// Output:
	// Swagger: 2.0
	// Title: Pet Store API
	// Paths: 1
	// Definitions: 1
}

// Example_definitionNaming demonstrates definition naming strategies.
func Example_definitionNaming() {
	b := builder.New(
		builder.WithDefinitionNaming(builder.DefinitionNamingPascalCase),
	).
		SetTitle("My API").
		SetVersion("1.0.0")

	ref := b.AddDefinition("pet_owner", &spec.Schema{})
	r, _ := ref.Ref()
	fmt.Println(r.Pointer)
	// Output:
	// #/definitions/PetOwner
}

// Example_errorAccumulation demonstrates how assembly errors surface at
// Build time.
func Example_errorAccumulation() {
	b := builder.New().
		SetTitle("My API").
		SetVersion("1.0.0")

	b.AddOperation("get", "/pets", builder.WithOperationID("listPets"))
	b.AddOperation("get", "/animals", builder.WithOperationID("listPets"))

	_, err := b.Build()
	fmt.Println(err)
	// Output:
	// builder: operation get /animals [operationId: listPets]: duplicate operationId "listPets" (first defined at get /pets)
}
