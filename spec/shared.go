package spec

// SchemaCommon holds the validation attributes shared by every schema
// dialect: full schemas, non-body parameters, headers, and their item
// descriptors. It is embedded once per dialect entity; the K parameter is a
// phantom tag fixing which dialect the block belongs to. K stores no data
// and is resolved at construction, but it makes SchemaCommon[HeaderKind] and
// SchemaCommon[SchemaKind] distinct types, so attaching one dialect's block
// to another dialect's entity does not compile.
//
// The array item descriptor is deliberately not part of this block: its type
// differs per dialect (PrimitiveItems for parameters and headers,
// SchemaItems for full schemas), so it lives on the embedding entity. See
// projection.go for the accessor discipline.
type SchemaCommon[K Kind] struct {
	_ [0]K

	Type             DataType `yaml:"type,omitempty" json:"type,omitempty"`
	Format           string   `yaml:"format,omitempty" json:"format,omitempty"`
	Default          any      `yaml:"default,omitempty" json:"default,omitempty"`
	Maximum          *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	ExclusiveMaximum bool     `yaml:"exclusiveMaximum,omitempty" json:"exclusiveMaximum,omitempty"`
	Minimum          *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	ExclusiveMinimum bool     `yaml:"exclusiveMinimum,omitempty" json:"exclusiveMinimum,omitempty"`
	MaxLength        *int     `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinLength        *int     `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	Pattern          string   `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	MaxItems         *int     `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	MinItems         *int     `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	UniqueItems      bool     `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`
	Enum             []any    `yaml:"enum,omitempty" json:"enum,omitempty"`
	MultipleOf       *float64 `yaml:"multipleOf,omitempty" json:"multipleOf,omitempty"`
}

// PrimitiveItems describes the elements of an array-typed value in the
// parameter and header dialects. It recursively carries its own shared
// attribute block of the same dialect, so nested array descriptors stay
// within one dialect by construction. The PrimitiveKind constraint makes a
// PrimitiveItems for the full-schema dialect unrepresentable; full schemas
// describe their elements with SchemaItems instead.
type PrimitiveItems[K PrimitiveKind] struct {
	SchemaCommon[K] `yaml:",inline"`

	Items            *PrimitiveItems[K] `yaml:"items,omitempty" json:"items,omitempty"`
	CollectionFormat CollectionFormat   `yaml:"collectionFormat,omitempty" json:"collectionFormat,omitempty"`
}

// ItemsDescriptor returns the primitive item descriptor, implementing
// ItemsHolder for nested arrays.
func (p *PrimitiveItems[K]) ItemsDescriptor() *PrimitiveItems[K] {
	return p.Items
}

// SetItemsDescriptor replaces the primitive item descriptor, implementing
// ItemsHolder for nested arrays.
func (p *PrimitiveItems[K]) SetItemsDescriptor(items *PrimitiveItems[K]) {
	p.Items = items
}
