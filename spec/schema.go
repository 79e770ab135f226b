package spec

// Schema represents a JSON Schema in the Swagger 2.0 dialect
// Reference: https://spec.openapis.org/oas/v2.0.html#schema-object
type Schema struct {
	SchemaCommon[SchemaKind] `yaml:",inline"`

	Title       string   `yaml:"title,omitempty" json:"title,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Required    []string `yaml:"required,omitempty" json:"required,omitempty"`

	// Items describes array elements. This is the full-schema dialect's
	// bespoke item descriptor: unlike the parameter and header dialects,
	// elements are schemas (inline or referenced), single or tuple.
	Items *SchemaItems `yaml:"items,omitempty" json:"items,omitempty"`

	MaxProperties        *int                    `yaml:"maxProperties,omitempty" json:"maxProperties,omitempty"`
	MinProperties        *int                    `yaml:"minProperties,omitempty" json:"minProperties,omitempty"`
	Properties           map[string]*OrRef[Schema] `yaml:"properties,omitempty" json:"properties,omitempty"`
	AdditionalProperties *OrRef[Schema]            `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`
	AllOf                []*OrRef[Schema]          `yaml:"allOf,omitempty" json:"allOf,omitempty"`

	Discriminator string        `yaml:"discriminator,omitempty" json:"discriminator,omitempty"`
	ReadOnly      bool          `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	XML           *XML          `yaml:"xml,omitempty" json:"xml,omitempty"`
	ExternalDocs  *ExternalDocs `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	Example       any           `yaml:"example,omitempty" json:"example,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// ItemsSchema returns the bespoke item descriptor of the full-schema
// dialect. This pair shadows nothing; the primitive-dialect ItemsOf/SetItems
// accessors do not apply to Schema by construction.
func (s *Schema) ItemsSchema() *SchemaItems {
	return s.Items
}

// SetItemsSchema replaces the item descriptor.
func (s *Schema) SetItemsSchema(items *SchemaItems) {
	s.Items = items
}

// SchemaItems describes the elements of an array-typed full schema: either
// one schema applying to every element, or a tuple of schemas applying
// positionally. Exactly one case is populated by the constructors; narrowing
// against the other case yields ok=false.
type SchemaItems struct {
	single *OrRef[Schema]
	tuple  []*OrRef[Schema]
}

// SingleItems builds the uniform-element case.
func SingleItems(s *OrRef[Schema]) *SchemaItems {
	return &SchemaItems{single: s}
}

// TupleItems builds the positional-element case.
func TupleItems(ss ...*OrRef[Schema]) *SchemaItems {
	return &SchemaItems{tuple: ss}
}

// Single narrows to the uniform-element case.
func (si *SchemaItems) Single() (*OrRef[Schema], bool) {
	if si == nil || si.single == nil {
		return nil, false
	}
	return si.single, true
}

// Tuple narrows to the positional-element case.
func (si *SchemaItems) Tuple() ([]*OrRef[Schema], bool) {
	if si == nil || si.tuple == nil {
		return nil, false
	}
	return si.tuple, true
}
