package spec

// Parameter describes a single operation parameter
// Reference: https://spec.openapis.org/oas/v2.0.html#parameter-object
type Parameter struct {
	// Name is the parameter name. Names are case-sensitive.
	Name string `yaml:"name" json:"name"`
	// In is the parameter location: "query", "header", "path", "formData",
	// or "body". Parameters with In=InPath must set Required to true.
	In          Location `yaml:"in" json:"in"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool     `yaml:"required,omitempty" json:"required,omitempty"`

	// Schema is the body-or-other sum: body parameters carry a full schema,
	// all other locations carry the simple parameter dialect. Wire hooks in
	// wire.go flatten the non-body case into the parameter object itself.
	Schema ParameterSchema `yaml:"-" json:"-"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:"-" json:"-"`
}

// Pair returns the (name, location) identity used for uniqueness within a
// parameter list.
func (p *Parameter) Pair() (string, Location) {
	return p.Name, p.In
}

// ParameterSchema is the closed sum over the two forms a parameter's schema
// can take: a Body form holding a full schema (inline or referenced), or an
// Other form holding the simple parameter dialect. The zero value is neither
// case. Exactly one case is populated by the constructors; narrowing against
// the wrong case yields ok=false, never a fault.
type ParameterSchema struct {
	body  *OrRef[Schema]
	other *ParamOtherSchema
}

// BodySchema builds the Body case.
func BodySchema(s *OrRef[Schema]) ParameterSchema {
	return ParameterSchema{body: s}
}

// OtherSchema builds the Other case.
func OtherSchema(o *ParamOtherSchema) ParameterSchema {
	return ParameterSchema{other: o}
}

// Body narrows to the Body case.
func (ps ParameterSchema) Body() (*OrRef[Schema], bool) {
	if ps.body == nil {
		return nil, false
	}
	return ps.body, true
}

// Other narrows to the Other case.
func (ps ParameterSchema) Other() (*ParamOtherSchema, bool) {
	if ps.other == nil {
		return nil, false
	}
	return ps.other, true
}

// IsZero reports whether neither case is populated.
func (ps ParameterSchema) IsZero() bool {
	return ps.body == nil && ps.other == nil
}

// ParamOtherSchema is the schema dialect of non-body parameters: the shared
// attribute block of the parameter dialect plus the fields only parameters
// carry.
type ParamOtherSchema struct {
	SchemaCommon[ParamKind] `yaml:",inline"`

	// AllowEmptyValue permits an empty value for query and formData
	// parameters.
	AllowEmptyValue bool `yaml:"allowEmptyValue,omitempty" json:"allowEmptyValue,omitempty"`
	// Items describes array elements when Type is TypeArray.
	Items *PrimitiveItems[ParamKind] `yaml:"items,omitempty" json:"items,omitempty"`
	// CollectionFormat selects the array serialization token.
	CollectionFormat CollectionFormat `yaml:"collectionFormat,omitempty" json:"collectionFormat,omitempty"`
}

// ItemsDescriptor returns the primitive item descriptor, implementing
// ItemsHolder for the parameter dialect.
func (p *ParamOtherSchema) ItemsDescriptor() *PrimitiveItems[ParamKind] {
	return p.Items
}

// SetItemsDescriptor replaces the primitive item descriptor, implementing
// ItemsHolder for the parameter dialect.
func (p *ParamOtherSchema) SetItemsDescriptor(items *PrimitiveItems[ParamKind]) {
	p.Items = items
}

// Header represents a response header
// Reference: https://spec.openapis.org/oas/v2.0.html#header-object
type Header struct {
	SchemaCommon[HeaderKind] `yaml:",inline"`

	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Items describes array elements when Type is TypeArray.
	Items *PrimitiveItems[HeaderKind] `yaml:"items,omitempty" json:"items,omitempty"`
	// CollectionFormat selects the array serialization token. Multi is not
	// legal for headers.
	CollectionFormat CollectionFormat `yaml:"collectionFormat,omitempty" json:"collectionFormat,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// ItemsDescriptor returns the primitive item descriptor, implementing
// ItemsHolder for the header dialect.
func (h *Header) ItemsDescriptor() *PrimitiveItems[HeaderKind] {
	return h.Items
}

// SetItemsDescriptor replaces the primitive item descriptor, implementing
// ItemsHolder for the header dialect.
func (h *Header) SetItemsDescriptor(items *PrimitiveItems[HeaderKind]) {
	h.Items = items
}

// mergeParameters applies the override rule governing the two parameter
// lists visible from an operation: an operation-level parameter with the
// same (name, in) pair as a path-level one replaces it, never removes it.
// Order is path-level first, then operation-level additions.
func mergeParameters(pathLevel, opLevel []*Parameter) []*Parameter {
	merged := make([]*Parameter, 0, len(pathLevel)+len(opLevel))
	overridden := func(p *Parameter) *Parameter {
		for _, op := range opLevel {
			if op.Name == p.Name && op.In == p.In {
				return op
			}
		}
		return nil
	}
	seen := make(map[[2]string]bool, len(pathLevel))
	for _, p := range pathLevel {
		if o := overridden(p); o != nil {
			merged = append(merged, o)
			seen[[2]string{o.Name, string(o.In)}] = true
			continue
		}
		merged = append(merged, p)
		seen[[2]string{p.Name, string(p.In)}] = true
	}
	for _, p := range opLevel {
		if !seen[[2]string{p.Name, string(p.In)}] {
			merged = append(merged, p)
		}
	}
	return merged
}
