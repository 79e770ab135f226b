package spec

// Deep copies implement the value-replacement contract: entities mutate in
// place for performance, but two holders of the "same" document never
// observe each other's edits if each works on its own DeepCopy. Copies
// preserve nil-versus-empty on every slice and map, because absence and
// explicit emptiness are distinct states (operation consume lists, security
// requirement lists).

// deepCopyJSONValue recursively deep copies any JSON-compatible value.
// This handles Default, Example, and other fields that can hold arbitrary
// JSON values.
func deepCopyJSONValue(v any) any {
	if v == nil {
		return nil
	}
	switch t := v.(type) {
	case string, bool, float64, int, int64, float32, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		return t
	case []any:
		cp := make([]any, len(t))
		for i, item := range t {
			cp[i] = deepCopyJSONValue(item)
		}
		return cp
	case map[string]any:
		cp := make(map[string]any, len(t))
		for k, item := range t {
			cp[k] = deepCopyJSONValue(item)
		}
		return cp
	default:
		// Unknown type, likely custom extension payloads. Return as-is.
		return v
	}
}

// deepCopyExtensions deep copies a map[string]any containing x-* extensions.
func deepCopyExtensions(v map[string]any) map[string]any {
	if v == nil {
		return nil
	}
	cp := make(map[string]any, len(v))
	for k, item := range v {
		cp[k] = deepCopyJSONValue(item)
	}
	return cp
}

func deepCopyStringSlice(v []string) []string {
	if v == nil {
		return nil
	}
	cp := make([]string, len(v))
	copy(cp, v)
	return cp
}

func deepCopyEnumSlice(v []any) []any {
	if v == nil {
		return nil
	}
	cp := make([]any, len(v))
	for i, item := range v {
		cp[i] = deepCopyJSONValue(item)
	}
	return cp
}

func copyFloatPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}

func copyIntPtr(v *int) *int {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}

// deepCopyCommon copies a shared attribute block of any dialect.
func deepCopyCommon[K Kind](c SchemaCommon[K]) SchemaCommon[K] {
	cp := c
	cp.Default = deepCopyJSONValue(c.Default)
	cp.Maximum = copyFloatPtr(c.Maximum)
	cp.Minimum = copyFloatPtr(c.Minimum)
	cp.MaxLength = copyIntPtr(c.MaxLength)
	cp.MinLength = copyIntPtr(c.MinLength)
	cp.MaxItems = copyIntPtr(c.MaxItems)
	cp.MinItems = copyIntPtr(c.MinItems)
	cp.Enum = deepCopyEnumSlice(c.Enum)
	cp.MultipleOf = copyFloatPtr(c.MultipleOf)
	return cp
}

// DeepCopy returns a deep copy of the document and everything it owns.
func (d *Document) DeepCopy() *Document {
	if d == nil {
		return nil
	}
	cp := *d
	cp.Info = d.Info.DeepCopy()
	cp.Schemes = deepCopyStringSlice(d.Schemes)
	cp.Consumes = deepCopyStringSlice(d.Consumes)
	cp.Produces = deepCopyStringSlice(d.Produces)
	if d.Paths != nil {
		cp.Paths = make(Paths, len(d.Paths))
		for k, item := range d.Paths {
			cp.Paths[k] = item.DeepCopy()
		}
	}
	if d.Definitions != nil {
		cp.Definitions = make(map[string]*Schema, len(d.Definitions))
		for k, s := range d.Definitions {
			cp.Definitions[k] = s.DeepCopy()
		}
	}
	if d.Parameters != nil {
		cp.Parameters = make(map[string]*Parameter, len(d.Parameters))
		for k, p := range d.Parameters {
			cp.Parameters[k] = p.DeepCopy()
		}
	}
	if d.Responses != nil {
		cp.Responses = make(map[string]*Response, len(d.Responses))
		for k, r := range d.Responses {
			cp.Responses[k] = r.DeepCopy()
		}
	}
	if d.SecurityDefinitions != nil {
		cp.SecurityDefinitions = make(map[string]*SecurityScheme, len(d.SecurityDefinitions))
		for k, s := range d.SecurityDefinitions {
			cp.SecurityDefinitions[k] = s.DeepCopy()
		}
	}
	cp.Security = deepCopySecurity(d.Security)
	if d.Tags != nil {
		cp.Tags = make([]*Tag, len(d.Tags))
		for i, t := range d.Tags {
			cp.Tags[i] = t.DeepCopy()
		}
	}
	cp.ExternalDocs = d.ExternalDocs.DeepCopy()
	cp.Extra = deepCopyExtensions(d.Extra)
	return &cp
}

// DeepCopy returns a deep copy of the info block.
func (i *Info) DeepCopy() *Info {
	if i == nil {
		return nil
	}
	cp := *i
	if i.Contact != nil {
		contact := *i.Contact
		contact.Extra = deepCopyExtensions(i.Contact.Extra)
		cp.Contact = &contact
	}
	if i.License != nil {
		license := *i.License
		license.Extra = deepCopyExtensions(i.License.Extra)
		cp.License = &license
	}
	cp.Extra = deepCopyExtensions(i.Extra)
	return &cp
}

// DeepCopy returns a deep copy of the external documentation reference.
func (e *ExternalDocs) DeepCopy() *ExternalDocs {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Extra = deepCopyExtensions(e.Extra)
	return &cp
}

// DeepCopy returns a deep copy of the tag.
func (t *Tag) DeepCopy() *Tag {
	if t == nil {
		return nil
	}
	cp := *t
	cp.ExternalDocs = t.ExternalDocs.DeepCopy()
	cp.Extra = deepCopyExtensions(t.Extra)
	return &cp
}

// DeepCopy returns a deep copy of the path item, its operations, and its
// shared parameter list.
func (pi *PathItem) DeepCopy() *PathItem {
	if pi == nil {
		return nil
	}
	cp := *pi
	cp.Get = pi.Get.DeepCopy()
	cp.Put = pi.Put.DeepCopy()
	cp.Post = pi.Post.DeepCopy()
	cp.Delete = pi.Delete.DeepCopy()
	cp.Options = pi.Options.DeepCopy()
	cp.Head = pi.Head.DeepCopy()
	cp.Patch = pi.Patch.DeepCopy()
	cp.Parameters = deepCopyParameterList(pi.Parameters)
	cp.Extra = deepCopyExtensions(pi.Extra)
	return &cp
}

// DeepCopy returns a deep copy of the operation. Nil-versus-empty is
// preserved on the Consumes, Produces, Schemes, and Security lists; the
// inherit/clear distinction depends on it.
func (op *Operation) DeepCopy() *Operation {
	if op == nil {
		return nil
	}
	cp := *op
	cp.Tags = deepCopyStringSlice(op.Tags)
	cp.ExternalDocs = op.ExternalDocs.DeepCopy()
	cp.Consumes = deepCopyStringSlice(op.Consumes)
	cp.Produces = deepCopyStringSlice(op.Produces)
	cp.Parameters = deepCopyParameterList(op.Parameters)
	cp.Responses = op.Responses.DeepCopy()
	cp.Schemes = deepCopyStringSlice(op.Schemes)
	cp.Security = deepCopySecurity(op.Security)
	cp.Extra = deepCopyExtensions(op.Extra)
	return &cp
}

func deepCopyParameterList(list []*Parameter) []*Parameter {
	if list == nil {
		return nil
	}
	cp := make([]*Parameter, len(list))
	for i, p := range list {
		cp[i] = p.DeepCopy()
	}
	return cp
}

func deepCopySecurity(list []SecurityRequirement) []SecurityRequirement {
	if list == nil {
		return nil
	}
	cp := make([]SecurityRequirement, len(list))
	for i, req := range list {
		if req == nil {
			continue
		}
		r := make(SecurityRequirement, len(req))
		for name, scopes := range req {
			r[name] = deepCopyStringSlice(scopes)
		}
		cp[i] = r
	}
	return cp
}

// DeepCopy returns a deep copy of the parameter and whichever schema case it
// carries.
func (p *Parameter) DeepCopy() *Parameter {
	if p == nil {
		return nil
	}
	cp := *p
	if body, ok := p.Schema.Body(); ok {
		cp.Schema = BodySchema(body.DeepCopy())
	}
	if other, ok := p.Schema.Other(); ok {
		cp.Schema = OtherSchema(other.DeepCopy())
	}
	cp.Extra = deepCopyExtensions(p.Extra)
	return &cp
}

// DeepCopy returns a deep copy of the non-body schema dialect.
func (p *ParamOtherSchema) DeepCopy() *ParamOtherSchema {
	if p == nil {
		return nil
	}
	cp := *p
	cp.SchemaCommon = deepCopyCommon(p.SchemaCommon)
	cp.Items = p.Items.DeepCopy()
	return &cp
}

// DeepCopy returns a deep copy of the descriptor and its nested descriptors.
func (p *PrimitiveItems[K]) DeepCopy() *PrimitiveItems[K] {
	if p == nil {
		return nil
	}
	cp := *p
	cp.SchemaCommon = deepCopyCommon(p.SchemaCommon)
	cp.Items = p.Items.DeepCopy()
	return &cp
}

// DeepCopy returns a deep copy of the header.
func (h *Header) DeepCopy() *Header {
	if h == nil {
		return nil
	}
	cp := *h
	cp.SchemaCommon = deepCopyCommon(h.SchemaCommon)
	cp.Items = h.Items.DeepCopy()
	cp.Extra = deepCopyExtensions(h.Extra)
	return &cp
}

// DeepCopy returns a deep copy of the schema and every nested schema.
func (s *Schema) DeepCopy() *Schema {
	if s == nil {
		return nil
	}
	cp := *s
	cp.SchemaCommon = deepCopyCommon(s.SchemaCommon)
	cp.Required = deepCopyStringSlice(s.Required)
	cp.Items = s.Items.DeepCopy()
	cp.MaxProperties = copyIntPtr(s.MaxProperties)
	cp.MinProperties = copyIntPtr(s.MinProperties)
	if s.Properties != nil {
		cp.Properties = make(map[string]*OrRef[Schema], len(s.Properties))
		for k, prop := range s.Properties {
			cp.Properties[k] = prop.DeepCopy()
		}
	}
	cp.AdditionalProperties = s.AdditionalProperties.DeepCopy()
	if s.AllOf != nil {
		cp.AllOf = make([]*OrRef[Schema], len(s.AllOf))
		for i, sub := range s.AllOf {
			cp.AllOf[i] = sub.DeepCopy()
		}
	}
	if s.XML != nil {
		xml := *s.XML
		xml.Extra = deepCopyExtensions(s.XML.Extra)
		cp.XML = &xml
	}
	cp.ExternalDocs = s.ExternalDocs.DeepCopy()
	cp.Example = deepCopyJSONValue(s.Example)
	cp.Extra = deepCopyExtensions(s.Extra)
	return &cp
}

// DeepCopy returns a deep copy of the item descriptor, preserving which
// case is populated.
func (si *SchemaItems) DeepCopy() *SchemaItems {
	if si == nil {
		return nil
	}
	cp := &SchemaItems{single: si.single.DeepCopy()}
	if si.tuple != nil {
		cp.tuple = make([]*OrRef[Schema], len(si.tuple))
		for i, s := range si.tuple {
			cp.tuple[i] = s.DeepCopy()
		}
	}
	return cp
}

// DeepCopy returns a deep copy of the collection.
func (r *Responses) DeepCopy() *Responses {
	if r == nil {
		return nil
	}
	cp := &Responses{Default: r.Default.DeepCopy()}
	if r.Codes != nil {
		cp.Codes = make(map[StatusCode]*OrRef[Response], len(r.Codes))
		for code, resp := range r.Codes {
			cp.Codes[code] = resp.DeepCopy()
		}
	}
	cp.Extra = deepCopyExtensions(r.Extra)
	return cp
}

// DeepCopy returns a deep copy of the response.
func (r *Response) DeepCopy() *Response {
	if r == nil {
		return nil
	}
	cp := *r
	cp.Schema = r.Schema.DeepCopy()
	if r.Headers != nil {
		cp.Headers = make(map[string]*Header, len(r.Headers))
		for k, h := range r.Headers {
			cp.Headers[k] = h.DeepCopy()
		}
	}
	if r.Examples != nil {
		cp.Examples = make(map[string]any, len(r.Examples))
		for k, v := range r.Examples {
			cp.Examples[k] = deepCopyJSONValue(v)
		}
	}
	cp.Extra = deepCopyExtensions(r.Extra)
	return &cp
}

// DeepCopy returns a deep copy of the scheme, preserving the variant.
func (s *SecurityScheme) DeepCopy() *SecurityScheme {
	if s == nil {
		return nil
	}
	cp := *s
	if s.apiKey != nil {
		key := *s.apiKey
		cp.apiKey = &key
	}
	if s.oauth2 != nil {
		flow := *s.oauth2
		if s.oauth2.Scopes != nil {
			flow.Scopes = make(map[string]string, len(s.oauth2.Scopes))
			for k, v := range s.oauth2.Scopes {
				flow.Scopes[k] = v
			}
		}
		cp.oauth2 = &flow
	}
	cp.Extra = deepCopyExtensions(s.Extra)
	return &cp
}

// DeepCopy returns a deep copy of the reference-or-inline value, preserving
// which case is populated. Inline payloads of the catalog types are copied
// deeply; unknown payloads are copied shallowly.
func (r *OrRef[T]) DeepCopy() *OrRef[T] {
	if r == nil {
		return nil
	}
	cp := &OrRef[T]{}
	if r.ref != nil {
		ref := *r.ref
		cp.ref = &ref
	}
	if r.value != nil {
		switch v := any(r.value).(type) {
		case *Schema:
			cp.value = any(v.DeepCopy()).(*T)
		case *Response:
			cp.value = any(v.DeepCopy()).(*T)
		case *Parameter:
			cp.value = any(v.DeepCopy()).(*T)
		default:
			val := *r.value
			cp.value = &val
		}
	}
	return cp
}
