package spec

import (
	"bytes"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/swagspec/swagspec/internal/httpwire"
)

// The core does not implement a serializer; it implements the contract one
// needs (see the package doc). Most entities serialize through plain struct
// tags. Five shapes cannot: reference-or-inline values ($ref object versus
// inline structure), Responses (the status map inlines next to "default"),
// Operation (a cleared override list must encode as [], which omitempty
// would drop), Parameter (the body/other sum flattens into the parameter
// object), and SecurityScheme (the variant flattens behind a "type" tag).
// Their hooks live here, for both JSON and YAML. Unknown location, type, and
// collection-format tokens are a decode error, never a default.

// yamlMarshalValue marshals a value to YAML bytes for re-parsing
func yamlMarshalValue(value any) ([]byte, error) {
	return yaml.Marshal(value)
}

// yamlUnmarshalValue unmarshals YAML bytes into a target
func yamlUnmarshalValue(data []byte, target any) error {
	return yaml.Unmarshal(data, target)
}

// ----- OrRef[T] -----

type refEnvelope struct {
	Ref string `yaml:"$ref" json:"$ref"`
}

// MarshalJSON emits the reference case as a single-field $ref object and the
// inline case as the value itself.
func (r *OrRef[T]) MarshalJSON() ([]byte, error) {
	if ref, ok := r.Ref(); ok {
		return json.Marshal(refEnvelope{Ref: ref.Pointer})
	}
	if v, ok := r.Value(); ok {
		return json.Marshal(v)
	}
	return []byte("null"), nil
}

// UnmarshalJSON reads a $ref object into the reference case and anything
// else into the inline case.
func (r *OrRef[T]) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		var env refEnvelope
		if err := json.Unmarshal(data, &env); err == nil && env.Ref != "" {
			r.ref = &Ref{Pointer: env.Ref}
			r.value = nil
			return nil
		}
	}
	v := new(T)
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}
	r.value = v
	r.ref = nil
	return nil
}

// MarshalYAML mirrors MarshalJSON for YAML encoders.
func (r *OrRef[T]) MarshalYAML() (any, error) {
	if ref, ok := r.Ref(); ok {
		return refEnvelope{Ref: ref.Pointer}, nil
	}
	if v, ok := r.Value(); ok {
		return v, nil
	}
	return nil, nil
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML decoders.
func (r *OrRef[T]) UnmarshalYAML(unmarshal func(any) error) error {
	var env refEnvelope
	if err := unmarshal(&env); err == nil && env.Ref != "" {
		r.ref = &Ref{Pointer: env.Ref}
		r.value = nil
		return nil
	}
	v := new(T)
	if err := unmarshal(v); err != nil {
		return err
	}
	r.value = v
	r.ref = nil
	return nil
}

// ----- SchemaItems -----

// MarshalJSON emits the single case as an object and the tuple case as an
// array.
func (si *SchemaItems) MarshalJSON() ([]byte, error) {
	if single, ok := si.Single(); ok {
		return json.Marshal(single)
	}
	if tuple, ok := si.Tuple(); ok {
		return json.Marshal(tuple)
	}
	return []byte("null"), nil
}

// UnmarshalJSON reads an array into the tuple case and an object into the
// single case.
func (si *SchemaItems) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		var tuple []*OrRef[Schema]
		if err := json.Unmarshal(data, &tuple); err != nil {
			return err
		}
		si.tuple = tuple
		si.single = nil
		return nil
	}
	var single OrRef[Schema]
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	si.single = &single
	si.tuple = nil
	return nil
}

// MarshalYAML mirrors MarshalJSON for YAML encoders.
func (si *SchemaItems) MarshalYAML() (any, error) {
	if single, ok := si.Single(); ok {
		return single, nil
	}
	if tuple, ok := si.Tuple(); ok {
		return tuple, nil
	}
	return nil, nil
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML decoders.
func (si *SchemaItems) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	data, err := yamlMarshalValue(raw)
	if err != nil {
		return err
	}
	if _, isSeq := raw.([]any); isSeq {
		var tuple []*OrRef[Schema]
		if err := yamlUnmarshalValue(data, &tuple); err != nil {
			return err
		}
		si.tuple = tuple
		si.single = nil
		return nil
	}
	var single OrRef[Schema]
	if err := yamlUnmarshalValue(data, &single); err != nil {
		return err
	}
	si.single = &single
	si.tuple = nil
	return nil
}

// ----- Responses -----

// MarshalJSON inlines the status-code map next to the default response and
// any x-* extensions.
func (r *Responses) MarshalJSON() ([]byte, error) {
	wire := make(map[string]any, len(r.Codes)+len(r.Extra)+1)
	if r.Default != nil {
		wire["default"] = r.Default
	}
	for code, resp := range r.Codes {
		wire[string(code)] = resp
	}
	for k, v := range r.Extra {
		wire[k] = v
	}
	return json.Marshal(wire)
}

// UnmarshalJSON splits the default response and extensions from the
// status-code map. Keys that are neither "default", an x-* extension, nor a
// plausible status code are a decode error.
func (r *Responses) UnmarshalJSON(data []byte) error {
	var wire map[string]json.RawMessage
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	r.Default = nil
	r.Extra = nil
	r.Codes = make(map[StatusCode]*OrRef[Response], len(wire))
	for key, raw := range wire {
		if !httpwire.ValidateStatusCode(key) {
			return fmt.Errorf("invalid status code %q in responses: must be a three-digit HTTP status code, \"default\", or an x-* extension", key)
		}
		if strings.HasPrefix(key, "x-") {
			var v any
			if err := json.Unmarshal(raw, &v); err != nil {
				return fmt.Errorf("extension %s: %w", key, err)
			}
			if r.Extra == nil {
				r.Extra = make(map[string]any)
			}
			r.Extra[key] = v
			continue
		}
		var resp OrRef[Response]
		if err := json.Unmarshal(raw, &resp); err != nil {
			return fmt.Errorf("response %s: %w", key, err)
		}
		if key == "default" {
			r.Default = &resp
			continue
		}
		r.Codes[StatusCode(key)] = &resp
	}
	return nil
}

// MarshalYAML mirrors MarshalJSON for YAML encoders.
func (r *Responses) MarshalYAML() (any, error) {
	wire := make(map[string]any, len(r.Codes)+len(r.Extra)+1)
	if r.Default != nil {
		wire["default"] = r.Default
	}
	for code, resp := range r.Codes {
		wire[string(code)] = resp
	}
	for k, v := range r.Extra {
		wire[k] = v
	}
	return wire, nil
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML decoders.
func (r *Responses) UnmarshalYAML(unmarshal func(any) error) error {
	var raw map[string]any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	r.Default = nil
	r.Extra = nil
	r.Codes = make(map[StatusCode]*OrRef[Response], len(raw))
	for key, value := range raw {
		if !httpwire.ValidateStatusCode(key) {
			return fmt.Errorf("invalid status code %q in responses: must be a three-digit HTTP status code, \"default\", or an x-* extension", key)
		}
		if strings.HasPrefix(key, "x-") {
			if r.Extra == nil {
				r.Extra = make(map[string]any)
			}
			r.Extra[key] = value
			continue
		}
		data, err := yamlMarshalValue(value)
		if err != nil {
			return fmt.Errorf("response %s: %w", key, err)
		}
		var resp OrRef[Response]
		if err := yamlUnmarshalValue(data, &resp); err != nil {
			return fmt.Errorf("response %s: %w", key, err)
		}
		if key == "default" {
			r.Default = &resp
			continue
		}
		r.Codes[StatusCode(key)] = &resp
	}
	return nil
}

// ----- Operation -----

// operationWire strips Operation's hook methods so the struct tags still
// drive the bulk of the encoding.
type operationWire Operation

// clearedOverrides returns the wire entries for override lists in the
// explicit-clear state (non-nil and empty). omitempty drops them from the
// tagged encoding, so the hooks splice them back in as [].
func (op *Operation) clearedOverrides() map[string]any {
	var cleared map[string]any
	set := func(key string) {
		if cleared == nil {
			cleared = make(map[string]any, 4)
		}
		cleared[key] = []any{}
	}
	if op.Consumes != nil && len(op.Consumes) == 0 {
		set("consumes")
	}
	if op.Produces != nil && len(op.Produces) == 0 {
		set("produces")
	}
	if op.Schemes != nil && len(op.Schemes) == 0 {
		set("schemes")
	}
	if op.Security != nil && len(op.Security) == 0 {
		set("security")
	}
	return cleared
}

// MarshalJSON keeps the two inheritance states of the override lists apart:
// nil is omitted, a cleared list encodes as []. It also appends any x-*
// extensions.
func (op *Operation) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal((*operationWire)(op))
	if err != nil {
		return nil, err
	}
	cleared := op.clearedOverrides()
	if len(cleared) == 0 && len(op.Extra) == 0 {
		return data, nil
	}
	var merged map[string]any
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range cleared {
		merged[k] = v
	}
	for k, v := range op.Extra {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// UnmarshalJSON decodes through the tagged shape, which already maps [] to a
// non-nil empty list and an absent key to nil, and splits off the x-*
// extensions.
func (op *Operation) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, (*operationWire)(op)); err != nil {
		return err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	op.Extra = extractExtensions(raw)
	return nil
}

// MarshalYAML mirrors MarshalJSON for YAML encoders. The inline Extra field
// already rides along in the tagged encoding.
func (op *Operation) MarshalYAML() (any, error) {
	cleared := op.clearedOverrides()
	if len(cleared) == 0 {
		return (*operationWire)(op), nil
	}
	data, err := yamlMarshalValue((*operationWire)(op))
	if err != nil {
		return nil, err
	}
	var merged map[string]any
	if err := yamlUnmarshalValue(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range cleared {
		merged[k] = v
	}
	return merged, nil
}

// UnmarshalYAML decodes through the tagged shape for the same nil-versus-[]
// reason as UnmarshalJSON.
func (op *Operation) UnmarshalYAML(unmarshal func(any) error) error {
	return unmarshal((*operationWire)(op))
}

// ----- Parameter -----

// parameterWire is the flat Swagger 2.0 shape of a non-body parameter.
type parameterWire struct {
	Name        string `yaml:"name" json:"name"`
	In          string `yaml:"in" json:"in"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`

	Schema *OrRef[Schema] `yaml:"schema,omitempty" json:"schema,omitempty"`

	ParamOtherSchema `yaml:",inline"`
}

// toWire flattens the body/other sum into the wire shape.
func (p *Parameter) toWire() parameterWire {
	wire := parameterWire{
		Name:        p.Name,
		In:          string(p.In),
		Description: p.Description,
		Required:    p.Required,
	}
	if body, ok := p.Schema.Body(); ok {
		wire.Schema = body
	}
	if other, ok := p.Schema.Other(); ok {
		wire.ParamOtherSchema = *other
	}
	return wire
}

// fromWire rebuilds the sum from the wire shape, rejecting unknown location
// and collection-format tokens.
func (p *Parameter) fromWire(wire parameterWire, extra map[string]any) error {
	in, err := ParseLocation(wire.In)
	if err != nil {
		return err
	}
	p.Name = wire.Name
	p.In = in
	p.Description = wire.Description
	p.Required = wire.Required
	p.Extra = extra
	if in == InBody {
		if wire.Schema == nil {
			return fmt.Errorf("parameter %q: in=body requires a schema", wire.Name)
		}
		p.Schema = BodySchema(wire.Schema)
		return nil
	}
	other := wire.ParamOtherSchema
	if other.CollectionFormat != "" {
		if _, err := ParseCollectionFormat(string(other.CollectionFormat)); err != nil {
			return err
		}
	}
	for it := other.Items; it != nil; it = it.Items {
		if it.CollectionFormat != "" {
			if _, err := ParseCollectionFormat(string(it.CollectionFormat)); err != nil {
				return err
			}
		}
	}
	p.Schema = OtherSchema(&other)
	return nil
}

// extractExtensions pulls the x-* keys out of a raw decoded map.
func extractExtensions(raw map[string]any) map[string]any {
	var extra map[string]any
	for key, value := range raw {
		if !strings.HasPrefix(key, "x-") {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[key] = value
	}
	return extra
}

// MarshalJSON flattens the parameter into its wire shape, appending any x-*
// extensions.
func (p *Parameter) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(p.toWire())
	if err != nil {
		return nil, err
	}
	if len(p.Extra) == 0 {
		return data, nil
	}
	var merged map[string]any
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range p.Extra {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// UnmarshalJSON rebuilds the body/other sum from the wire shape.
func (p *Parameter) UnmarshalJSON(data []byte) error {
	var wire parameterWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return p.fromWire(wire, extractExtensions(raw))
}

// MarshalYAML mirrors MarshalJSON for YAML encoders.
func (p *Parameter) MarshalYAML() (any, error) {
	wire := p.toWire()
	if len(p.Extra) == 0 {
		return wire, nil
	}
	data, err := yamlMarshalValue(wire)
	if err != nil {
		return nil, err
	}
	var merged map[string]any
	if err := yamlUnmarshalValue(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range p.Extra {
		merged[k] = v
	}
	return merged, nil
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML decoders.
func (p *Parameter) UnmarshalYAML(unmarshal func(any) error) error {
	var wire parameterWire
	if err := unmarshal(&wire); err != nil {
		return err
	}
	var raw map[string]any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	return p.fromWire(wire, extractExtensions(raw))
}

// ----- SecurityScheme -----

// securitySchemeWire is the flat Swagger 2.0 shape of a security scheme.
type securitySchemeWire struct {
	Type        string `yaml:"type" json:"type"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Type: apiKey
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	In   string `yaml:"in,omitempty" json:"in,omitempty"`

	// Type: oauth2
	Flow             string            `yaml:"flow,omitempty" json:"flow,omitempty"`
	AuthorizationURL string            `yaml:"authorizationUrl,omitempty" json:"authorizationUrl,omitempty"`
	TokenURL         string            `yaml:"tokenUrl,omitempty" json:"tokenUrl,omitempty"`
	Scopes           map[string]string `yaml:"scopes,omitempty" json:"scopes,omitempty"`
}

func (s *SecurityScheme) toWire() securitySchemeWire {
	wire := securitySchemeWire{
		Type:        string(s.typ),
		Description: s.Description,
	}
	if key, ok := s.APIKey(); ok {
		wire.Name = key.Name
		wire.In = string(key.In)
	}
	if flow, ok := s.OAuth2(); ok {
		wire.Flow = string(flow.Flow)
		wire.AuthorizationURL = flow.AuthorizationURL
		wire.TokenURL = flow.TokenURL
		wire.Scopes = flow.Scopes
	}
	return wire
}

func (s *SecurityScheme) fromWire(wire securitySchemeWire, extra map[string]any) error {
	switch SecuritySchemeType(wire.Type) {
	case SecurityBasic:
		*s = *BasicAuth()
	case SecurityAPIKey:
		switch APIKeyLocation(wire.In) {
		case APIKeyInQuery, APIKeyInHeader:
		default:
			return fmt.Errorf("unknown apiKey location: %q", wire.In)
		}
		*s = *APIKeyAuth(wire.Name, APIKeyLocation(wire.In))
	case SecurityOAuth2:
		switch OAuth2FlowType(wire.Flow) {
		case OAuth2Implicit, OAuth2Password, OAuth2Application, OAuth2AccessCode:
		default:
			return fmt.Errorf("unknown oauth2 flow: %q", wire.Flow)
		}
		*s = *OAuth2Auth(&OAuth2Scheme{
			Flow:             OAuth2FlowType(wire.Flow),
			AuthorizationURL: wire.AuthorizationURL,
			TokenURL:         wire.TokenURL,
			Scopes:           wire.Scopes,
		})
	default:
		return fmt.Errorf("unknown security scheme type: %q", wire.Type)
	}
	s.Description = wire.Description
	s.Extra = extra
	return nil
}

// MarshalJSON flattens the variant behind its type tag.
func (s *SecurityScheme) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(s.toWire())
	if err != nil {
		return nil, err
	}
	if len(s.Extra) == 0 {
		return data, nil
	}
	var merged map[string]any
	if err := json.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range s.Extra {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// UnmarshalJSON rebuilds the variant from its type tag, rejecting unknown
// type, location, and flow tokens.
func (s *SecurityScheme) UnmarshalJSON(data []byte) error {
	var wire securitySchemeWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return s.fromWire(wire, extractExtensions(raw))
}

// MarshalYAML mirrors MarshalJSON for YAML encoders.
func (s *SecurityScheme) MarshalYAML() (any, error) {
	wire := s.toWire()
	if len(s.Extra) == 0 {
		return wire, nil
	}
	data, err := yamlMarshalValue(wire)
	if err != nil {
		return nil, err
	}
	var merged map[string]any
	if err := yamlUnmarshalValue(data, &merged); err != nil {
		return nil, err
	}
	for k, v := range s.Extra {
		merged[k] = v
	}
	return merged, nil
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML decoders.
func (s *SecurityScheme) UnmarshalYAML(unmarshal func(any) error) error {
	var wire securitySchemeWire
	if err := unmarshal(&wire); err != nil {
		return err
	}
	var raw map[string]any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	return s.fromWire(wire, extractExtensions(raw))
}
