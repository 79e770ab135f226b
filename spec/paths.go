package spec

import (
	"github.com/swagspec/swagspec/specerrors"
)

// Paths holds the relative paths to the individual endpoints
type Paths map[string]*PathItem

// PathItem describes the operations available on a single path
// Reference: https://spec.openapis.org/oas/v2.0.html#path-item-object
type PathItem struct {
	Get     *Operation `yaml:"get,omitempty" json:"get,omitempty"`
	Put     *Operation `yaml:"put,omitempty" json:"put,omitempty"`
	Post    *Operation `yaml:"post,omitempty" json:"post,omitempty"`
	Delete  *Operation `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options *Operation `yaml:"options,omitempty" json:"options,omitempty"`
	Head    *Operation `yaml:"head,omitempty" json:"head,omitempty"`
	Patch   *Operation `yaml:"patch,omitempty" json:"patch,omitempty"`
	// Parameters are shared by all operations on this path. The list never
	// contains two parameters with the same (name, in) pair; use
	// AddParameter to preserve the invariant.
	Parameters []*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Operations returns a map of HTTP method name to the corresponding
// operation. Methods without an operation map to nil.
func (pi *PathItem) Operations() map[string]*Operation {
	return map[string]*Operation{
		"get":     pi.Get,
		"put":     pi.Put,
		"post":    pi.Post,
		"delete":  pi.Delete,
		"options": pi.Options,
		"head":    pi.Head,
		"patch":   pi.Patch,
	}
}

// Operation returns the operation for the given lowercase method name, or
// nil when the method is unknown or has no operation.
func (pi *PathItem) Operation(method string) *Operation {
	return pi.Operations()[method]
}

// SetOperation attaches op under the given lowercase method name. Unknown
// methods are ignored and reported with ok=false.
func (pi *PathItem) SetOperation(method string, op *Operation) bool {
	switch method {
	case "get":
		pi.Get = op
	case "put":
		pi.Put = op
	case "post":
		pi.Post = op
	case "delete":
		pi.Delete = op
	case "options":
		pi.Options = op
	case "head":
		pi.Head = op
	case "patch":
		pi.Patch = op
	default:
		return false
	}
	return true
}

// AddParameter appends p to the path-level parameter list after checking
// the structural invariants: the (name, in) pair must be unique within the
// list, and a path-location parameter must be required.
func (pi *PathItem) AddParameter(p *Parameter) error {
	if err := checkParameter(pi.Parameters, p, "path item"); err != nil {
		return err
	}
	pi.Parameters = append(pi.Parameters, p)
	return nil
}

// Operation describes a single API operation on a path
// Reference: https://spec.openapis.org/oas/v2.0.html#operation-object
type Operation struct {
	Tags         []string      `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary      string        `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description  string        `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	// OperationID is optional, but must be unique across the whole document
	// when present. Uniqueness is enforced at assembly time (see the builder
	// package), not by this aggregate.
	OperationID string `yaml:"operationId,omitempty" json:"operationId,omitempty"`

	// Consumes and Produces override the document-level media type lists.
	// A nil slice inherits the document list; a non-nil empty slice clears
	// it. The two states are distinct and both survive serialization.
	Consumes []string `yaml:"consumes,omitempty" json:"consumes,omitempty"`
	Produces []string `yaml:"produces,omitempty" json:"produces,omitempty"`

	// Parameters at the operation level override same-(name, in) path-level
	// parameters; see EffectiveParameters. Use AddParameter to preserve the
	// uniqueness invariant.
	Parameters []*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`

	Responses *Responses `yaml:"responses" json:"responses"`

	// Schemes overrides the document-level transfer protocol list, with the
	// same nil-versus-empty semantics as Consumes.
	Schemes    []string `yaml:"schemes,omitempty" json:"schemes,omitempty"`
	Deprecated bool     `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`

	// Security overrides the document-level requirement list. A nil slice
	// inherits; a non-nil empty slice removes document-level security for
	// this operation.
	Security []SecurityRequirement `yaml:"security,omitempty" json:"security,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// AddParameter appends p to the operation-level parameter list after
// checking the structural invariants: the (name, in) pair must be unique
// within this list, and a path-location parameter must be required. A pair
// that duplicates a path-level parameter is legal; it overrides that
// parameter in the merged view.
func (op *Operation) AddParameter(p *Parameter) error {
	scope := "operation"
	if op.OperationID != "" {
		scope = "operation " + op.OperationID
	}
	if err := checkParameter(op.Parameters, p, scope); err != nil {
		return err
	}
	op.Parameters = append(op.Parameters, p)
	return nil
}

// EffectiveParameters returns the parameter list visible to this operation
// when reached through item: path-level parameters first, with
// operation-level parameters overriding same-(name, in) entries and
// appending the rest. Neither input list is modified.
func (op *Operation) EffectiveParameters(item *PathItem) []*Parameter {
	var pathLevel []*Parameter
	if item != nil {
		pathLevel = item.Parameters
	}
	return mergeParameters(pathLevel, op.Parameters)
}

// EffectiveConsumes resolves the operation's consume list against doc:
// nil inherits the document list, an explicit empty list clears it.
func (op *Operation) EffectiveConsumes(doc *Document) []string {
	return resolveInherited(op.Consumes, doc.Consumes)
}

// EffectiveProduces resolves the operation's produce list against doc with
// the same tri-state rule as EffectiveConsumes.
func (op *Operation) EffectiveProduces(doc *Document) []string {
	return resolveInherited(op.Produces, doc.Produces)
}

// EffectiveSchemes resolves the operation's scheme list against doc with
// the same tri-state rule as EffectiveConsumes.
func (op *Operation) EffectiveSchemes(doc *Document) []string {
	return resolveInherited(op.Schemes, doc.Schemes)
}

// EffectiveSecurity resolves the operation's security requirements against
// doc: nil inherits the document list, an explicit empty list removes
// security for this operation.
func (op *Operation) EffectiveSecurity(doc *Document) []SecurityRequirement {
	if op.Security == nil {
		return doc.Security
	}
	return op.Security
}

// resolveInherited implements the absent/empty/set tri-state: a nil override
// inherits, a non-nil override (empty included) wins.
func resolveInherited(override, inherited []string) []string {
	if override == nil {
		return inherited
	}
	return override
}

// checkParameter enforces the invariants shared by both parameter lists.
func checkParameter(list []*Parameter, p *Parameter, scope string) error {
	if p.In == InPath && !p.Required {
		return &specerrors.RequiredFlagError{Name: p.Name}
	}
	for _, existing := range list {
		if existing.Name == p.Name && existing.In == p.In {
			return &specerrors.DuplicateParameterError{Name: p.Name, In: string(p.In), Scope: scope}
		}
	}
	return nil
}

// StatusCode is the opaque key of the per-status response collection. The
// adapter layer never validates the numeric range; status-code validity is a
// higher-layer concern (see internal/httpwire and the builder package).
type StatusCode string

// Responses is a container for the expected responses of an operation
type Responses struct {
	// Default is the response used for any status code not covered by Codes.
	Default *OrRef[Response] `yaml:"-" json:"-"`
	// Codes maps HTTP status codes to responses. Keys are unique; wire
	// hooks inline the map next to "default" (see wire.go).
	Codes map[StatusCode]*OrRef[Response] `yaml:"-" json:"-"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:"-" json:"-"`
}

// Response describes a single response from an API operation
// Reference: https://spec.openapis.org/oas/v2.0.html#response-object
type Response struct {
	Description string             `yaml:"description" json:"description"`
	Schema      *OrRef[Schema]       `yaml:"schema,omitempty" json:"schema,omitempty"`
	Headers     map[string]*Header `yaml:"headers,omitempty" json:"headers,omitempty"`
	Examples    map[string]any     `yaml:"examples,omitempty" json:"examples,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
