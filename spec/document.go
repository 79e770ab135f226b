package spec

// SwaggerVersion is the only specification version this model represents.
const SwaggerVersion = "2.0"

// Document is the root of a Swagger 2.0 specification. It owns every entity
// beneath it, including the three reusable tables that reference values
// resolve against.
// Reference: https://spec.openapis.org/oas/v2.0.html#openapi-object
type Document struct {
	Swagger  string   `yaml:"swagger" json:"swagger"` // Required: "2.0"
	Info     *Info    `yaml:"info" json:"info"`       // Required
	Host     string   `yaml:"host,omitempty" json:"host,omitempty"`
	BasePath string   `yaml:"basePath,omitempty" json:"basePath,omitempty"`
	Schemes  []string `yaml:"schemes,omitempty" json:"schemes,omitempty"` // e.g., ["http", "https"]
	Consumes []string `yaml:"consumes,omitempty" json:"consumes,omitempty"`
	Produces []string `yaml:"produces,omitempty" json:"produces,omitempty"`
	Paths    Paths    `yaml:"paths" json:"paths"` // Required

	// Definitions, Parameters, and Responses are the reusable tables that
	// own the values reference pointers resolve to.
	Definitions map[string]*Schema    `yaml:"definitions,omitempty" json:"definitions,omitempty"`
	Parameters  map[string]*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Responses   map[string]*Response  `yaml:"responses,omitempty" json:"responses,omitempty"`

	SecurityDefinitions map[string]*SecurityScheme `yaml:"securityDefinitions,omitempty" json:"securityDefinitions,omitempty"`
	Security            []SecurityRequirement      `yaml:"security,omitempty" json:"security,omitempty"`
	Tags                []*Tag                     `yaml:"tags,omitempty" json:"tags,omitempty"`
	ExternalDocs        *ExternalDocs              `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// NewDocument returns a Document with the fixed version string and empty
// paths, ready to accumulate entities.
func NewDocument() *Document {
	return &Document{
		Swagger: SwaggerVersion,
		Paths:   make(Paths),
	}
}

// ResolveSchema resolves r against this document's definitions table.
func (d *Document) ResolveSchema(r *OrRef[Schema]) (*Schema, error) {
	return r.Resolve(d.Definitions, "definitions")
}

// ResolveResponse resolves r against this document's reusable responses
// table.
func (d *Document) ResolveResponse(r *OrRef[Response]) (*Response, error) {
	return r.Resolve(d.Responses, "responses")
}

// ResolveParameter resolves r against this document's reusable parameters
// table.
func (d *Document) ResolveParameter(r *OrRef[Parameter]) (*Parameter, error) {
	return r.Resolve(d.Parameters, "parameters")
}

// SchemaRefPrefix returns the JSON reference prefix for schemas.
func (d *Document) SchemaRefPrefix() string {
	return DefinitionsRefPrefix
}

// Path returns the path item registered under path, or nil.
func (d *Document) Path(path string) *PathItem {
	return d.Paths[path]
}

// EnsurePath returns the path item registered under path, allocating both
// the paths map and the item when absent.
func (d *Document) EnsurePath(path string) *PathItem {
	if d.Paths == nil {
		d.Paths = make(Paths)
	}
	if d.Paths[path] == nil {
		d.Paths[path] = &PathItem{}
	}
	return d.Paths[path]
}
