package builder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/swagspec/swagspec/internal/httpwire"
	"github.com/swagspec/swagspec/spec"
)

// Builder is the main entry point for constructing Swagger 2.0 documents.
// It maintains internal state for accumulated sections and definitions.
//
// Concurrency: Builder instances are not safe for concurrent use.
// Create separate Builder instances for concurrent operations.
type Builder struct {
	// Document sections
	info         *spec.Info
	host         string
	basePath     string
	schemes      []string
	consumes     []string
	produces     []string
	paths        spec.Paths
	tags         []*spec.Tag
	security     []spec.SecurityRequirement
	externalDocs *spec.ExternalDocs

	// Reusable definition tables
	definitions     map[string]*spec.Schema
	parameters      map[string]*spec.Parameter
	responses       map[string]*spec.Response
	securitySchemes map[string]*spec.SecurityScheme

	// Tracking
	operationIDs         map[string]bool              // Track used operation IDs for uniqueness
	operationIDLocations map[string]operationLocation // Track where each operationID was first defined
	errors               []error                      // Accumulated errors

	// Definition naming configuration
	namer       *definitionNamer
	configError error // Stores configuration errors (e.g., invalid templates)

	logger Logger
}

// New creates a new Builder instance.
//
// Options can be provided to customize definition naming and logging:
//
//	b := builder.New(
//	    builder.WithDefinitionNaming(builder.DefinitionNamingPascalCase),
//	)
//
// The builder does not perform structural validation. Call Validate on the
// built document to validate it.
//
// Example:
//
//	b := builder.New().
//		SetTitle("My API").
//		SetVersion("1.0.0")
//	doc, err := b.Build()
func New(opts ...BuilderOption) *Builder {
	cfg := defaultBuilderConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	namer := newDefinitionNamer()
	namer.strategy = cfg.namingStrategy
	namer.template = cfg.namingTemplate
	namer.fn = cfg.namingFunc

	return &Builder{
		paths:                make(spec.Paths),
		definitions:          make(map[string]*spec.Schema),
		parameters:           make(map[string]*spec.Parameter),
		responses:            make(map[string]*spec.Response),
		securitySchemes:      make(map[string]*spec.SecurityScheme),
		operationIDs:         make(map[string]bool),
		operationIDLocations: make(map[string]operationLocation),
		errors:               make([]error, 0),
		namer:                namer,
		configError:          cfg.templateError,
		logger:               cfg.logger,
	}
}

// NewWithInfo creates a Builder with pre-configured Info.
//
// Example:
//
//	info := &spec.Info{Title: "My API", Version: "1.0.0"}
//	b := builder.NewWithInfo(info)
func NewWithInfo(info *spec.Info) *Builder {
	b := New()
	b.info = info
	return b
}

// SetInfo sets the Info object for the document.
func (b *Builder) SetInfo(info *spec.Info) *Builder {
	b.info = info
	return b
}

// SetTitle sets the title in the Info object.
func (b *Builder) SetTitle(title string) *Builder {
	if b.info == nil {
		b.info = &spec.Info{}
	}
	b.info.Title = title
	return b
}

// SetVersion sets the version in the Info object.
// Note: This is the API version, not the Swagger specification version.
func (b *Builder) SetVersion(version string) *Builder {
	if b.info == nil {
		b.info = &spec.Info{}
	}
	b.info.Version = version
	return b
}

// SetDescription sets the description in the Info object.
func (b *Builder) SetDescription(desc string) *Builder {
	if b.info == nil {
		b.info = &spec.Info{}
	}
	b.info.Description = desc
	return b
}

// SetTermsOfService sets the terms of service URL in the Info object.
func (b *Builder) SetTermsOfService(url string) *Builder {
	if b.info == nil {
		b.info = &spec.Info{}
	}
	b.info.TermsOfService = url
	return b
}

// SetContact sets the contact information in the Info object.
func (b *Builder) SetContact(contact *spec.Contact) *Builder {
	if b.info == nil {
		b.info = &spec.Info{}
	}
	b.info.Contact = contact
	return b
}

// SetLicense sets the license information in the Info object.
func (b *Builder) SetLicense(license *spec.License) *Builder {
	if b.info == nil {
		b.info = &spec.Info{}
	}
	b.info.License = license
	return b
}

// SetHost sets the document host (name or name:port, no scheme or path).
func (b *Builder) SetHost(host string) *Builder {
	b.host = host
	return b
}

// SetBasePath sets the path prefix all operation paths are served under.
func (b *Builder) SetBasePath(basePath string) *Builder {
	b.basePath = basePath
	return b
}

// SetSchemes sets the document-level transfer protocols.
func (b *Builder) SetSchemes(schemes ...string) *Builder {
	b.schemes = schemes
	return b
}

// SetConsumes sets the document-level consumed media types. Operations
// inherit this list unless they carry their own. Each entry must be a valid
// media type or a type/* wildcard; malformed entries surface from Build.
func (b *Builder) SetConsumes(mimeTypes ...string) *Builder {
	b.checkMediaTypes("consumes", mimeTypes)
	b.consumes = mimeTypes
	return b
}

// SetProduces sets the document-level produced media types. Operations
// inherit this list unless they carry their own. Each entry must be a valid
// media type or a type/* wildcard; malformed entries surface from Build.
func (b *Builder) SetProduces(mimeTypes ...string) *Builder {
	b.checkMediaTypes("produces", mimeTypes)
	b.produces = mimeTypes
	return b
}

// checkMediaTypes records an error for every malformed media type token.
func (b *Builder) checkMediaTypes(field string, mimeTypes []string) {
	for _, mt := range mimeTypes {
		if !httpwire.IsValidMediaType(mt) {
			b.errors = append(b.errors, &BuilderError{
				Component: ComponentDocument,
				Field:     field,
				Message:   fmt.Sprintf("invalid media type %q", mt),
			})
		}
	}
}

// SetExternalDocs sets the external documentation for the document.
func (b *Builder) SetExternalDocs(externalDocs *spec.ExternalDocs) *Builder {
	b.externalDocs = externalDocs
	return b
}

// AddTag adds a tag declaration to the document.
func (b *Builder) AddTag(tag *spec.Tag) *Builder {
	b.tags = append(b.tags, tag)
	return b
}

// AddSecurityRequirement appends a document-level security requirement.
// Each named scheme must have a matching entry in securityDefinitions.
func (b *Builder) AddSecurityRequirement(req spec.SecurityRequirement) *Builder {
	b.security = append(b.security, req)
	return b
}

// AddDefinition registers a reusable schema under the given name, normalized
// by the configured naming strategy, and returns a $ref pointing at it.
// Registering the same name twice replaces the earlier schema.
func (b *Builder) AddDefinition(name string, schema *spec.Schema) *spec.OrRef[spec.Schema] {
	named := b.namer.name(name)
	if _, exists := b.definitions[named]; exists {
		b.logger.Warn("definition replaced", "name", named)
	}
	b.definitions[named] = schema
	return spec.SchemaRef(named)
}

// AddParameterDefinition registers a reusable parameter under the given name
// and returns a $ref pointing at it.
func (b *Builder) AddParameterDefinition(name string, param *spec.Parameter) *spec.OrRef[spec.Parameter] {
	if _, exists := b.parameters[name]; exists {
		b.logger.Warn("parameter definition replaced", "name", name)
	}
	b.parameters[name] = param
	return spec.ParameterRef(name)
}

// AddResponseDefinition registers a reusable response under the given name
// and returns a $ref pointing at it.
func (b *Builder) AddResponseDefinition(name string, resp *spec.Response) *spec.OrRef[spec.Response] {
	if _, exists := b.responses[name]; exists {
		b.logger.Warn("response definition replaced", "name", name)
	}
	b.responses[name] = resp
	return spec.ResponseRef(name)
}

// AddSecurityDefinition registers a security scheme under the given name.
// The name is what security requirements refer to.
func (b *Builder) AddSecurityDefinition(name string, scheme *spec.SecurityScheme) *Builder {
	if _, exists := b.securitySchemes[name]; exists {
		b.logger.Warn("security definition replaced", "name", name)
	}
	b.securitySchemes[name] = scheme
	return b
}

// Build assembles the accumulated sections into a Swagger 2.0 document.
// Returns an error when the builder configuration was invalid or any call
// in the chain recorded an error.
//
// The builder does not perform structural validation beyond its own
// bookkeeping. Call Validate on the returned document for that.
func (b *Builder) Build() (*spec.Document, error) {
	if b.configError != nil {
		return nil, fmt.Errorf("builder: configuration error: %w", b.configError)
	}

	if err := b.checkErrors(); err != nil {
		return nil, err
	}

	doc := spec.NewDocument()
	doc.Info = b.info
	doc.Host = b.host
	doc.BasePath = b.basePath
	doc.Schemes = b.schemes
	doc.Consumes = b.consumes
	doc.Produces = b.produces
	doc.Tags = b.tags
	doc.Security = b.security
	doc.ExternalDocs = b.externalDocs

	for path, item := range b.paths {
		doc.Paths[path] = item
	}

	if len(b.definitions) > 0 {
		doc.Definitions = b.definitions
	}
	if len(b.parameters) > 0 {
		doc.Parameters = b.parameters
	}
	if len(b.responses) > 0 {
		doc.Responses = b.responses
	}
	if len(b.securitySchemes) > 0 {
		doc.SecurityDefinitions = b.securitySchemes
	}

	return doc, nil
}

// checkErrors checks for accumulated errors during building.
//
// Returns a BuilderErrors collection if there are errors, which provides
// detailed locality information for each error including component type,
// HTTP method, path, and operationID context.
func (b *Builder) checkErrors() error {
	if len(b.errors) == 0 {
		return nil
	}

	builderErrs := make(BuilderErrors, 0, len(b.errors))
	for _, err := range b.errors {
		var be *BuilderError
		if errors.As(err, &be) {
			builderErrs = append(builderErrs, be)
		} else {
			// Wrap foreign errors (e.g., parameter list violations from the
			// spec package). Only Cause is set so the chain stays intact for
			// errors.Unwrap.
			builderErrs = append(builderErrs, &BuilderError{
				Cause: err,
			})
		}
	}
	return builderErrs
}

// MarshalYAML returns the document as YAML bytes.
func (b *Builder) MarshalYAML() ([]byte, error) {
	doc, err := b.Build()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

// MarshalJSON returns the document as JSON bytes.
func (b *Builder) MarshalJSON() ([]byte, error) {
	doc, err := b.Build()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}

// outputFileMode is the file permission mode for output files (owner read/write only)
const outputFileMode = 0600

// WriteFile writes the document to a file.
// The format is inferred from the file extension (.json for JSON, .yaml/.yml for YAML).
func (b *Builder) WriteFile(path string) error {
	var data []byte
	var err error

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		data, err = b.MarshalJSON()
	case ".yaml", ".yml":
		data, err = b.MarshalYAML()
	default:
		// Default to YAML
		data, err = b.MarshalYAML()
	}

	if err != nil {
		return fmt.Errorf("builder: failed to marshal document: %w", err)
	}

	if err := os.WriteFile(path, data, outputFileMode); err != nil {
		return fmt.Errorf("builder: failed to write file: %w", err)
	}

	return nil
}

// getOrCreatePathItem gets or creates a PathItem for the given path.
func (b *Builder) getOrCreatePathItem(path string) *spec.PathItem {
	if pathItem, exists := b.paths[path]; exists {
		return pathItem
	}
	pathItem := &spec.PathItem{}
	b.paths[path] = pathItem
	return pathItem
}

// FromDocument creates a builder from an existing document.
// This allows modifying an existing document by adding operations. Existing
// operationIds are registered so later additions cannot collide with them.
func FromDocument(doc *spec.Document) *Builder {
	b := New()
	b.info = doc.Info
	b.host = doc.Host
	b.basePath = doc.BasePath
	b.schemes = doc.Schemes
	b.consumes = doc.Consumes
	b.produces = doc.Produces
	b.tags = doc.Tags
	b.security = doc.Security
	b.externalDocs = doc.ExternalDocs

	for path, item := range doc.Paths {
		b.paths[path] = item
		for method, op := range item.Operations() {
			if op == nil || op.OperationID == "" {
				continue
			}
			if !b.operationIDs[op.OperationID] {
				b.operationIDs[op.OperationID] = true
				b.operationIDLocations[op.OperationID] = operationLocation{
					Method: method,
					Path:   path,
				}
			}
		}
	}

	for name, schema := range doc.Definitions {
		b.definitions[name] = schema
	}
	for name, param := range doc.Parameters {
		b.parameters[name] = param
	}
	for name, resp := range doc.Responses {
		b.responses[name] = resp
	}
	for name, ss := range doc.SecurityDefinitions {
		b.securitySchemes[name] = ss
	}

	return b
}
