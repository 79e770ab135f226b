package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/swagspec/swagspec/internal/httpwire"
	"github.com/swagspec/swagspec/spec"
)

// paramConfig holds the configuration accumulated by ParamOptions before a
// parameter is assembled.
type paramConfig struct {
	description      string
	required         bool
	allowEmptyValue  bool
	format           string
	defaultValue     any
	enum             []any
	pattern          string
	minimum          *float64
	maximum          *float64
	exclusiveMinimum bool
	exclusiveMaximum bool
	multipleOf       *float64
	minLength        *int
	maxLength        *int
	minItems         *int
	maxItems         *int
	uniqueItems      bool
	items            *spec.PrimitiveItems[spec.ParamKind]
	collectionFormat spec.CollectionFormat
	extensions       map[string]any
}

// ParamOption configures a parameter.
type ParamOption func(*paramConfig)

// WithParamDescription sets the parameter description.
func WithParamDescription(desc string) ParamOption {
	return func(cfg *paramConfig) {
		cfg.description = desc
	}
}

// WithParamRequired sets whether the parameter is required.
// Path parameters ignore this; they are always required.
func WithParamRequired(required bool) ParamOption {
	return func(cfg *paramConfig) {
		cfg.required = required
	}
}

// WithParamAllowEmptyValue allows the parameter to be sent with an empty
// value. Only meaningful for query and formData parameters.
func WithParamAllowEmptyValue(allow bool) ParamOption {
	return func(cfg *paramConfig) {
		cfg.allowEmptyValue = allow
	}
}

// WithParamFormat sets the parameter format (e.g., "int64", "date-time").
func WithParamFormat(format string) ParamOption {
	return func(cfg *paramConfig) {
		cfg.format = format
	}
}

// WithParamDefault sets the parameter default value.
func WithParamDefault(value any) ParamOption {
	return func(cfg *paramConfig) {
		cfg.defaultValue = value
	}
}

// WithParamEnum restricts the parameter to the given values.
func WithParamEnum(values ...any) ParamOption {
	return func(cfg *paramConfig) {
		cfg.enum = values
	}
}

// WithParamPattern sets the regular expression the parameter value must match.
func WithParamPattern(pattern string) ParamOption {
	return func(cfg *paramConfig) {
		cfg.pattern = pattern
	}
}

// WithParamRange sets the numeric minimum and maximum constraints.
func WithParamRange(minimum, maximum float64) ParamOption {
	return func(cfg *paramConfig) {
		cfg.minimum = &minimum
		cfg.maximum = &maximum
	}
}

// WithParamMinimum sets the numeric minimum constraint.
func WithParamMinimum(minimum float64, exclusive bool) ParamOption {
	return func(cfg *paramConfig) {
		cfg.minimum = &minimum
		cfg.exclusiveMinimum = exclusive
	}
}

// WithParamMaximum sets the numeric maximum constraint.
func WithParamMaximum(maximum float64, exclusive bool) ParamOption {
	return func(cfg *paramConfig) {
		cfg.maximum = &maximum
		cfg.exclusiveMaximum = exclusive
	}
}

// WithParamMultipleOf requires the value to be a multiple of the given number.
func WithParamMultipleOf(multipleOf float64) ParamOption {
	return func(cfg *paramConfig) {
		cfg.multipleOf = &multipleOf
	}
}

// WithParamLength sets the string length constraints.
func WithParamLength(minLength, maxLength int) ParamOption {
	return func(cfg *paramConfig) {
		cfg.minLength = &minLength
		cfg.maxLength = &maxLength
	}
}

// WithParamItemsRange sets the array size constraints.
func WithParamItemsRange(minItems, maxItems int) ParamOption {
	return func(cfg *paramConfig) {
		cfg.minItems = &minItems
		cfg.maxItems = &maxItems
	}
}

// WithParamUniqueItems requires array values to be unique.
func WithParamUniqueItems(unique bool) ParamOption {
	return func(cfg *paramConfig) {
		cfg.uniqueItems = unique
	}
}

// WithParamItems sets the item descriptor for array-typed parameters.
func WithParamItems(items *spec.PrimitiveItems[spec.ParamKind]) ParamOption {
	return func(cfg *paramConfig) {
		cfg.items = items
	}
}

// WithParamCollectionFormat sets how an array-typed parameter is serialized.
func WithParamCollectionFormat(format spec.CollectionFormat) ParamOption {
	return func(cfg *paramConfig) {
		cfg.collectionFormat = format
	}
}

// WithParamExtension adds a vendor extension (x-* field) to the parameter.
func WithParamExtension(key string, value any) ParamOption {
	return func(cfg *paramConfig) {
		if cfg.extensions == nil {
			cfg.extensions = make(map[string]any)
		}
		cfg.extensions[key] = value
	}
}

// validateParamConstraints rejects contradictory or out-of-range constraint
// combinations before they reach the document.
func validateParamConstraints(cfg *paramConfig) error {
	if cfg.minimum != nil && cfg.maximum != nil && *cfg.minimum > *cfg.maximum {
		return fmt.Errorf("minimum (%v) cannot be greater than maximum (%v)", *cfg.minimum, *cfg.maximum)
	}
	if cfg.minLength != nil && *cfg.minLength < 0 {
		return fmt.Errorf("minLength (%d) cannot be negative", *cfg.minLength)
	}
	if cfg.maxLength != nil && *cfg.maxLength < 0 {
		return fmt.Errorf("maxLength (%d) cannot be negative", *cfg.maxLength)
	}
	if cfg.minLength != nil && cfg.maxLength != nil && *cfg.minLength > *cfg.maxLength {
		return fmt.Errorf("minLength (%d) cannot be greater than maxLength (%d)", *cfg.minLength, *cfg.maxLength)
	}
	if cfg.minItems != nil && *cfg.minItems < 0 {
		return fmt.Errorf("minItems (%d) cannot be negative", *cfg.minItems)
	}
	if cfg.maxItems != nil && *cfg.maxItems < 0 {
		return fmt.Errorf("maxItems (%d) cannot be negative", *cfg.maxItems)
	}
	if cfg.minItems != nil && cfg.maxItems != nil && *cfg.minItems > *cfg.maxItems {
		return fmt.Errorf("minItems (%d) cannot be greater than maxItems (%d)", *cfg.minItems, *cfg.maxItems)
	}
	if cfg.multipleOf != nil && *cfg.multipleOf <= 0 {
		return fmt.Errorf("multipleOf (%v) must be greater than 0", *cfg.multipleOf)
	}
	return nil
}

// applyParamConstraints copies the accumulated constraints onto a non-body
// parameter descriptor.
func applyParamConstraints(o *spec.ParamOtherSchema, cfg *paramConfig) {
	o.Format = cfg.format
	o.Default = cfg.defaultValue
	o.Enum = cfg.enum
	o.Pattern = cfg.pattern
	o.Minimum = cfg.minimum
	o.Maximum = cfg.maximum
	o.ExclusiveMinimum = cfg.exclusiveMinimum
	o.ExclusiveMaximum = cfg.exclusiveMaximum
	o.MultipleOf = cfg.multipleOf
	o.MinLength = cfg.minLength
	o.MaxLength = cfg.maxLength
	o.MinItems = cfg.minItems
	o.MaxItems = cfg.maxItems
	o.UniqueItems = cfg.uniqueItems
	o.Items = cfg.items
	o.CollectionFormat = cfg.collectionFormat
}

// parameterBuilder defers parameter assembly until AddOperation has the
// method and path available for error context.
type parameterBuilder struct {
	name     string
	in       spec.Location
	typ      spec.DataType
	body     *spec.OrRef[spec.Schema]
	prebuilt *spec.Parameter
	config   *paramConfig
}

// assemble builds the spec parameter, or reports a constraint violation.
func (pb *parameterBuilder) assemble(opContext string) (*spec.Parameter, *BuilderError) {
	if pb.prebuilt != nil {
		return pb.prebuilt, nil
	}

	cfg := pb.config
	if err := validateParamConstraints(cfg); err != nil {
		return nil, NewParameterConstraintError(pb.name, opContext, "", err.Error())
	}

	p := &spec.Parameter{
		Name:        pb.name,
		In:          pb.in,
		Description: cfg.description,
		Required:    cfg.required,
		Extra:       cfg.extensions,
	}
	if pb.in == spec.InPath {
		p.Required = true
	}

	if pb.in == spec.InBody {
		p.Schema = spec.BodySchema(pb.body)
		return p, nil
	}

	other := &spec.ParamOtherSchema{
		AllowEmptyValue: cfg.allowEmptyValue,
	}
	other.Type = pb.typ
	applyParamConstraints(other, cfg)
	p.Schema = spec.OtherSchema(other)
	return p, nil
}

// responseEntry pairs a status code (or "default") with its response.
type responseEntry struct {
	code     spec.StatusCode
	response *spec.OrRef[spec.Response]
}

// operationConfig holds the configuration for building an operation.
type operationConfig struct {
	operationID  string
	summary      string
	description  string
	tags         []string
	deprecated   bool
	externalDocs *spec.ExternalDocs
	parameters   []*parameterBuilder
	responses    []responseEntry
	security     []spec.SecurityRequirement
	noSecurity   bool
	consumes     []string
	produces     []string
	schemes      []string
	extensions   map[string]any
}

// OperationOption configures an operation.
type OperationOption func(*operationConfig)

// WithOperationID sets the operation ID. Operation IDs must be unique across
// the document; duplicates are reported by Build.
func WithOperationID(id string) OperationOption {
	return func(cfg *operationConfig) {
		cfg.operationID = id
	}
}

// WithSummary sets the operation summary.
func WithSummary(summary string) OperationOption {
	return func(cfg *operationConfig) {
		cfg.summary = summary
	}
}

// WithDescription sets the operation description.
func WithDescription(desc string) OperationOption {
	return func(cfg *operationConfig) {
		cfg.description = desc
	}
}

// WithTags sets the operation tags.
func WithTags(tags ...string) OperationOption {
	return func(cfg *operationConfig) {
		cfg.tags = tags
	}
}

// WithDeprecated marks the operation as deprecated.
func WithDeprecated(deprecated bool) OperationOption {
	return func(cfg *operationConfig) {
		cfg.deprecated = deprecated
	}
}

// WithOperationExternalDocs sets the external documentation for the operation.
func WithOperationExternalDocs(docs *spec.ExternalDocs) OperationOption {
	return func(cfg *operationConfig) {
		cfg.externalDocs = docs
	}
}

// WithParameter adds a pre-built parameter to the operation.
func WithParameter(param *spec.Parameter) OperationOption {
	return func(cfg *operationConfig) {
		cfg.parameters = append(cfg.parameters, &parameterBuilder{
			name:     param.Name,
			in:       param.In,
			prebuilt: param,
		})
	}
}

// WithBodyParam adds the single body parameter carrying the request payload
// schema. An operation may have at most one; a second body parameter is
// reported as a duplicate by Build.
func WithBodyParam(name string, schema *spec.OrRef[spec.Schema], opts ...ParamOption) OperationOption {
	return func(cfg *operationConfig) {
		pCfg := &paramConfig{}
		for _, opt := range opts {
			opt(pCfg)
		}
		cfg.parameters = append(cfg.parameters, &parameterBuilder{
			name:   name,
			in:     spec.InBody,
			body:   schema,
			config: pCfg,
		})
	}
}

// WithQueryParam adds a query parameter of the given type to the operation.
func WithQueryParam(name string, typ spec.DataType, opts ...ParamOption) OperationOption {
	return typedParam(name, spec.InQuery, typ, opts)
}

// WithPathParam adds a path parameter of the given type to the operation.
// Path parameters are always required.
func WithPathParam(name string, typ spec.DataType, opts ...ParamOption) OperationOption {
	return typedParam(name, spec.InPath, typ, opts)
}

// WithHeaderParam adds a header parameter of the given type to the operation.
func WithHeaderParam(name string, typ spec.DataType, opts ...ParamOption) OperationOption {
	return typedParam(name, spec.InHeader, typ, opts)
}

// WithFormParam adds a formData parameter of the given type to the operation.
func WithFormParam(name string, typ spec.DataType, opts ...ParamOption) OperationOption {
	return typedParam(name, spec.InFormData, typ, opts)
}

// WithFileParam adds a formData parameter of type "file" for uploads.
// File parameters are only legal in formData, and only when the operation
// consumes multipart/form-data or application/x-www-form-urlencoded.
func WithFileParam(name string, opts ...ParamOption) OperationOption {
	return typedParam(name, spec.InFormData, spec.TypeFile, opts)
}

func typedParam(name string, in spec.Location, typ spec.DataType, opts []ParamOption) OperationOption {
	return func(cfg *operationConfig) {
		pCfg := &paramConfig{}
		for _, opt := range opts {
			opt(pCfg)
		}
		cfg.parameters = append(cfg.parameters, &parameterBuilder{
			name:   name,
			in:     in,
			typ:    typ,
			config: pCfg,
		})
	}
}

// responseConfig holds configuration for response building.
type responseConfig struct {
	description string
	schema      *spec.OrRef[spec.Schema]
	headers     map[string]*spec.Header
	examples    map[string]any
	extensions  map[string]any
}

// ResponseOption configures a response.
type ResponseOption func(*responseConfig)

// WithResponseDescription sets the response description.
func WithResponseDescription(desc string) ResponseOption {
	return func(cfg *responseConfig) {
		cfg.description = desc
	}
}

// WithResponseSchema sets the response payload schema.
func WithResponseSchema(schema *spec.OrRef[spec.Schema]) ResponseOption {
	return func(cfg *responseConfig) {
		cfg.schema = schema
	}
}

// WithResponseSchemaRef sets the response payload schema to a $ref into the
// definitions table.
func WithResponseSchemaRef(name string) ResponseOption {
	return func(cfg *responseConfig) {
		cfg.schema = spec.SchemaRef(name)
	}
}

// WithResponseHeader declares a header sent with the response.
func WithResponseHeader(name string, header *spec.Header) ResponseOption {
	return func(cfg *responseConfig) {
		if cfg.headers == nil {
			cfg.headers = make(map[string]*spec.Header)
		}
		cfg.headers[name] = header
	}
}

// WithResponseExample sets an example payload keyed by media type.
func WithResponseExample(mimeType string, example any) ResponseOption {
	return func(cfg *responseConfig) {
		if cfg.examples == nil {
			cfg.examples = make(map[string]any)
		}
		cfg.examples[mimeType] = example
	}
}

// WithResponseExtension adds a vendor extension (x-* field) to the response.
func WithResponseExtension(key string, value any) ResponseOption {
	return func(cfg *responseConfig) {
		if cfg.extensions == nil {
			cfg.extensions = make(map[string]any)
		}
		cfg.extensions[key] = value
	}
}

func buildResponse(defaultDesc string, opts []ResponseOption) *spec.OrRef[spec.Response] {
	cfg := &responseConfig{description: defaultDesc}
	for _, opt := range opts {
		opt(cfg)
	}
	return spec.Inline(&spec.Response{
		Description: cfg.description,
		Schema:      cfg.schema,
		Headers:     cfg.headers,
		Examples:    cfg.examples,
		Extra:       cfg.extensions,
	})
}

// WithResponse adds a response for the given status code to the operation.
func WithResponse(statusCode int, opts ...ResponseOption) OperationOption {
	return func(cfg *operationConfig) {
		code := spec.StatusCode(strconv.Itoa(statusCode))
		cfg.responses = append(cfg.responses, responseEntry{
			code:     code,
			response: buildResponse(fmt.Sprintf("%d response", statusCode), opts),
		})
	}
}

// WithResponseRef adds a $ref into the responses table for the given status code.
func WithResponseRef(statusCode int, name string) OperationOption {
	return func(cfg *operationConfig) {
		code := spec.StatusCode(strconv.Itoa(statusCode))
		cfg.responses = append(cfg.responses, responseEntry{
			code:     code,
			response: spec.ResponseRef(name),
		})
	}
}

// WithDefaultResponse sets the default response, covering status codes
// without a dedicated entry.
func WithDefaultResponse(opts ...ResponseOption) OperationOption {
	return func(cfg *operationConfig) {
		cfg.responses = append(cfg.responses, responseEntry{
			response: buildResponse("default response", opts),
		})
	}
}

// WithSecurity sets the security requirements for the operation, overriding
// the document-level requirements.
func WithSecurity(requirements ...spec.SecurityRequirement) OperationOption {
	return func(cfg *operationConfig) {
		cfg.security = requirements
	}
}

// WithNoSecurity explicitly removes document-level security for the
// operation (an empty, non-nil requirement list).
func WithNoSecurity() OperationOption {
	return func(cfg *operationConfig) {
		cfg.noSecurity = true
	}
}

// WithConsumes sets the consumed media types for the operation, overriding
// the document-level list. Passing no types records an explicit empty list,
// which clears inheritance rather than restoring it.
func WithConsumes(mimeTypes ...string) OperationOption {
	return func(cfg *operationConfig) {
		if mimeTypes == nil {
			mimeTypes = []string{}
		}
		cfg.consumes = mimeTypes
	}
}

// WithProduces sets the produced media types for the operation, overriding
// the document-level list, with the same empty-list semantics as WithConsumes.
func WithProduces(mimeTypes ...string) OperationOption {
	return func(cfg *operationConfig) {
		if mimeTypes == nil {
			mimeTypes = []string{}
		}
		cfg.produces = mimeTypes
	}
}

// WithSchemes sets the transfer protocols for the operation, overriding the
// document-level list.
func WithSchemes(schemes ...string) OperationOption {
	return func(cfg *operationConfig) {
		if schemes == nil {
			schemes = []string{}
		}
		cfg.schemes = schemes
	}
}

// WithOperationExtension adds a vendor extension (x-* field) to the operation.
// The key must start with "x-".
func WithOperationExtension(key string, value any) OperationOption {
	return func(cfg *operationConfig) {
		if cfg.extensions == nil {
			cfg.extensions = make(map[string]any)
		}
		cfg.extensions[key] = value
	}
}

// AddOperation adds an API operation to the document under the given HTTP
// method and path. The method is case-insensitive; anything outside the
// seven Swagger 2.0 methods is recorded as an error.
//
// Note: Swagger requires at least one response per operation. The builder
// does not enforce this; Document.Validate on the built document does.
func (b *Builder) AddOperation(method, path string, opts ...OperationOption) *Builder {
	cfg := &operationConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	method = strings.ToLower(method)
	if !httpwire.IsMethod(method) {
		b.errors = append(b.errors, NewInvalidMethodError(method, path))
		return b
	}

	// Check for duplicate operation ID
	if cfg.operationID != "" {
		if first, exists := b.operationIDLocations[cfg.operationID]; exists {
			b.errors = append(b.errors, NewDuplicateOperationIDError(cfg.operationID, method, path, &first))
		} else {
			b.operationIDLocations[cfg.operationID] = operationLocation{
				Method: method,
				Path:   path,
			}
		}
		b.operationIDs[cfg.operationID] = true
	}

	for _, mt := range cfg.consumes {
		if !httpwire.IsValidMediaType(mt) {
			b.errors = append(b.errors, NewMediaTypeError(method, path, cfg.operationID, "consumes", mt))
		}
	}
	for _, mt := range cfg.produces {
		if !httpwire.IsValidMediaType(mt) {
			b.errors = append(b.errors, NewMediaTypeError(method, path, cfg.operationID, "produces", mt))
		}
	}

	var security []spec.SecurityRequirement
	if cfg.noSecurity {
		security = []spec.SecurityRequirement{}
	} else if len(cfg.security) > 0 {
		security = cfg.security
	}

	op := &spec.Operation{
		Tags:         cfg.tags,
		Summary:      cfg.summary,
		Description:  cfg.description,
		ExternalDocs: cfg.externalDocs,
		OperationID:  cfg.operationID,
		Consumes:     cfg.consumes,
		Produces:     cfg.produces,
		Schemes:      cfg.schemes,
		Deprecated:   cfg.deprecated,
		Security:     security,
		Extra:        cfg.extensions,
	}

	opContext := method + " " + path
	for _, pb := range cfg.parameters {
		param, berr := pb.assemble(opContext)
		if berr != nil {
			b.errors = append(b.errors, berr)
			continue
		}
		if err := op.AddParameter(param); err != nil {
			b.errors = append(b.errors, &BuilderError{
				Component:   ComponentParameter,
				Method:      method,
				Path:        path,
				OperationID: cfg.operationID,
				Cause:       err,
			})
		}
	}

	if len(cfg.responses) > 0 {
		if op.Responses == nil {
			op.Responses = &spec.Responses{}
		}
		// Last write wins when the same code appears twice.
		ix := op.Index()
		for _, entry := range cfg.responses {
			if entry.code == "" {
				op.Responses.Default = entry.response
				continue
			}
			if !httpwire.IsStandardStatusCode(string(entry.code)) {
				b.logger.Warn("non-standard status code", "method", method, "path", path, "code", string(entry.code))
			}
			ix.Set(entry.code, entry.response)
		}
	}

	pathItem := b.getOrCreatePathItem(path)
	pathItem.SetOperation(method, op)

	return b
}
