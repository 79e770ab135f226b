package builder

import "text/template"

// BuilderOption configures a Builder instance.
// Options are applied when creating a new Builder with New().
type BuilderOption func(*builderConfig)

// builderConfig holds builder configuration applied via options.
type builderConfig struct {
	namingStrategy DefinitionNamingStrategy
	namingTemplate *template.Template
	namingFunc     DefinitionNameFunc
	templateError  error // Stores template parse errors for Build() to return
	logger         Logger
}

// defaultBuilderConfig returns a new builderConfig with default values:
// names are kept as supplied and logging is discarded.
func defaultBuilderConfig() *builderConfig {
	return &builderConfig{
		namingStrategy: DefinitionNamingDefault,
		logger:         NopLogger{},
	}
}

// WithDefinitionNaming sets a built-in definition naming strategy.
// The default is DefinitionNamingDefault which keeps names as supplied.
//
// Available strategies:
//   - DefinitionNamingDefault: keep as supplied
//   - DefinitionNamingPascalCase: "PetOwner"
//   - DefinitionNamingCamelCase: "petOwner"
//   - DefinitionNamingSnakeCase: "pet_owner"
//   - DefinitionNamingKebabCase: "pet-owner"
//
// Setting a naming strategy clears any previously set template or custom function.
func WithDefinitionNaming(strategy DefinitionNamingStrategy) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.namingStrategy = strategy
		cfg.namingTemplate = nil
		cfg.namingFunc = nil
		cfg.templateError = nil
	}
}

// WithDefinitionNameTemplate sets a custom Go text/template for definition
// naming. The template receives a DefinitionNameContext. Parse errors are
// returned by Build().
//
// Available template functions: pascal, camel, snake, kebab, upper, lower,
// title, sanitize, trimPrefix, trimSuffix, replace, join.
//
// Example:
//
//	WithDefinitionNameTemplate(`api{{pascal .Name}}`)
//
// Setting a template clears any previously set custom function.
func WithDefinitionNameTemplate(tmpl string) BuilderOption {
	return func(cfg *builderConfig) {
		t, err := parseDefinitionNameTemplate(tmpl)
		if err != nil {
			cfg.templateError = err
			cfg.namingTemplate = nil
			return
		}
		cfg.namingTemplate = t
		cfg.namingFunc = nil
		cfg.templateError = nil
	}
}

// WithDefinitionNameFunc sets a custom function for definition naming.
// The function receives a DefinitionNameContext and returns the name to use.
//
// Setting a custom function clears any previously set template.
func WithDefinitionNameFunc(fn DefinitionNameFunc) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.namingFunc = fn
		cfg.namingTemplate = nil
		cfg.templateError = nil
	}
}

// WithLogger sets the logger used for builder diagnostics, such as replaced
// definitions. The default discards all output.
func WithLogger(logger Logger) BuilderOption {
	return func(cfg *builderConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
