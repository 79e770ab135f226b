package builder

import (
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefinitionNamingStrategy defines built-in definition naming conventions.
// Use these with WithDefinitionNaming to control how names passed to
// AddDefinition (and the targets of SchemaRef) are normalized.
type DefinitionNamingStrategy int

const (
	// DefinitionNamingDefault keeps names exactly as supplied.
	DefinitionNamingDefault DefinitionNamingStrategy = iota

	// DefinitionNamingPascalCase normalizes to PascalCase.
	// Example: "pet_owner" -> "PetOwner"
	DefinitionNamingPascalCase

	// DefinitionNamingCamelCase normalizes to camelCase.
	// Example: "pet_owner" -> "petOwner"
	DefinitionNamingCamelCase

	// DefinitionNamingSnakeCase normalizes to snake_case.
	// Example: "PetOwner" -> "pet_owner"
	DefinitionNamingSnakeCase

	// DefinitionNamingKebabCase normalizes to kebab-case.
	// Example: "PetOwner" -> "pet-owner"
	DefinitionNamingKebabCase
)

// DefinitionNameContext provides name metadata for custom naming templates
// and functions.
type DefinitionNameContext struct {
	// Name is the name as supplied to AddDefinition.
	Name string

	// NameSanitized is Name with characters that are problematic in $ref
	// URIs replaced by underscores.
	NameSanitized string

	// Words is Name split on separators and camel-case boundaries.
	Words []string
}

// DefinitionNameFunc is the signature for custom definition naming functions.
type DefinitionNameFunc func(ctx DefinitionNameContext) string

// definitionNamer handles definition name normalization with configurable
// strategies. Priority: custom function > template > built-in strategy.
type definitionNamer struct {
	strategy DefinitionNamingStrategy
	template *template.Template
	fn       DefinitionNameFunc
}

func newDefinitionNamer() *definitionNamer {
	return &definitionNamer{strategy: DefinitionNamingDefault}
}

// name normalizes a definition name according to the configured strategy,
// template, or function.
func (n *definitionNamer) name(raw string) string {
	ctx := buildNameContext(raw)

	if n.fn != nil {
		return n.fn(ctx)
	}

	if n.template != nil {
		var buf strings.Builder
		if err := n.template.Execute(&buf, ctx); err != nil {
			// Fall back to the sanitized input on template error
			return ctx.NameSanitized
		}
		return sanitizeDefinitionName(buf.String())
	}

	switch n.strategy {
	case DefinitionNamingPascalCase:
		return toPascalCase(raw)
	case DefinitionNamingCamelCase:
		return toCamelCase(raw)
	case DefinitionNamingSnakeCase:
		return toSnakeCase(raw)
	case DefinitionNamingKebabCase:
		return toKebabCase(raw)
	default:
		return raw
	}
}

// buildNameContext creates a DefinitionNameContext from a raw name.
func buildNameContext(raw string) DefinitionNameContext {
	return DefinitionNameContext{
		Name:          raw,
		NameSanitized: sanitizeDefinitionName(raw),
		Words:         splitWords(raw),
	}
}

// splitWords splits a name on separators and camel-case boundaries.
// Example: "petOwner_v2" -> ["pet", "Owner", "v2"]
func splitWords(s string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	var prev rune
	for _, r := range s {
		switch {
		case r == '_' || r == '-' || r == '.' || r == '/' || r == ' ':
			flush()
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
		prev = r
	}
	flush()

	return words
}

// sanitizeDefinitionName replaces characters that are problematic in $ref
// URIs. Example: "pet owner" -> "pet_owner"
func sanitizeDefinitionName(name string) string {
	name = strings.ReplaceAll(name, "#", "_")
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, " ", "_")
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}
	return strings.TrimSuffix(name, "_")
}

// toPascalCase converts a string to PascalCase.
// Example: "pet_owner" -> "PetOwner"
func toPascalCase(s string) string {
	caser := cases.Title(language.English, cases.NoLower)
	words := splitWords(s)
	var sb strings.Builder
	for _, w := range words {
		sb.WriteString(caser.String(w))
	}
	return sb.String()
}

// toCamelCase converts a string to camelCase.
// Example: "pet_owner" -> "petOwner"
func toCamelCase(s string) string {
	pascal := toPascalCase(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// toSnakeCase converts a string to snake_case.
// Example: "PetOwner" -> "pet_owner"
func toSnakeCase(s string) string {
	caser := cases.Lower(language.English)
	words := splitWords(s)
	for i, w := range words {
		words[i] = caser.String(w)
	}
	return strings.Join(words, "_")
}

// toKebabCase converts a string to kebab-case.
// Example: "PetOwner" -> "pet-owner"
func toKebabCase(s string) string {
	return strings.ReplaceAll(toSnakeCase(s), "_", "-")
}

// templateFuncs returns the function map for definition name templates.
// Casers are created per call; cases.Caser values are not safe for
// concurrent use.
func templateFuncs() template.FuncMap {
	titleCaser := cases.Title(language.English)
	lowerCaser := cases.Lower(language.English)
	upperCaser := cases.Upper(language.English)

	return template.FuncMap{
		"pascal":     toPascalCase,
		"camel":      toCamelCase,
		"snake":      toSnakeCase,
		"kebab":      toKebabCase,
		"upper":      upperCaser.String,
		"lower":      lowerCaser.String,
		"title":      titleCaser.String,
		"sanitize":   sanitizeDefinitionName,
		"trimPrefix": strings.TrimPrefix,
		"trimSuffix": strings.TrimSuffix,
		"replace":    strings.ReplaceAll,
		"join": func(sep string, parts ...string) string {
			return strings.Join(parts, sep)
		},
	}
}

// parseDefinitionNameTemplate parses and validates a definition name template.
// The template is validated by executing it with a sample context.
func parseDefinitionNameTemplate(tmpl string) (*template.Template, error) {
	t, err := template.New("definitionName").Funcs(templateFuncs()).Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("builder: invalid definition name template: %w", err)
	}

	ctx := DefinitionNameContext{
		Name:          "pet_owner",
		NameSanitized: "pet_owner",
		Words:         []string{"pet", "owner"},
	}
	var buf strings.Builder
	if err := t.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("builder: definition name template execution failed: %w", err)
	}

	return t, nil
}
