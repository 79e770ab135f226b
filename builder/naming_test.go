package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamingStrategies(t *testing.T) {
	tests := []struct {
		name     string
		strategy DefinitionNamingStrategy
		input    string
		want     string
	}{
		{"default keeps name", DefinitionNamingDefault, "pet_owner", "pet_owner"},
		{"pascal from snake", DefinitionNamingPascalCase, "pet_owner", "PetOwner"},
		{"pascal from kebab", DefinitionNamingPascalCase, "pet-owner", "PetOwner"},
		{"pascal from dotted", DefinitionNamingPascalCase, "models.user", "ModelsUser"},
		{"camel from snake", DefinitionNamingCamelCase, "pet_owner", "petOwner"},
		{"snake from pascal", DefinitionNamingSnakeCase, "PetOwner", "pet_owner"},
		{"kebab from pascal", DefinitionNamingKebabCase, "PetOwner", "pet-owner"},
		{"pascal keeps caps", DefinitionNamingPascalCase, "HTTPServer", "HTTPServer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := newDefinitionNamer()
			n.strategy = tt.strategy
			assert.Equal(t, tt.want, n.name(tt.input))
		})
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"pet_owner", []string{"pet", "owner"}},
		{"petOwner", []string{"pet", "Owner"}},
		{"pet-owner.v2", []string{"pet", "owner", "v2"}},
		{"", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, splitWords(tt.input), "input %q", tt.input)
	}
}

func TestSanitizeDefinitionName(t *testing.T) {
	assert.Equal(t, "pet_owner", sanitizeDefinitionName("pet owner"))
	assert.Equal(t, "a_b", sanitizeDefinitionName("a/b"))
	assert.Equal(t, "a_b", sanitizeDefinitionName("a  /  b"))
}

func TestNamingTemplate(t *testing.T) {
	n := newDefinitionNamer()
	tmpl, err := parseDefinitionNameTemplate(`api{{pascal .Name}}`)
	assert.NoError(t, err)
	n.template = tmpl

	assert.Equal(t, "apiPetOwner", n.name("pet_owner"))
}

func TestNamingTemplate_ParseError(t *testing.T) {
	_, err := parseDefinitionNameTemplate(`{{.Broken`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid definition name template")
}

func TestNamingFunc_TakesPriority(t *testing.T) {
	n := newDefinitionNamer()
	n.strategy = DefinitionNamingPascalCase
	n.fn = func(ctx DefinitionNameContext) string {
		return "Fixed"
	}

	assert.Equal(t, "Fixed", n.name("pet_owner"))
}
