package spec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swagspec/swagspec/specerrors"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument()
	assert.Equal(t, SwaggerVersion, doc.Swagger)
	assert.NotNil(t, doc.Paths)
	assert.Empty(t, doc.Paths)
}

func TestEnsurePath(t *testing.T) {
	doc := &Document{}
	item := doc.EnsurePath("/pets")
	require.NotNil(t, item)
	assert.Same(t, item, doc.Paths["/pets"])
	assert.Same(t, item, doc.EnsurePath("/pets"))
	assert.Same(t, item, doc.Path("/pets"))
	assert.Nil(t, doc.Path("/missing"))
}

func TestDocumentResolvers(t *testing.T) {
	doc := NewDocument()
	doc.Definitions = map[string]*Schema{"Pet": {Title: "Pet"}}
	doc.Parameters = map[string]*Parameter{"limit": {Name: "limit", In: InQuery}}
	doc.Responses = map[string]*Response{"NotFound": {Description: "not found"}}

	s, err := doc.ResolveSchema(SchemaRef("Pet"))
	require.NoError(t, err)
	assert.Equal(t, "Pet", s.Title)

	p, err := doc.ResolveParameter(ParameterRef("limit"))
	require.NoError(t, err)
	assert.Equal(t, "limit", p.Name)

	r, err := doc.ResolveResponse(ResponseRef("NotFound"))
	require.NoError(t, err)
	assert.Equal(t, "not found", r.Description)

	_, err = doc.ResolveSchema(SchemaRef("Ghost"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, specerrors.ErrReferenceNotFound))
}

func TestSchemaRefPrefix(t *testing.T) {
	assert.Equal(t, DefinitionsRefPrefix, NewDocument().SchemaRefPrefix())
}
