package spec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swagspec/swagspec/specerrors"
)

func TestRefKey(t *testing.T) {
	assert.Equal(t, "Pet", Ref{Pointer: "#/definitions/Pet"}.Key())
	assert.Equal(t, "NotFound", Ref{Pointer: "#/responses/NotFound"}.Key())
	assert.Equal(t, "bare", Ref{Pointer: "bare"}.Key())
}

func TestOrRefNarrowing(t *testing.T) {
	inline := Inline(&Schema{Title: "Pet"})
	v, ok := inline.Value()
	require.True(t, ok)
	assert.Equal(t, "Pet", v.Title)
	assert.False(t, inline.IsRef())
	_, ok = inline.Ref()
	assert.False(t, ok)

	ref := RefOf[Schema]("#/definitions/Pet")
	assert.True(t, ref.IsRef())
	r, ok := ref.Ref()
	require.True(t, ok)
	assert.Equal(t, "#/definitions/Pet", r.Pointer)
	_, ok = ref.Value()
	assert.False(t, ok)
}

func TestOrRefNilSafety(t *testing.T) {
	var r *OrRef[Schema]
	assert.False(t, r.IsRef())
	_, ok := r.Ref()
	assert.False(t, ok)
	_, ok = r.Value()
	assert.False(t, ok)
}

func TestOrRefZeroValueIsNeitherCase(t *testing.T) {
	var r OrRef[Schema]
	assert.False(t, r.IsRef())
	_, ok := r.Value()
	assert.False(t, ok)
}

func TestResolveInline(t *testing.T) {
	want := &Schema{Title: "Pet"}
	got, err := Inline(want).Resolve(nil, "definitions")
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestResolveHit(t *testing.T) {
	table := map[string]*Schema{"Pet": {Title: "Pet"}}
	got, err := SchemaRef("Pet").Resolve(table, "definitions")
	require.NoError(t, err)
	assert.Same(t, table["Pet"], got)
}

func TestResolveMiss(t *testing.T) {
	_, err := SchemaRef("Ghost").Resolve(map[string]*Schema{}, "definitions")
	require.Error(t, err)
	assert.True(t, errors.Is(err, specerrors.ErrReferenceNotFound))
	assert.True(t, errors.Is(err, specerrors.ErrValidation))

	var notFound *specerrors.ReferenceNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Ghost", notFound.Key)
	assert.Equal(t, "definitions", notFound.Table)
}

func TestResolveZeroValue(t *testing.T) {
	var r OrRef[Response]
	_, err := r.Resolve(map[string]*Response{"ok": {}}, "responses")
	require.Error(t, err)
	assert.True(t, errors.Is(err, specerrors.ErrReferenceNotFound))
}

func TestRefConstructors(t *testing.T) {
	r, ok := SchemaRef("Pet").Ref()
	require.True(t, ok)
	assert.Equal(t, "#/definitions/Pet", r.Pointer)

	r, ok = ResponseRef("NotFound").Ref()
	require.True(t, ok)
	assert.Equal(t, "#/responses/NotFound", r.Pointer)

	r, ok = ParameterRef("limit").Ref()
	require.True(t, ok)
	assert.Equal(t, "#/parameters/limit", r.Pointer)
}
