package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseIndexOverResponses(t *testing.T) {
	r := &Responses{}
	ix := r.Index()

	assert.Equal(t, 0, ix.Len())
	_, ok := ix.Get("200")
	assert.False(t, ok)

	ok200 := Inline(&Response{Description: "ok"})
	ix.Set("200", ok200)

	got, ok := ix.Get("200")
	require.True(t, ok)
	assert.Same(t, ok200, got)
	assert.Equal(t, 1, ix.Len())

	// The index is a view: edits land on the backing collection.
	assert.Same(t, ok200, r.Codes["200"])
}

func TestResponseIndexOverOperation(t *testing.T) {
	op := &Operation{}
	ix := op.Index()

	// Reads against an absent collection do not allocate it.
	_, ok := ix.Get("200")
	assert.False(t, ok)
	assert.Equal(t, 0, ix.Len())
	assert.Nil(t, op.Responses)

	// The first Set allocates the collection.
	ix.Set("200", Inline(&Response{Description: "ok"}))
	require.NotNil(t, op.Responses)
	got, ok := ix.Get("200")
	require.True(t, ok)
	assert.NotNil(t, got)
}

func TestResponseIndexLastWriteWins(t *testing.T) {
	r := &Responses{}
	ix := r.Index()

	first := Inline(&Response{Description: "first"})
	second := Inline(&Response{Description: "second"})
	ix.Set("200", first)
	ix.Set("200", second)

	got, ok := ix.Get("200")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, 1, ix.Len())
}

func TestResponseIndexDelete(t *testing.T) {
	r := &Responses{}
	ix := r.Index()
	ix.Set("404", Inline(&Response{Description: "not found"}))

	ix.Delete("404")
	_, ok := ix.Get("404")
	assert.False(t, ok)
	assert.Equal(t, 0, ix.Len())

	// Deleting an absent code is a no-op, including on an absent collection.
	ix.Delete("404")
	(&Operation{}).Index().Delete("200")
}

func TestResponseIndexCodesSorted(t *testing.T) {
	r := &Responses{}
	ix := r.Index()
	for _, code := range []StatusCode{"500", "200", "404"} {
		ix.Set(code, Inline(&Response{Description: string(code)}))
	}

	assert.Equal(t, []StatusCode{"200", "404", "500"}, ix.Codes())
}

func TestResponseIndexCodesEmpty(t *testing.T) {
	assert.Nil(t, (&Responses{}).Index().Codes())
	assert.Nil(t, (&Operation{}).Index().Codes())
}

func TestResponseIndexDefaultIsNotIndexed(t *testing.T) {
	r := &Responses{Default: Inline(&Response{Description: "fallback"})}
	ix := r.Index()
	assert.Equal(t, 0, ix.Len())
	_, ok := ix.Get("default")
	assert.False(t, ok)
}
