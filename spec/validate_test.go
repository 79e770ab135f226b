package spec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swagspec/swagspec/specerrors"
)

func TestAttachItemsSameDialect(t *testing.T) {
	param := &ParamOtherSchema{}
	items := &PrimitiveItems[ParamKind]{}
	require.NoError(t, AttachItems(param, items))
	assert.Same(t, items, param.Items)

	header := &Header{}
	headerItems := &PrimitiveItems[HeaderKind]{}
	require.NoError(t, AttachItems(header, headerItems))
	assert.Same(t, headerItems, header.Items)

	schema := &Schema{}
	schemaItems := SingleItems(SchemaRef("Pet"))
	require.NoError(t, AttachItems(schema, schemaItems))
	assert.Same(t, schemaItems, schema.Items)
}

func TestAttachItemsCrossDialect(t *testing.T) {
	tests := []struct {
		name     string
		holder   any
		items    any
		expected string
		actual   string
	}{
		{
			name:     "header items on parameter",
			holder:   &ParamOtherSchema{},
			items:    &PrimitiveItems[HeaderKind]{},
			expected: "parameter",
			actual:   "header",
		},
		{
			name:     "parameter items on header",
			holder:   &Header{},
			items:    &PrimitiveItems[ParamKind]{},
			expected: "header",
			actual:   "parameter",
		},
		{
			name:     "primitive items on full schema",
			holder:   &Schema{},
			items:    &PrimitiveItems[ParamKind]{},
			expected: "schema",
			actual:   "parameter",
		},
		{
			name:     "schema items on header",
			holder:   &Header{},
			items:    SingleItems(SchemaRef("Pet")),
			expected: "header",
			actual:   "schema",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AttachItems(tt.holder, tt.items)
			require.Error(t, err)
			assert.True(t, errors.Is(err, specerrors.ErrKindMismatch))
			assert.True(t, errors.Is(err, specerrors.ErrValidation))

			var mismatch *specerrors.KindMismatchError
			require.True(t, errors.As(err, &mismatch))
			assert.Equal(t, tt.expected, mismatch.Expected)
			assert.Equal(t, tt.actual, mismatch.Actual)
			assert.Equal(t, "items", mismatch.Field)
		})
	}
}

func TestAttachItemsUnknownHolder(t *testing.T) {
	err := AttachItems(&Response{}, &PrimitiveItems[ParamKind]{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, specerrors.ErrKindMismatch))
	assert.Contains(t, err.Error(), "carries no item descriptor")
}

func TestSchemaValidateTypeLegality(t *testing.T) {
	s := &Schema{}
	s.Type = TypeObject
	require.NoError(t, s.Validate())

	s.Type = TypeFile
	err := s.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, specerrors.ErrKindMismatch))
	assert.Contains(t, err.Error(), `type "file" is not legal in the schema dialect`)
}

func TestParamOtherSchemaValidateTypeLegality(t *testing.T) {
	p := &ParamOtherSchema{}
	p.Type = TypeFile
	require.NoError(t, p.Validate())

	p.Type = TypeObject
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `type "object" is not legal in the parameter dialect`)
}

func TestHeaderValidateTypeLegality(t *testing.T) {
	h := &Header{}
	h.Type = TypeString
	require.NoError(t, h.Validate())

	for _, typ := range []DataType{TypeObject, TypeFile} {
		h.Type = typ
		err := h.Validate()
		require.Error(t, err, "type %q", typ)
		assert.True(t, errors.Is(err, specerrors.ErrKindMismatch))
	}
}

func TestArrayRequiresItemDescriptor(t *testing.T) {
	p := &ParamOtherSchema{}
	p.Type = TypeArray
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `type "array" requires an item descriptor`)

	p.Items = &PrimitiveItems[ParamKind]{}
	p.Items.Type = TypeString
	require.NoError(t, p.Validate())

	s := &Schema{}
	s.Type = TypeArray
	require.Error(t, s.Validate())
	s.Items = SingleItems(SchemaRef("Pet"))
	require.NoError(t, s.Validate())
}

func TestHeaderValidateRejectsMulti(t *testing.T) {
	h := &Header{CollectionFormat: CollectionCSV}
	h.Type = TypeArray
	h.Items = &PrimitiveItems[HeaderKind]{}
	h.Items.Type = TypeString
	require.NoError(t, h.Validate())

	h.CollectionFormat = CollectionMulti
	err := h.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"multi" is not legal for headers`)
}

func TestValidateRejectsUnknownCollectionFormat(t *testing.T) {
	t.Run("header", func(t *testing.T) {
		h := &Header{CollectionFormat: "semicolons"}
		h.Type = TypeArray
		h.Items = &PrimitiveItems[HeaderKind]{}
		h.Items.Type = TypeString

		err := h.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, specerrors.ErrKindMismatch))
		assert.Contains(t, err.Error(), `unknown collection format: "semicolons"`)

		var km *specerrors.KindMismatchError
		require.True(t, errors.As(err, &km))
		assert.Equal(t, "collectionFormat", km.Field)
	})

	t.Run("non-body parameter schema", func(t *testing.T) {
		s := &ParamOtherSchema{CollectionFormat: "semicolons"}
		s.Type = TypeArray
		s.Items = &PrimitiveItems[ParamKind]{}
		s.Items.Type = TypeString

		err := s.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown collection format: "semicolons"`)
	})

	t.Run("nested items", func(t *testing.T) {
		inner := &PrimitiveItems[ParamKind]{CollectionFormat: "semicolons"}
		inner.Type = TypeString
		outer := &PrimitiveItems[ParamKind]{Items: inner}
		outer.Type = TypeArray

		err := outer.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown collection format: "semicolons"`)
	})
}

func TestNestedItemsValidate(t *testing.T) {
	inner := &PrimitiveItems[ParamKind]{}
	inner.Type = TypeObject // not legal in the parameter dialect
	outer := &PrimitiveItems[ParamKind]{Items: inner}
	outer.Type = TypeArray
	err := outer.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, specerrors.ErrKindMismatch))
}

func TestParameterValidateUnknownLocation(t *testing.T) {
	p := &Parameter{Name: "limit", In: "cookie"}
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown parameter location: "cookie"`)
}

func TestParameterValidatePathRequiresRequired(t *testing.T) {
	p := &Parameter{Name: "id", In: InPath}
	err := p.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, specerrors.ErrInvalidRequiredFlag))

	p.Required = true
	p.Schema = OtherSchema(&ParamOtherSchema{})
	require.NoError(t, p.Validate())
}

func TestParameterValidateLocationSchemaAgreement(t *testing.T) {
	t.Run("body without body schema", func(t *testing.T) {
		p := &Parameter{Name: "payload", In: InBody, Schema: OtherSchema(&ParamOtherSchema{})}
		err := p.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, specerrors.ErrKindMismatch))
		assert.Contains(t, err.Error(), `parameter "payload" with in=body requires a body schema`)
	})

	t.Run("query with body schema", func(t *testing.T) {
		p := &Parameter{Name: "limit", In: InQuery, Schema: BodySchema(SchemaRef("Pet"))}
		err := p.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `parameter "limit" with in=query cannot carry a body schema`)
	})

	t.Run("body with body schema", func(t *testing.T) {
		p := &Parameter{Name: "payload", In: InBody, Schema: BodySchema(SchemaRef("Pet"))}
		require.NoError(t, p.Validate())
	})
}

func TestParameterValidateFileOnlyInFormData(t *testing.T) {
	other := &ParamOtherSchema{}
	other.Type = TypeFile

	p := &Parameter{Name: "upload", In: InQuery, Schema: OtherSchema(other)}
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `type "file" is only legal for formData parameters`)

	p.In = InFormData
	require.NoError(t, p.Validate())
}

func TestParameterValidateRecursesIntoBodySchema(t *testing.T) {
	bad := &Schema{}
	bad.Type = TypeFile
	p := &Parameter{Name: "payload", In: InBody, Schema: BodySchema(Inline(bad))}
	err := p.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, specerrors.ErrKindMismatch))
}

func TestSchemaValidateRecursesIntoNestedSchemas(t *testing.T) {
	bad := &Schema{}
	bad.Type = TypeFile

	t.Run("properties", func(t *testing.T) {
		s := &Schema{Properties: map[string]*OrRef[Schema]{"f": Inline(bad)}}
		require.Error(t, s.Validate())
	})
	t.Run("additionalProperties", func(t *testing.T) {
		s := &Schema{AdditionalProperties: Inline(bad)}
		require.Error(t, s.Validate())
	})
	t.Run("allOf", func(t *testing.T) {
		s := &Schema{AllOf: []*OrRef[Schema]{SchemaRef("Base"), Inline(bad)}}
		require.Error(t, s.Validate())
	})
	t.Run("tuple items", func(t *testing.T) {
		s := &Schema{Items: TupleItems(SchemaRef("A"), Inline(bad))}
		s.Type = TypeArray
		require.Error(t, s.Validate())
	})
	t.Run("references are not chased", func(t *testing.T) {
		s := &Schema{Properties: map[string]*OrRef[Schema]{"f": SchemaRef("Ghost")}}
		require.NoError(t, s.Validate())
	})
}

func TestOperationValidateParameterList(t *testing.T) {
	op := &Operation{
		Parameters: []*Parameter{
			{Name: "limit", In: InQuery, Schema: OtherSchema(&ParamOtherSchema{})},
			{Name: "limit", In: InQuery, Schema: OtherSchema(&ParamOtherSchema{})},
		},
	}
	err := op.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, specerrors.ErrDuplicateParameter))
}

func TestPathItemValidateReportsMethod(t *testing.T) {
	pi := &PathItem{
		Get: &Operation{
			Parameters: []*Parameter{{Name: "id", In: InPath}},
		},
	}
	err := pi.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get:")
	assert.True(t, errors.Is(err, specerrors.ErrInvalidRequiredFlag))
}

func TestResponseValidate(t *testing.T) {
	bad := &Schema{}
	bad.Type = TypeFile
	r := &Response{Description: "ok", Schema: Inline(bad)}
	require.Error(t, r.Validate())

	h := &Header{CollectionFormat: CollectionMulti}
	r = &Response{Description: "ok", Headers: map[string]*Header{"X-Rate-Limit": h}}
	err := r.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header X-Rate-Limit:")
}

func TestDocumentValidateDuplicateOperationID(t *testing.T) {
	doc := NewDocument()
	doc.EnsurePath("/pets").Get = &Operation{OperationID: "listPets"}
	doc.EnsurePath("/pets/{id}").Get = &Operation{OperationID: "listPets"}

	err := doc.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate operationId "listPets"`)
}

func TestDocumentValidateWalksTables(t *testing.T) {
	bad := &Schema{}
	bad.Type = TypeFile

	doc := NewDocument()
	doc.Definitions = map[string]*Schema{"Bad": bad}
	err := doc.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "definition Bad:")

	doc = NewDocument()
	doc.Parameters = map[string]*Parameter{
		"id": {Name: "id", In: InPath},
	}
	err = doc.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parameter definition id:")

	doc = NewDocument()
	doc.Responses = map[string]*Response{
		"Bad": {Description: "bad", Schema: Inline(bad)},
	}
	err = doc.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "response definition Bad:")
}

func TestDocumentValidateClean(t *testing.T) {
	doc := NewDocument()
	doc.Info = &Info{Title: "Petstore", Version: "1.0.0"}
	item := doc.EnsurePath("/pets")
	item.Get = &Operation{
		OperationID: "listPets",
		Responses:   &Responses{},
	}
	item.Get.Index().Set("200", Inline(&Response{Description: "ok", Schema: SchemaRef("Pet")}))
	doc.Definitions = map[string]*Schema{"Pet": {Title: "Pet"}}
	require.NoError(t, doc.Validate())
}
