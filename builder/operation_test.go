package builder

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swagspec/swagspec/spec"
	"github.com/swagspec/swagspec/specerrors"
)

func TestAddOperation_TypedParameters(t *testing.T) {
	b := New().SetTitle("Test").SetVersion("1.0.0")
	b.AddOperation("get", "/pets/{id}",
		WithOperationID("getPet"),
		WithPathParam("id", spec.TypeInteger, WithParamFormat("int64")),
		WithQueryParam("verbose", spec.TypeBoolean, WithParamDefault(false)),
		WithHeaderParam("X-Request-ID", spec.TypeString),
	)

	doc := build(t, b)
	op := doc.Path("/pets/{id}").Get
	require.NotNil(t, op)
	require.Len(t, op.Parameters, 3)

	id := op.Parameters[0]
	assert.Equal(t, "id", id.Name)
	assert.Equal(t, spec.InPath, id.In)
	assert.True(t, id.Required, "path parameters are always required")

	other, ok := id.Schema.Other()
	require.True(t, ok)
	assert.Equal(t, spec.TypeInteger, other.Type)
	assert.Equal(t, "int64", other.Format)

	verbose := op.Parameters[1]
	assert.Equal(t, spec.InQuery, verbose.In)
	assert.False(t, verbose.Required)
	other, ok = verbose.Schema.Other()
	require.True(t, ok)
	assert.Equal(t, false, other.Default)
}

func TestAddOperation_BodyParameter(t *testing.T) {
	b := New().SetTitle("Test").SetVersion("1.0.0")
	ref := b.AddDefinition("Pet", &spec.Schema{
		SchemaCommon: spec.SchemaCommon[spec.SchemaKind]{Type: spec.TypeObject},
	})

	b.AddOperation("post", "/pets",
		WithBodyParam("body", ref, WithParamRequired(true)),
	)

	doc := build(t, b)
	op := doc.Path("/pets").Post
	require.Len(t, op.Parameters, 1)

	body := op.Parameters[0]
	assert.Equal(t, spec.InBody, body.In)
	assert.True(t, body.Required)

	schema, ok := body.Schema.Body()
	require.True(t, ok)
	r, isRef := schema.Ref()
	require.True(t, isRef)
	assert.Equal(t, "Pet", r.Key())

	_, isOther := body.Schema.Other()
	assert.False(t, isOther)
}

func TestAddOperation_ArrayParameter(t *testing.T) {
	items := &spec.PrimitiveItems[spec.ParamKind]{}
	items.Type = spec.TypeString

	b := New().SetTitle("Test").SetVersion("1.0.0")
	b.AddOperation("get", "/pets",
		WithQueryParam("tags", spec.TypeArray,
			WithParamItems(items),
			WithParamCollectionFormat(spec.CollectionCSV),
		),
	)

	doc := build(t, b)
	op := doc.Path("/pets").Get
	other, ok := op.Parameters[0].Schema.Other()
	require.True(t, ok)
	assert.Equal(t, spec.TypeArray, other.Type)
	assert.Equal(t, spec.CollectionCSV, other.CollectionFormat)
	require.NotNil(t, other.Items)
	assert.Equal(t, spec.TypeString, other.Items.Type)
}

func TestAddOperation_FileParameter(t *testing.T) {
	b := New().SetTitle("Test").SetVersion("1.0.0")
	b.AddOperation("post", "/upload",
		WithConsumes("multipart/form-data"),
		WithFileParam("file", WithParamRequired(true)),
	)

	doc := build(t, b)
	op := doc.Path("/upload").Post
	other, ok := op.Parameters[0].Schema.Other()
	require.True(t, ok)
	assert.Equal(t, spec.TypeFile, other.Type)
	assert.Equal(t, spec.InFormData, op.Parameters[0].In)
}

func TestAddOperation_DuplicateParameter(t *testing.T) {
	b := New().SetTitle("Test").SetVersion("1.0.0")
	b.AddOperation("get", "/pets",
		WithQueryParam("limit", spec.TypeInteger),
		WithQueryParam("limit", spec.TypeInteger),
	)

	_, err := b.Build()
	require.Error(t, err)
	assert.True(t, errors.Is(err, specerrors.ErrDuplicateParameter))
	assert.True(t, errors.Is(err, specerrors.ErrConfig))
}

func TestAddOperation_ConstraintViolations(t *testing.T) {
	tests := []struct {
		name string
		opt  ParamOption
		want string
	}{
		{
			name: "minimum greater than maximum",
			opt:  WithParamRange(100, 1),
			want: "minimum",
		},
		{
			name: "minLength greater than maxLength",
			opt:  WithParamLength(50, 10),
			want: "minLength",
		},
		{
			name: "negative minItems",
			opt:  WithParamItemsRange(-1, 5),
			want: "negative",
		},
		{
			name: "zero multipleOf",
			opt:  WithParamMultipleOf(0),
			want: "multipleOf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New().SetTitle("Test").SetVersion("1.0.0")
			b.AddOperation("get", "/pets",
				WithQueryParam("p", spec.TypeInteger, tt.opt),
			)

			_, err := b.Build()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)

			var be *BuilderError
			require.True(t, errors.As(err, &be))
			assert.Equal(t, ComponentParameter, be.Component)
		})
	}
}

func TestValidateParamConstraints_Valid(t *testing.T) {
	minimum, maximum := 1.0, 100.0
	minLen, maxLen := 1, 50
	multiple := 5.0
	cfg := &paramConfig{
		minimum:    &minimum,
		maximum:    &maximum,
		minLength:  &minLen,
		maxLength:  &maxLen,
		pattern:    "^[a-z]+$",
		multipleOf: &multiple,
	}
	assert.NoError(t, validateParamConstraints(cfg))
}

func TestAddOperation_Responses(t *testing.T) {
	b := New().SetTitle("Test").SetVersion("1.0.0")
	b.AddOperation("get", "/pets",
		WithResponse(200, WithResponseDescription("ok")),
		WithResponse(404, WithResponseDescription("not found")),
		WithDefaultResponse(WithResponseDescription("unexpected error")),
		WithResponseRef(500, "ServerError"),
	)

	doc := build(t, b)
	op := doc.Path("/pets").Get
	require.NotNil(t, op.Responses)

	ix := op.Index()
	assert.Equal(t, 3, ix.Len())
	assert.Equal(t, []spec.StatusCode{"200", "404", "500"}, ix.Codes())

	require.NotNil(t, op.Responses.Default)
	def, ok := op.Responses.Default.Value()
	require.True(t, ok)
	assert.Equal(t, "unexpected error", def.Description)

	r500, ok := ix.Get("500")
	require.True(t, ok)
	ref, isRef := r500.Ref()
	require.True(t, isRef)
	assert.Equal(t, "#/responses/ServerError", ref.Pointer)
}

func TestAddOperation_DefaultResponseOnly(t *testing.T) {
	b := New().SetTitle("Test").SetVersion("1.0.0")
	b.AddOperation("get", "/health",
		WithDefaultResponse(WithResponseDescription("always ok")),
	)

	doc := build(t, b)
	op := doc.Path("/health").Get
	require.NotNil(t, op.Responses)
	assert.Equal(t, 0, op.Index().Len())

	require.NotNil(t, op.Responses.Default)
	def, ok := op.Responses.Default.Value()
	require.True(t, ok)
	assert.Equal(t, "always ok", def.Description)
}

func TestAddOperation_ResponseLastWriteWins(t *testing.T) {
	b := New().SetTitle("Test").SetVersion("1.0.0")
	b.AddOperation("get", "/pets",
		WithResponse(200, WithResponseDescription("first")),
		WithResponse(200, WithResponseDescription("second")),
	)

	doc := build(t, b)
	ix := doc.Path("/pets").Get.Index()
	require.Equal(t, 1, ix.Len())

	resp, ok := ix.Get("200")
	require.True(t, ok)
	v, _ := resp.Value()
	assert.Equal(t, "second", v.Description)
}

func TestAddOperation_ResponseHeaders(t *testing.T) {
	limit := &spec.Header{}
	limit.Type = spec.TypeInteger

	b := New().SetTitle("Test").SetVersion("1.0.0")
	b.AddOperation("get", "/pets",
		WithResponse(200,
			WithResponseDescription("ok"),
			WithResponseHeader("X-Rate-Limit", limit),
			WithResponseExample("application/json", map[string]any{"id": 1}),
		),
	)

	doc := build(t, b)
	resp, ok := doc.Path("/pets").Get.Index().Get("200")
	require.True(t, ok)
	v, _ := resp.Value()
	require.Contains(t, v.Headers, "X-Rate-Limit")
	assert.Equal(t, spec.TypeInteger, v.Headers["X-Rate-Limit"].Type)
	assert.Contains(t, v.Examples, "application/json")
}

func TestAddOperation_SecurityOverrides(t *testing.T) {
	b := New().SetTitle("Test").SetVersion("1.0.0")
	b.AddSecurityDefinition("oauth", spec.OAuth2Auth(&spec.OAuth2Scheme{
		Flow:   spec.OAuth2Implicit,
		Scopes: map[string]string{"read": "read access"},
	}))
	b.AddSecurityRequirement(spec.SecurityRequirement{"oauth": {"read"}})

	b.AddOperation("get", "/public", WithNoSecurity())
	b.AddOperation("get", "/private")

	doc := build(t, b)

	public := doc.Path("/public").Get
	require.NotNil(t, public.Security)
	assert.Empty(t, public.Security, "explicit empty list removes document security")
	assert.Empty(t, public.EffectiveSecurity(doc))

	private := doc.Path("/private").Get
	assert.Nil(t, private.Security)
	assert.Equal(t, doc.Security, private.EffectiveSecurity(doc))
}

// recordingLogger keeps warn messages for assertions.
type recordingLogger struct {
	NopLogger
	warns []string
}

func (l *recordingLogger) Warn(msg string, _ ...any) { l.warns = append(l.warns, msg) }

func TestAddOperation_InvalidMediaType(t *testing.T) {
	b := New().SetTitle("Test").SetVersion("1.0.0")
	b.AddOperation("post", "/pets",
		WithOperationID("createPet"),
		WithConsumes("*/json"),
	)

	_, err := b.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid media type "*/json"`)

	var be *BuilderError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, ComponentOperation, be.Component)
	assert.Equal(t, "consumes", be.Field)
	assert.Equal(t, "createPet", be.OperationID)
}

func TestAddOperation_NonStandardStatusCodeWarning(t *testing.T) {
	rl := &recordingLogger{}
	b := New(WithLogger(rl)).SetTitle("Test").SetVersion("1.0.0")
	b.AddOperation("get", "/pets",
		WithResponse(200, WithResponseDescription("ok")),
		WithResponse(299, WithResponseDescription("vendor success")),
	)

	build(t, b)
	require.Len(t, rl.warns, 1)
	assert.Equal(t, "non-standard status code", rl.warns[0])
}

func TestAddOperation_MediaTypeOverrides(t *testing.T) {
	b := New().SetTitle("Test").SetVersion("1.0.0").
		SetConsumes("application/json").
		SetProduces("application/json")

	b.AddOperation("post", "/xml", WithConsumes("application/xml"))
	b.AddOperation("get", "/inherit")
	b.AddOperation("get", "/none", WithProduces())

	doc := build(t, b)

	assert.Equal(t, []string{"application/xml"}, doc.Path("/xml").Post.EffectiveConsumes(doc))

	inherit := doc.Path("/inherit").Get
	assert.Nil(t, inherit.Consumes)
	assert.Equal(t, []string{"application/json"}, inherit.EffectiveConsumes(doc))

	none := doc.Path("/none").Get
	require.NotNil(t, none.Produces, "explicit clear must survive as a non-nil empty list")
	assert.Empty(t, none.EffectiveProduces(doc))
}

func TestAddOperation_PrebuiltParameter(t *testing.T) {
	param := &spec.Parameter{
		Name:     "token",
		In:       spec.InHeader,
		Required: true,
	}
	other := &spec.ParamOtherSchema{}
	other.Type = spec.TypeString
	param.Schema = spec.OtherSchema(other)

	b := New().SetTitle("Test").SetVersion("1.0.0")
	b.AddOperation("get", "/pets", WithParameter(param))

	doc := build(t, b)
	require.Len(t, doc.Path("/pets").Get.Parameters, 1)
	assert.Same(t, param, doc.Path("/pets").Get.Parameters[0])
}

func TestAddOperation_Extensions(t *testing.T) {
	b := New().SetTitle("Test").SetVersion("1.0.0")
	b.AddOperation("get", "/pets",
		WithOperationExtension("x-rate-limit", 100),
	)

	doc := build(t, b)
	assert.Equal(t, 100, doc.Path("/pets").Get.Extra["x-rate-limit"])
}
