package httpwire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMethod(t *testing.T) {
	for _, method := range Methods {
		assert.True(t, IsMethod(method), method)
	}
	assert.False(t, IsMethod("trace"))
	assert.False(t, IsMethod("connect"))
	assert.False(t, IsMethod("GET")) // lowercase only
	assert.False(t, IsMethod(""))
}

func TestValidateStatusCode(t *testing.T) {
	valid := []string{"default", "100", "200", "404", "599", "x-custom", "x-"}
	for _, code := range valid {
		assert.True(t, ValidateStatusCode(code), code)
	}

	invalid := []string{"", "99", "600", "1000", "20", "2xx", "abc", "Default", "-200", "2 0"}
	for _, code := range invalid {
		assert.False(t, ValidateStatusCode(code), code)
	}
}

func TestIsStandardStatusCode(t *testing.T) {
	assert.True(t, IsStandardStatusCode("200"))
	assert.True(t, IsStandardStatusCode("418"))
	assert.False(t, IsStandardStatusCode("299"))
	assert.False(t, IsStandardStatusCode("default"))
}

func TestIsValidMediaType(t *testing.T) {
	valid := []string{
		"application/json",
		"application/json; charset=utf-8",
		"text/plain",
		"*/*",
		"text/*",
		"multipart/form-data",
	}
	for _, mt := range valid {
		assert.True(t, IsValidMediaType(mt), mt)
	}

	invalid := []string{"*/json", "/*", "not a media type"}
	for _, mt := range invalid {
		assert.False(t, IsValidMediaType(mt), mt)
	}
}
