package spec

import "fmt"

// DataType is the primitive type name carried by a shared attribute block.
type DataType string

// Data type constants (used in the Type field of every schema dialect)
const (
	// TypeString is the JSON string type
	TypeString DataType = "string"
	// TypeNumber is the JSON number type
	TypeNumber DataType = "number"
	// TypeInteger is the JSON integer type
	TypeInteger DataType = "integer"
	// TypeBoolean is the JSON boolean type
	TypeBoolean DataType = "boolean"
	// TypeArray is the JSON array type
	TypeArray DataType = "array"
	// TypeObject is the JSON object type (full-schema dialect only)
	TypeObject DataType = "object"
	// TypeFile is the Swagger 2.0 file pseudo-type (formData parameters only)
	TypeFile DataType = "file"
)

// Location identifies where a parameter is passed.
type Location string

// Parameter location constants (used in the Parameter.In field)
const (
	// InQuery indicates the parameter is passed in the query string
	InQuery Location = "query"
	// InHeader indicates the parameter is passed in a request header
	InHeader Location = "header"
	// InPath indicates the parameter is part of the URL path
	InPath Location = "path"
	// InFormData indicates the parameter is passed as form data
	InFormData Location = "formData"
	// InBody indicates the parameter is the request body
	InBody Location = "body"
)

// ParseLocation validates a location token. Unknown tokens are a
// deserialization error, never a default.
func ParseLocation(s string) (Location, error) {
	switch l := Location(s); l {
	case InQuery, InHeader, InPath, InFormData, InBody:
		return l, nil
	}
	return "", fmt.Errorf("unknown parameter location: %q", s)
}

// CollectionFormat describes how an array-typed parameter serializes its
// elements.
type CollectionFormat string

// Collection format constants (used in the CollectionFormat field of the
// parameter and header dialects)
const (
	// CollectionCSV serializes elements comma-separated: foo,bar
	CollectionCSV CollectionFormat = "csv"
	// CollectionSSV serializes elements space-separated: foo bar
	CollectionSSV CollectionFormat = "ssv"
	// CollectionTSV serializes elements tab-separated
	CollectionTSV CollectionFormat = "tsv"
	// CollectionPipes serializes elements pipe-separated: foo|bar
	CollectionPipes CollectionFormat = "pipes"
	// CollectionMulti repeats the parameter per element: foo=1&foo=2
	// (query and formData parameters only)
	CollectionMulti CollectionFormat = "multi"
)

// ParseCollectionFormat validates a collection-format token. Unknown tokens
// are a deserialization error, never a default.
func ParseCollectionFormat(s string) (CollectionFormat, error) {
	switch f := CollectionFormat(s); f {
	case CollectionCSV, CollectionSSV, CollectionTSV, CollectionPipes, CollectionMulti:
		return f, nil
	}
	return "", fmt.Errorf("unknown collection format: %q", s)
}

// legalTypes maps each dialect name to the data types it admits. Dialect
// restrictions the type system cannot carry (Type is one shared attribute
// with one Go type) are enforced here at validation time.
var legalTypes = map[string]map[DataType]bool{
	"schema": {
		TypeString: true, TypeNumber: true, TypeInteger: true,
		TypeBoolean: true, TypeArray: true, TypeObject: true,
	},
	"parameter": {
		TypeString: true, TypeNumber: true, TypeInteger: true,
		TypeBoolean: true, TypeArray: true, TypeFile: true,
	},
	"header": {
		TypeString: true, TypeNumber: true, TypeInteger: true,
		TypeBoolean: true, TypeArray: true,
	},
}
