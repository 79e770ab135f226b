package spec

// SecurityRequirement lists the security schemes required to execute an
// operation, mapping security scheme names to the scopes required (OAuth2)
// or an empty list (basic, apiKey).
type SecurityRequirement map[string][]string

// SecuritySchemeType identifies the variant of a security scheme.
type SecuritySchemeType string

// Security scheme type constants
const (
	// SecurityBasic is HTTP Basic authentication
	SecurityBasic SecuritySchemeType = "basic"
	// SecurityAPIKey is an API key passed in a header or query parameter
	SecurityAPIKey SecuritySchemeType = "apiKey"
	// SecurityOAuth2 is one of the four OAuth2 flows
	SecurityOAuth2 SecuritySchemeType = "oauth2"
)

// APIKeyLocation restricts where an API key may be passed.
type APIKeyLocation string

// API key location constants
const (
	// APIKeyInQuery passes the key as a query parameter
	APIKeyInQuery APIKeyLocation = "query"
	// APIKeyInHeader passes the key in a request header
	APIKeyInHeader APIKeyLocation = "header"
)

// OAuth2FlowType identifies the OAuth2 grant flow.
type OAuth2FlowType string

// OAuth2 flow constants
const (
	// OAuth2Implicit is the implicit grant flow
	OAuth2Implicit OAuth2FlowType = "implicit"
	// OAuth2Password is the resource owner password flow
	OAuth2Password OAuth2FlowType = "password"
	// OAuth2Application is the client credentials flow
	OAuth2Application OAuth2FlowType = "application"
	// OAuth2AccessCode is the authorization code flow
	OAuth2AccessCode OAuth2FlowType = "accessCode"
)

// APIKeyScheme is the payload of the apiKey variant.
type APIKeyScheme struct {
	// Name is the header or query parameter name carrying the key.
	Name string `yaml:"name" json:"name"`
	// In is where the key is passed: query or header.
	In APIKeyLocation `yaml:"in" json:"in"`
}

// OAuth2Scheme is the payload of the oauth2 variant. Which URLs apply
// depends on the flow: implicit uses the authorization URL, password and
// application use the token URL, accessCode uses both.
type OAuth2Scheme struct {
	Flow             OAuth2FlowType    `yaml:"flow" json:"flow"`
	AuthorizationURL string            `yaml:"authorizationUrl,omitempty" json:"authorizationUrl,omitempty"`
	TokenURL         string            `yaml:"tokenUrl,omitempty" json:"tokenUrl,omitempty"`
	Scopes           map[string]string `yaml:"scopes" json:"scopes"`
}

// SecurityScheme is the closed sum over the Swagger 2.0 security scheme
// variants: basic, apiKey, and oauth2. The variant is fixed at construction
// and the payloads are disjoint; narrowing against the wrong variant yields
// ok=false, never a fault.
type SecurityScheme struct {
	Description string

	typ    SecuritySchemeType
	apiKey *APIKeyScheme
	oauth2 *OAuth2Scheme

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any
}

// BasicAuth builds the basic variant.
func BasicAuth() *SecurityScheme {
	return &SecurityScheme{typ: SecurityBasic}
}

// APIKeyAuth builds the apiKey variant.
func APIKeyAuth(name string, in APIKeyLocation) *SecurityScheme {
	return &SecurityScheme{typ: SecurityAPIKey, apiKey: &APIKeyScheme{Name: name, In: in}}
}

// OAuth2Auth builds the oauth2 variant.
func OAuth2Auth(flow *OAuth2Scheme) *SecurityScheme {
	return &SecurityScheme{typ: SecurityOAuth2, oauth2: flow}
}

// Type returns the variant tag fixed at construction.
func (s *SecurityScheme) Type() SecuritySchemeType {
	return s.typ
}

// APIKey narrows to the apiKey variant.
func (s *SecurityScheme) APIKey() (*APIKeyScheme, bool) {
	if s == nil || s.apiKey == nil {
		return nil, false
	}
	return s.apiKey, true
}

// OAuth2 narrows to the oauth2 variant.
func (s *SecurityScheme) OAuth2() (*OAuth2Scheme, bool) {
	if s == nil || s.oauth2 == nil {
		return nil, false
	}
	return s.oauth2, true
}
