package google

///////////////////////////////////////////////////////////////////////////////
// TYPES - Gemini REST API function declaration wire format
//
// Reference: https://ai.google.dev/api/caching#FunctionDeclaration
//            https://ai.google.dev/api/caching#Schema

// FunctionDeclaration is an entry of the "functionDeclarations" array of a
// generateContent tool
type FunctionDeclaration struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Parameters  Schema `json:"parameters"`
}

// Schema is the OpenAPI subset object for the function parameters. Type
// tags use the upper-case Gemini Type enum.
type Schema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required"`
}

// Property is the schema for a single function argument
type Property struct {
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitzero"`
	Default     any      `json:"default,omitempty"`
	Items       *Items   `json:"items,omitempty"`
}

// Items is the schema for the elements of an array argument
type Items struct {
	Type string `json:"type"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Name is the provider identifier
	Name = "gemini"
)

const (
	geminiTypeObject = "OBJECT"
)
