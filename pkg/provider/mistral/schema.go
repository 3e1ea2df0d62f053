package mistral

///////////////////////////////////////////////////////////////////////////////
// TYPES - Mistral function calling wire format
//
// Reference: https://docs.mistral.ai/capabilities/function_calling
//            https://docs.mistral.ai/api/#tag/chat/operation/chat_completion_v1_chat_completions_post

// Tool is an entry of the "tools" array of a chat completion request
type Tool struct {
	Type     string      `json:"type"`
	Function FunctionDef `json:"function"`
}

// FunctionDef describes the function the model may call
type FunctionDef struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Parameters  Parameters `json:"parameters"`
}

// Parameters is the JSON schema object for the function arguments
type Parameters struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required"`
}

// Property is the JSON schema for a single argument
type Property struct {
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitzero"`
	Default     any      `json:"default,omitempty"`
	Items       *Items   `json:"items,omitempty"`
}

// Items is the JSON schema for the elements of an array argument
type Items struct {
	Type string `json:"type"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Name is the provider identifier
	Name = "mistral"
)

const (
	toolTypeFunction = "function"
	schemaTypeObject = "object"
)
