package openai

///////////////////////////////////////////////////////////////////////////////
// TYPES - OpenAI function calling wire format
//
// Reference: https://platform.openai.com/docs/guides/function-calling
//            https://platform.openai.com/docs/api-reference/chat/create#chat-create-tools

// Tool is an entry of the "tools" array of a chat completion request
type Tool struct {
	Type     string   `json:"type"`
	Function Function `json:"function"`
}

// Function describes the function the model may call
type Function struct {
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
	Name = "openai"
)

const (
	toolTypeFunction = "function"
	typeObject       = "object"
)
