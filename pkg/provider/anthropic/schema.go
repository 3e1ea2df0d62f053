package anthropic

///////////////////////////////////////////////////////////////////////////////
// TYPES - Anthropic tool use wire format
//
// Reference: https://docs.anthropic.com/en/docs/build-with-claude/tool-use
//            https://docs.anthropic.com/en/api/messages

// Tool is an entry of the "tools" array of a messages request
type Tool struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema InputSchema `json:"input_schema"`
}

// InputSchema is the JSON schema object for the tool input
type InputSchema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required"`
}

// Property is the JSON schema for a single input field
type Property struct {
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitzero"`
	Default     any      `json:"default,omitempty"`
	Items       *Items   `json:"items,omitempty"`
}

// Items is the JSON schema for the elements of an array field
type Items struct {
	Type string `json:"type"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Name is the provider identifier
	Name = "anthropic"
)

const (
	inputSchemaTypeObject = "object"
)
