package schema_test

import (
	"testing"

	// Packages
	schema "github.com/mutablelogic/go-toolschema/pkg/schema"
	uitable "github.com/mutablelogic/go-toolschema/pkg/ui/table"
	assert "github.com/stretchr/testify/assert"
)

// Parameter rows include nested properties and JSON defaults
func Test_table_001(t *testing.T) {
	assert := assert.New(t)

	table := schema.ParameterTable{
		Name: "search",
		Parameters: schema.Parameters{
			{Name: "query", ToolParameter: schema.ToolParameter{Type: schema.KindString, Required: true, Description: "Search terms"}},
			{Name: "prefix", ToolParameter: schema.ToolParameter{Type: schema.KindString, Default: ""}},
			{Name: "tags", ToolParameter: schema.ToolParameter{Type: schema.KindArray, Items: schema.KindString, Enum: []string{"a", "b"}}},
			{Name: "options", ToolParameter: schema.ToolParameter{Type: schema.KindObject, Properties: schema.Parameters{
				{Name: "limit", ToolParameter: schema.ToolParameter{Type: schema.KindNumber, Default: 10}},
			}}},
		},
	}
	assert.Equal(5, table.Len())
	assert.Equal([]any{uitable.Bold{Value: "query"}, "string", true, "", []string(nil), "Search terms"}, table.Row(0))
	assert.Equal([]any{"prefix", "string", false, `""`, []string(nil), ""}, table.Row(1))
	assert.Equal([]any{"tags", "array<string>", false, "", []string{"a", "b"}, ""}, table.Row(2))
	assert.Equal("options.limit", table.Row(4)[0])
	assert.Equal("10", table.Row(4)[3])
}

// Provider rows have the name and envelope
func Test_table_002(t *testing.T) {
	assert := assert.New(t)

	table := schema.ProviderTable{{Name: "openai", Envelope: "function"}}
	assert.Equal(1, table.Len())
	assert.Equal([]any{"openai", "function"}, table.Row(0))
	assert.Len(table.Header(), 2)
}
