package schema_test

import (
	"path/filepath"
	"testing"

	// Packages
	toolschema "github.com/mutablelogic/go-toolschema"
	schema "github.com/mutablelogic/go-toolschema/pkg/schema"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

// A single JSON tool definition
func Test_file_001(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tools, err := schema.ReadFile(filepath.Join("testdata", "weather.json"))
	require.NoError(err)
	require.Len(tools, 1)
	assert.Equal("get_weather", tools[0].Name)
	assert.Equal([]string{"location", "units", "days"}, tools[0].Parameters.Names())
	assert.Equal([]string{"location"}, tools[0].Parameters.Required())

	units, _ := tools[0].Parameters.Get("units")
	assert.Equal([]string{"celsius", "fahrenheit"}, units.Enum)
	assert.Equal("celsius", units.Default)
	days, _ := tools[0].Parameters.Get("days")
	assert.Equal(float64(0), days.Default)
}

// A list of JSON tool definitions
func Test_file_002(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tools, err := schema.ReadFile(filepath.Join("testdata", "tools.json"))
	require.NoError(err)
	require.Len(tools, 2)
	assert.Equal("get_time", tools[0].Name)
	assert.Empty(tools[0].Parameters)
	assert.Equal("tag_items", tools[1].Name)
	assert.Equal([]string{"tags", "ids"}, tools[1].Parameters.Names())
	tags, _ := tools[1].Parameters.Get("tags")
	assert.Equal(schema.KindArray, tags.Type)
	assert.Equal(schema.KindString, tags.Items)
}

// A single YAML tool definition matches the JSON one
func Test_file_003(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tools, err := schema.ReadFile(filepath.Join("testdata", "weather.yaml"))
	require.NoError(err)
	require.Len(tools, 1)
	assert.Equal("get_weather", tools[0].Name)
	assert.Equal("Get the current weather for a location", tools[0].Description)
	assert.Equal([]string{"location", "units", "days"}, tools[0].Parameters.Names())
	assert.Equal([]string{"location"}, tools[0].Parameters.Required())
	days, _ := tools[0].Parameters.Get("days")
	assert.Equal(0, days.Default)
}

// A list of YAML tool definitions, with a .yml extension
func Test_file_004(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tools, err := schema.ReadFile(filepath.Join("testdata", "tools.yml"))
	require.NoError(err)
	require.Len(tools, 2)
	assert.Equal([]string{"tags", "ids", "options"}, tools[1].Parameters.Names())

	tags, _ := tools[1].Parameters.Get("tags")
	assert.Equal(schema.KindArray, tags.Type)
	options, _ := tools[1].Parameters.Get("options")
	assert.Equal([]string{"dry_run"}, options.Properties.Names())
}

// Invalid files and extensions are rejected
func Test_file_005(t *testing.T) {
	assert := assert.New(t)

	_, err := schema.ReadFile(filepath.Join("testdata", "invalid_type.json"))
	assert.ErrorIs(err, toolschema.ErrBadParameter)
	assert.Contains(err.Error(), "invalid_type.json")

	_, err = schema.ReadFile(filepath.Join("testdata", "tool.txt"))
	assert.ErrorIs(err, toolschema.ErrBadParameter)

	_, err = schema.ReadFile(filepath.Join("testdata", "missing.json"))
	assert.Error(err)
}

// Decode handles empty documents and unknown formats
func Test_file_006(t *testing.T) {
	assert := assert.New(t)

	tools, err := schema.Decode([]byte(""), schema.FormatYAML)
	assert.NoError(err)
	assert.NotNil(tools)
	assert.Empty(tools)

	tools, err = schema.Decode([]byte(" [ ] "), schema.FormatJSON)
	assert.NoError(err)
	assert.Empty(tools)

	_, err = schema.Decode([]byte("{}"), "toml")
	assert.ErrorIs(err, toolschema.ErrBadParameter)
}
