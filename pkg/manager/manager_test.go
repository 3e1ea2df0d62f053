package manager_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	// Packages
	toolschema "github.com/mutablelogic/go-toolschema"
	manager "github.com/mutablelogic/go-toolschema/pkg/manager"
	provider "github.com/mutablelogic/go-toolschema/pkg/provider"
	schema "github.com/mutablelogic/go-toolschema/pkg/schema"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
	trace "go.opentelemetry.io/otel/trace"
	noop "go.opentelemetry.io/otel/trace/noop"
)

///////////////////////////////////////////////////////////////////////////////
// HELPERS

// recorder is a tracer which records the names of started spans
type recorder struct {
	noop.Tracer
	sync.Mutex
	names []string
}

func (r *recorder) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	r.Lock()
	r.names = append(r.names, name)
	r.Unlock()
	return r.Tracer.Start(ctx, name, opts...)
}

func (r *recorder) started(name string) bool {
	r.Lock()
	defer r.Unlock()
	for _, v := range r.names {
		if strings.Contains(v, name) {
			return true
		}
	}
	return false
}

func tools() []schema.ToolDefinition {
	return []schema.ToolDefinition{
		{
			Name:        "get_weather",
			Description: "Get the weather",
			Parameters: schema.Parameters{
				{Name: "location", ToolParameter: schema.ToolParameter{Type: schema.KindString, Required: true}},
			},
		},
		{Name: "get_time", Description: "Get the time"},
	}
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// A new manager serves all providers
func Test_manager_001(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m, err := manager.New()
	require.NoError(err)

	response, err := m.ListProviders(context.Background())
	require.NoError(err)
	assert.Equal(uint(4), response.Count)
	assert.Equal(provider.Providers(), response.Body)
}

// Providers can be restricted
func Test_manager_002(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m, err := manager.New(manager.WithProviders("gemini"), manager.WithProviders("openai"))
	require.NoError(err)

	response, err := m.ListProviders(context.Background())
	require.NoError(err)
	assert.Equal(uint(2), response.Count)
	assert.Equal([]string{"openai", "gemini"}, response.Body)
}

// Restricted providers are listed in canonical order, not option order
func Test_manager_003(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m, err := manager.New(manager.WithProviders("mistral", "anthropic", "openai"))
	require.NoError(err)

	response, err := m.ListProviders(context.Background())
	require.NoError(err)
	assert.Equal([]string{"openai", "anthropic", "mistral"}, response.Body)
}

// Invalid options are rejected
func Test_manager_004(t *testing.T) {
	assert := assert.New(t)

	_, err := manager.New(manager.WithProviders("cohere"))
	assert.ErrorIs(err, toolschema.ErrUnknownProvider)

	_, err = manager.New(manager.WithProviders("openai", "openai"))
	assert.ErrorIs(err, toolschema.ErrBadParameter)

	_, err = manager.New(manager.WithTracer(nil))
	assert.ErrorIs(err, toolschema.ErrBadParameter)
}

///////////////////////////////////////////////////////////////////////////////
// CONVERT

// Convert returns one payload per tool, in order
func Test_convert_001(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tracer := new(recorder)
	m, err := manager.New(manager.WithTracer(tracer))
	require.NoError(err)

	response, err := m.Convert(context.Background(), schema.ConvertRequest{Provider: "anthropic", Tools: tools()})
	require.NoError(err)
	assert.Equal("anthropic", response.Provider)

	expected, err := provider.ConvertAll(tools(), "anthropic")
	require.NoError(err)
	assert.Equal(expected, response.Tools)
	assert.True(tracer.started("Convert"))
}

// Convert rejects providers which are not served
func Test_convert_002(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m, err := manager.New(manager.WithProviders("openai"))
	require.NoError(err)

	_, err = m.Convert(context.Background(), schema.ConvertRequest{Provider: "mistral", Tools: tools()})
	assert.ErrorIs(err, toolschema.ErrUnknownProvider)
	assert.Contains(err.Error(), "openai")
}

// Convert with no tools returns an empty list
func Test_convert_003(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m, err := manager.New()
	require.NoError(err)

	response, err := m.Convert(context.Background(), schema.ConvertRequest{Provider: "gemini"})
	require.NoError(err)
	assert.NotNil(response.Tools)
	assert.Empty(response.Tools)
}

///////////////////////////////////////////////////////////////////////////////
// CONVERT MANY

// ConvertMany with no providers converts for every served provider
func Test_convertmany_001(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tracer := new(recorder)
	m, err := manager.New(manager.WithTracer(tracer))
	require.NoError(err)

	response, err := m.ConvertMany(context.Background(), schema.ConvertManyRequest{Tools: tools()})
	require.NoError(err)
	require.Len(response.Body, 4)
	for i, id := range provider.Providers() {
		assert.Equal(id, response.Body[i].Provider)
		assert.Len(response.Body[i].Tools, 2)
	}
	assert.True(tracer.started("ConvertMany"))
}

// ConvertMany keeps the order of the requested providers
func Test_convertmany_002(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m, err := manager.New()
	require.NoError(err)

	response, err := m.ConvertMany(context.Background(), schema.ConvertManyRequest{
		Providers: []string{"mistral", "anthropic"},
		Tools:     tools(),
	})
	require.NoError(err)
	require.Len(response.Body, 2)
	assert.Equal("mistral", response.Body[0].Provider)
	assert.Equal("anthropic", response.Body[1].Provider)

	expected, err := provider.ConvertAll(tools(), "mistral")
	require.NoError(err)
	assert.Equal(expected, response.Body[0].Tools)
}

// ConvertMany fails before converting when any provider is unknown
func Test_convertmany_003(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m, err := manager.New()
	require.NoError(err)

	response, err := m.ConvertMany(context.Background(), schema.ConvertManyRequest{
		Providers: []string{"openai", "cohere"},
		Tools:     tools(),
	})
	assert.ErrorIs(err, toolschema.ErrUnknownProvider)
	assert.Nil(response)
}

// ConvertMany returns the context error when cancelled
func Test_convertmany_004(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	m, err := manager.New()
	require.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = m.ConvertMany(ctx, schema.ConvertManyRequest{Tools: tools()})
	assert.ErrorIs(err, context.Canceled)
}
