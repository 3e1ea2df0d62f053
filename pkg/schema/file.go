package schema

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	// Packages
	toolschema "github.com/mutablelogic/go-toolschema"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ReadFile reads tool definitions from a JSON or YAML file. The format is
// determined by the file extension. The file can contain a single tool
// definition or a list of definitions.
func ReadFile(path string) ([]ToolDefinition, error) {
	format, err := formatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tools, err := Decode(data, format)
	if err != nil {
		return nil, toolschema.ErrBadParameter.Withf("%s: %v", filepath.Base(path), err)
	}
	return tools, nil
}

// Decode decodes one or more tool definitions in the given format
func Decode(data []byte, format string) ([]ToolDefinition, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	default:
		return nil, toolschema.ErrBadParameter.Withf("unsupported format %q", format)
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func formatForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", toolschema.ErrBadParameter.Withf("unsupported file extension: %q", filepath.Base(path))
	}
}

func decodeJSON(data []byte) ([]ToolDefinition, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var tools []ToolDefinition
		if err := json.Unmarshal(data, &tools); err != nil {
			return nil, err
		}
		return tools, nil
	}

	var tool ToolDefinition
	if err := json.Unmarshal(data, &tool); err != nil {
		return nil, err
	}
	return []ToolDefinition{tool}, nil
}

func decodeYAML(data []byte) ([]ToolDefinition, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	} else if len(doc.Content) == 0 {
		return []ToolDefinition{}, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.SequenceNode {
		var tools []ToolDefinition
		if err := root.Decode(&tools); err != nil {
			return nil, err
		}
		return tools, nil
	}

	var tool ToolDefinition
	if err := root.Decode(&tool); err != nil {
		return nil, err
	}
	return []ToolDefinition{tool}, nil
}
