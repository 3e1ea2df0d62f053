package schema

import (
	"encoding/json"

	// Packages
	uitable "github.com/mutablelogic/go-toolschema/pkg/ui/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ProviderMeta describes a provider and the shape of its tool payload
type ProviderMeta struct {
	Name     string `json:"name"`
	Envelope string `json:"envelope"`
}

// ProviderTable implements table.TableData for a list of providers.
type ProviderTable []ProviderMeta

// ParameterTable implements table.TableData for the parameters of a tool.
// Nested object properties are listed with dotted names.
type ParameterTable ToolDefinition

type parameterRow struct {
	name  string
	param ToolParameter
}

///////////////////////////////////////////////////////////////////////////////
// PROVIDER TABLE (LIST)

func (t ProviderTable) Header() []string {
	return []string{"PROVIDER", "ENVELOPE"}
}

func (t ProviderTable) Len() int {
	return len(t)
}

func (t ProviderTable) Row(i int) []any {
	return []any{t[i].Name, t[i].Envelope}
}

///////////////////////////////////////////////////////////////////////////////
// PARAMETER TABLE (LIST)

func (t ParameterTable) Header() []string {
	return []string{"PARAMETER", "TYPE", "REQUIRED", "DEFAULT", "ENUM", "DESCRIPTION"}
}

func (t ParameterTable) Len() int {
	return len(t.rows())
}

func (t ParameterTable) Row(i int) []any {
	row := t.rows()[i]
	var name any = row.name
	if row.param.Required {
		name = uitable.Bold{Value: row.name}
	}
	return []any{name, typeLabel(row.param), row.param.Required, defaultLabel(row.param.Default), row.param.Enum, row.param.Description}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (t ParameterTable) rows() []parameterRow {
	result := make([]parameterRow, 0, len(t.Parameters))
	for _, param := range t.Parameters {
		result = append(result, parameterRow{param.Name, param.ToolParameter})
		for _, nested := range param.Properties {
			result = append(result, parameterRow{param.Name + "." + nested.Name, nested.ToolParameter})
		}
	}
	return result
}

// typeLabel returns the type with the item type for arrays, ie array<string>
func typeLabel(param ToolParameter) string {
	if param.Type == KindArray && param.Items != "" {
		return string(param.Type) + "<" + string(param.Items) + ">"
	}
	return string(param.Type)
}

// defaultLabel returns the default in JSON form, so that an empty string
// default is distinguished from no default
func defaultLabel(v any) string {
	if v == nil {
		return ""
	}
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
