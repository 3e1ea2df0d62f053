package schema

import (
	"encoding/json"
	"strings"

	// Packages
	toolschema "github.com/mutablelogic/go-toolschema"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Kind is the primitive type tag of a parameter or of array items
type Kind string

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Kinds returns all valid kinds
func Kinds() []Kind {
	return []Kind{KindString, KindNumber, KindBoolean, KindArray, KindObject}
}

// Valid returns true if the kind is one of the five primitive tags
func (k Kind) Valid() bool {
	switch k {
	case KindString, KindNumber, KindBoolean, KindArray, KindObject:
		return true
	}
	return false
}

// ParseKind normalises case and whitespace, and returns an error if
// the value is not a valid kind. An empty value is returned as-is.
func ParseKind(v string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(v)))
	if k == "" || k.Valid() {
		return k, nil
	}
	return "", toolschema.ErrBadParameter.Withf("invalid type %q", v)
}

func (k Kind) String() string {
	return string(k)
}

///////////////////////////////////////////////////////////////////////////////
// DECODING

func (k *Kind) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return toolschema.ErrBadParameter.Withf("type: %v", err)
	}
	kind, err := ParseKind(v)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var v string
	if err := node.Decode(&v); err != nil {
		return toolschema.ErrBadParameter.Withf("line %d: type: %v", node.Line, err)
	}
	kind, err := ParseKind(v)
	if err != nil {
		return toolschema.ErrBadParameter.Withf("line %d: invalid type %q", node.Line, v)
	}
	*k = kind
	return nil
}
