package entity

import (
	"strings"
	"time"
)

// Transform is an optional per-field value transformation applied while
// copying a source cell into the output template.
type Transform string

const (
	TransformNone  Transform = ""
	TransformTrim  Transform = "TRIM"
	TransformUpper Transform = "UPPER"
	TransformLower Transform = "LOWER"
)

// FieldRule describes how one source column maps onto one target column.
type FieldRule struct {
	Source    string    `json:"source"`
	Target    string    `json:"target"`
	Transform Transform `json:"transform,omitempty"`
	Required  bool      `json:"required,omitempty"`
}

// MappingDefinition is a named, persisted description of how source columns
// correspond to target columns in the output template.
//
// The name is the identifier: saving under an existing name overwrites the
// previous record (last write wins, no versioning).
type MappingDefinition struct {
	Name         string      `json:"name"`
	CreatedAt    time.Time   `json:"created_at"`
	SourceFields []string    `json:"source_fields"`
	TargetFields []string    `json:"target_fields"`
	Rules        []FieldRule `json:"rules"`
}

// Apply runs the rule's transform over a raw cell value.
func (r FieldRule) Apply(value string) string {
	switch r.Transform {
	case TransformTrim:
		return strings.TrimSpace(value)
	case TransformUpper:
		return strings.ToUpper(value)
	case TransformLower:
		return strings.ToLower(value)
	default:
		return value
	}
}

// ParseTransform normalizes a raw transform label. Unknown labels fall back to
// no transformation rather than failing the mapping save.
func ParseTransform(value string) Transform {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case string(TransformTrim):
		return TransformTrim
	case string(TransformUpper):
		return TransformUpper
	case string(TransformLower):
		return TransformLower
	default:
		return TransformNone
	}
}
