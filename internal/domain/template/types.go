// Where: cli/internal/domain/template/types.go
// What: Catalog template domain types.
// Why: Keep catalog data independent from how it is loaded or materialized.
package template

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NodeV4IDSuffix marks catalog entries authored for the Node v4 model.
const NodeV4IDSuffix = "-4.x"

// Template is one scaffoldable catalog entry.
type Template struct {
	ID       string            `json:"id"`
	Metadata Metadata          `json:"metadata"`
	Function map[string]any    `json:"function,omitempty"`
	Files    map[string]string `json:"files,omitempty"`
}

// Metadata describes a template for selection and validation.
type Metadata struct {
	Name                string      `json:"name"`
	Language            string      `json:"language"`
	DefaultFunctionName string      `json:"defaultFunctionName"`
	ProgrammingModel    bool        `json:"programmingModel,omitempty"`
	Extensions          []Extension `json:"extensions,omitempty"`
}

// Extension is a binding extension package required by a template.
type Extension struct {
	ID      string `json:"id"`
	Version string `json:"version"`
}

// Binding is one entry of the function definition's bindings list. The map
// aliases the template's function document, so writes are visible there.
type Binding map[string]any

// Type returns the binding type, or "" when absent.
func (b Binding) Type() string {
	value, _ := b["type"].(string)
	return value
}

// Bindings returns the binding objects of the function definition in order.
// Entries that are not JSON objects are skipped.
func (t Template) Bindings() []Binding {
	raw, ok := t.Function["bindings"].([]any)
	if !ok {
		return nil
	}
	out := make([]Binding, 0, len(raw))
	for _, item := range raw {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, Binding(obj))
		}
	}
	return out
}

// HasExtensions reports whether the template declares extension packages.
func (t Template) HasExtensions() bool {
	return len(t.Metadata.Extensions) > 0
}

// IsNodeV4 reports whether the template id carries the Node v4 suffix.
func (t Template) IsNodeV4() bool {
	return strings.HasSuffix(t.ID, NodeV4IDSuffix)
}

// Clone returns a deep copy so callers can mutate bindings without touching
// the catalog snapshot.
func (t Template) Clone() (Template, error) {
	payload, err := json.Marshal(t)
	if err != nil {
		return Template{}, fmt.Errorf("clone template %s: %w", t.ID, err)
	}
	var out Template
	if err := json.Unmarshal(payload, &out); err != nil {
		return Template{}, fmt.Errorf("clone template %s: %w", t.ID, err)
	}
	return out, nil
}
