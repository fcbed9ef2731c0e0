// Where: cli/internal/domain/template/filter.go
// What: Catalog filters and first-match selection.
// Why: Selection must be a stable linear scan so duplicate entries resolve
// the same way on every run.
package template

import (
	"strings"
	"unicode"
)

// Model names the catalog subset eligible for a project.
type Model string

const (
	ModelClassic  Model = "classic"
	ModelPythonV2 Model = "python-v2"
	ModelNodeV4   Model = "node-v4"
)

// Filter decides whether a catalog entry is eligible.
type Filter func(Template) bool

// EqualsIgnoreCaseAndSpace compares two names ignoring case and all
// whitespace.
func EqualsIgnoreCaseAndSpace(a, b string) bool {
	return strings.EqualFold(stripSpace(a), stripSpace(b))
}

func stripSpace(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, value)
}

// MatchFilter builds the filter for name and language under model.
func MatchFilter(model Model, name, language string) Filter {
	base := func(t Template) bool {
		return EqualsIgnoreCaseAndSpace(t.Metadata.Name, name) &&
			strings.EqualFold(t.Metadata.Language, language)
	}
	switch model {
	case ModelPythonV2:
		return func(t Template) bool {
			return t.Metadata.ProgrammingModel && base(t)
		}
	case ModelNodeV4:
		return func(t Template) bool {
			return t.IsNodeV4() && base(t)
		}
	default:
		return base
	}
}

// First returns the first template accepted by filter.
func First(templates []Template, filter Filter) (Template, bool) {
	for _, tpl := range templates {
		if filter(tpl) {
			return tpl, true
		}
	}
	return Template{}, false
}

// Languages returns the distinct template languages in catalog order.
// Duplicates are detected ignoring case; the first spelling wins.
func Languages(templates []Template) []string {
	seen := map[string]bool{}
	var out []string
	for _, tpl := range templates {
		key := strings.ToLower(tpl.Metadata.Language)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tpl.Metadata.Language)
	}
	return out
}

// Names returns the distinct template names for language in catalog order.
func Names(templates []Template, language string) []string {
	seen := map[string]bool{}
	var out []string
	for _, tpl := range templates {
		if !strings.EqualFold(tpl.Metadata.Language, language) {
			continue
		}
		if seen[tpl.Metadata.Name] {
			continue
		}
		seen[tpl.Metadata.Name] = true
		out = append(out, tpl.Metadata.Name)
	}
	return out
}
