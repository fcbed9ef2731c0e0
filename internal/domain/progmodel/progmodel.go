// Where: cli/internal/domain/progmodel/progmodel.go
// What: Programming model detection for Python and Node projects.
// Why: The model generation decides which catalog entries are eligible.
package progmodel

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
)

// NodeV4Major is the first @azure/functions major version of the v4 model.
const NodeV4Major = 4

// LeadingMajor strips any non-digit prefix from a dependency version string
// (caret, tilde, range operators, a leading "v", whitespace) and parses the
// leading integer. ok is false when no digit follows the prefix.
func LeadingMajor(version string) (int, bool) {
	rest := strings.TrimLeftFunc(version, func(r rune) bool {
		return !unicode.IsDigit(r)
	})
	end := strings.IndexFunc(rest, func(r rune) bool {
		return !unicode.IsDigit(r)
	})
	if end == -1 {
		end = len(rest)
	}
	if end == 0 {
		return 0, false
	}
	major, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0, false
	}
	return major, true
}

// MajorAtLeast reports whether version declares a leading major >= min.
func MajorAtLeast(version string, min int) bool {
	major, ok := LeadingMajor(version)
	return ok && major >= min
}

// DependencyVersion extracts dependencies[name] from a package.json payload.
// ok is false for malformed JSON, a missing dependencies object, a missing
// key, or a non-string value.
func DependencyVersion(manifest []byte, name string) (string, bool) {
	var doc struct {
		Dependencies map[string]any `json:"dependencies"`
	}
	if err := json.Unmarshal(manifest, &doc); err != nil {
		return "", false
	}
	value, ok := doc.Dependencies[name].(string)
	if !ok {
		return "", false
	}
	return value, true
}

// IsNodeV4Manifest reports whether a package.json payload declares package
// at major version 4 or later. Every failure reads as the classic model.
func IsNodeV4Manifest(manifest []byte, pkg string) bool {
	version, ok := DependencyVersion(manifest, pkg)
	if !ok {
		return false
	}
	return MajorAtLeast(version, NodeV4Major)
}
