// Where: cli/internal/infra/settings/host.go
// What: host.json extension bundle detection and defaults.
// Why: Templates with extensions need a bundle or a local dotnet build.
package settings

import (
	"encoding/json"
	"strings"

	"github.com/poruru/funcnew/cli/internal/meta"
)

const (
	DefaultBundleID      = "Microsoft.Azure.Functions.ExtensionBundle"
	DefaultBundleVersion = "[4.*, 5.0.0)"
)

// Host inspects and writes the project's host.json.
type Host struct {
	Store Store
}

// IsExtensionBundleConfigured reports whether host.json declares an
// extensionBundle with an id. Unreadable files count as unconfigured.
func (h Host) IsExtensionBundleConfigured() bool {
	if !h.Store.FileExists(meta.HostFile) {
		return false
	}
	text, err := h.Store.ReadAllText(meta.HostFile)
	if err != nil {
		return false
	}
	var doc struct {
		ExtensionBundle *struct {
			ID string `json:"id"`
		} `json:"extensionBundle"`
	}
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return false
	}
	return doc.ExtensionBundle != nil && strings.TrimSpace(doc.ExtensionBundle.ID) != ""
}

// WriteDefault writes a version 2.0 host.json, with the default extension
// bundle when withBundle is set. An existing file is left untouched.
func (h Host) WriteDefault(withBundle bool) error {
	if h.Store.FileExists(meta.HostFile) {
		return nil
	}
	doc := map[string]any{"version": "2.0"}
	if withBundle {
		doc["extensionBundle"] = map[string]any{
			"id":      DefaultBundleID,
			"version": DefaultBundleVersion,
		}
	}
	return writeJSON(h.Store, meta.HostFile, doc)
}
