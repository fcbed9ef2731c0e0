// Where: cli/internal/infra/settings/local.go
// What: local.settings.json worker runtime access.
// Why: The persisted runtime marker is the project's source of truth.
package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/poruru/funcnew/cli/internal/domain/runtime"
	"github.com/poruru/funcnew/cli/internal/meta"
)

// Local reads and updates the project's local.settings.json.
type Local struct {
	Store  Store
	Getenv func(string) string
}

// Exists reports whether the persisted settings file is present.
func (l Local) Exists() bool {
	return l.Store.FileExists(meta.LocalSettingsFile)
}

// WorkerRuntime returns the persisted runtime, falling back to the
// FUNCTIONS_WORKER_RUNTIME environment variable, then None.
func (l Local) WorkerRuntime() (runtime.WorkerRuntime, error) {
	if l.Exists() {
		doc, err := l.load()
		if err != nil {
			return runtime.None, err
		}
		if value := strings.TrimSpace(valuesOf(doc)[meta.WorkerRuntimeSetting]); value != "" {
			return parseRuntime(value)
		}
	}
	if l.Getenv != nil {
		if value := strings.TrimSpace(l.Getenv(meta.WorkerRuntimeSetting)); value != "" {
			return parseRuntime(value)
		}
	}
	return runtime.None, nil
}

func parseRuntime(value string) (runtime.WorkerRuntime, error) {
	rt, err := runtime.ParseWorkerRuntime(value)
	if err != nil {
		return runtime.None, fmt.Errorf("%s: %w", meta.WorkerRuntimeSetting, err)
	}
	return rt, nil
}

// SetWorkerRuntime writes rt into the Values section, creating the file
// when missing and preserving every other key.
func (l Local) SetWorkerRuntime(rt runtime.WorkerRuntime) error {
	doc := map[string]any{
		"IsEncrypted": false,
	}
	if l.Exists() {
		loaded, err := l.load()
		if err != nil {
			return err
		}
		doc = loaded
	}
	values, ok := doc["Values"].(map[string]any)
	if !ok {
		values = map[string]any{}
	}
	values[meta.WorkerRuntimeSetting] = rt.String()
	doc["Values"] = values
	return writeJSON(l.Store, meta.LocalSettingsFile, doc)
}

func (l Local) load() (map[string]any, error) {
	text, err := l.Store.ReadAllText(meta.LocalSettingsFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", meta.LocalSettingsFile, err)
	}
	doc := map[string]any{}
	if strings.TrimSpace(text) == "" {
		return doc, nil
	}
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", meta.LocalSettingsFile, err)
	}
	return doc, nil
}

func valuesOf(doc map[string]any) map[string]string {
	out := map[string]string{}
	values, ok := doc["Values"].(map[string]any)
	if !ok {
		return out
	}
	for key, value := range values {
		if s, ok := value.(string); ok {
			out[key] = s
		}
	}
	return out
}

// MarshalIndented renders v as two-space indented JSON with a trailing
// newline and without HTML escaping.
func MarshalIndented(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeJSON(store Store, path string, v any) error {
	text, err := MarshalIndented(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := store.WriteAllText(path, text); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
