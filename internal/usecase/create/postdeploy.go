// Where: cli/internal/usecase/create/postdeploy.go
// What: Language-specific patches applied after deploy.
// Why: Compiled TypeScript functions must point at their build output.
package create

import (
	"encoding/json"
	"fmt"
	"path"

	"github.com/poruru/funcnew/cli/internal/domain/runtime"
	"github.com/poruru/funcnew/cli/internal/domain/template"
	"github.com/poruru/funcnew/cli/internal/infra/settings"
	"github.com/poruru/funcnew/cli/internal/meta"
)

const scriptFileProperty = "scriptFile"

// TypeScriptScriptFile returns the compiled entry point for functionName.
func TypeScriptScriptFile(functionName string) string {
	return fmt.Sprintf("../dist/%s/index.js", functionName)
}

// PostDeploy patches the generated function.json of a classic TypeScript
// function. Other languages and programming models are left untouched.
func PostDeploy(store settings.Store, language string, model template.Model, functionName string) error {
	if language != runtime.TypeScript || model != template.ModelClassic {
		return nil
	}
	file := path.Join(functionName, meta.FunctionJSONFile)
	text, err := store.ReadAllText(file)
	if err != nil {
		return fmt.Errorf("read %s: %w", file, err)
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return fmt.Errorf("parse %s: %w", file, err)
	}
	if doc == nil {
		return fmt.Errorf("parse %s: not a JSON object", file)
	}
	doc[scriptFileProperty] = TypeScriptScriptFile(functionName)
	encoded, err := settings.MarshalIndented(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", file, err)
	}
	if err := store.WriteAllText(file, encoded); err != nil {
		return fmt.Errorf("write %s: %w", file, err)
	}
	return nil
}
