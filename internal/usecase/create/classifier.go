// Where: cli/internal/usecase/create/classifier.go
// What: Programming model classification for the current project.
// Why: The model decides which catalog subset is eligible.
package create

import (
	"strings"

	"github.com/poruru/funcnew/cli/internal/domain/progmodel"
	"github.com/poruru/funcnew/cli/internal/domain/runtime"
	"github.com/poruru/funcnew/cli/internal/domain/template"
	"github.com/poruru/funcnew/cli/internal/meta"
)

// IsPythonV2 reports whether a Python project uses the decorator model.
func IsPythonV2(project ProjectProbe, language string) bool {
	return strings.EqualFold(language, runtime.PythonLanguage) && project.Exists(meta.PythonV2File)
}

// IsNodeV4 reports whether a node project depends on the v4 functions
// package. Any read or parse failure counts as false.
func IsNodeV4(project ProjectProbe, rt runtime.WorkerRuntime) bool {
	if rt != runtime.Node || !project.Exists(meta.PackageJSONFile) {
		return false
	}
	manifest, err := project.ReadFile(meta.PackageJSONFile)
	if err != nil {
		return false
	}
	return progmodel.IsNodeV4Manifest(manifest, meta.NodeFunctionsPackage)
}

// Classify returns the programming model for rt and language.
func Classify(project ProjectProbe, rt runtime.WorkerRuntime, language string) template.Model {
	switch {
	case IsPythonV2(project, language):
		return template.ModelPythonV2
	case IsNodeV4(project, rt):
		return template.ModelNodeV4
	default:
		return template.ModelClassic
	}
}
