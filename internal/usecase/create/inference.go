// Where: cli/internal/usecase/create/inference.go
// What: Language inference from project files.
// Why: Runtimes hosting several languages leave marker files behind.
package create

import (
	"github.com/poruru/funcnew/cli/internal/domain/runtime"
	"github.com/poruru/funcnew/cli/internal/meta"
)

// Infer guesses the language of a project hosted by rt. It is conclusive for
// the .NET runtimes and node only.
func Infer(project ProjectProbe, rt runtime.WorkerRuntime) (string, bool) {
	switch rt {
	case runtime.Dotnet:
		if project.HasExtension(meta.FSharpProjectExt) {
			return runtime.FSharp, true
		}
		return runtime.CSharp, true
	case runtime.DotnetIsolated:
		if project.HasExtension(meta.FSharpProjectExt) {
			return runtime.FSharpIsolated, true
		}
		return runtime.CSharpIsolated, true
	case runtime.Node:
		if project.Exists(meta.TSConfigFile) {
			return runtime.TypeScript, true
		}
		return runtime.JavaScript, true
	default:
		return "", false
	}
}
