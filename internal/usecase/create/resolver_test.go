// Where: cli/internal/usecase/create/resolver_test.go
// What: Tests for runtime and language resolution order.
package create

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/poruru/funcnew/cli/internal/domain/runtime"
	"github.com/poruru/funcnew/cli/internal/domain/template"
)

func TestResolveLanguageWizardExcludesPython(t *testing.T) {
	rig := newRig(t, map[string]string{"local.settings.json": `{"IsEncrypted": false, "Values": {}}`})
	rig.prompter.selects = []string{"TypeScript"}
	got, err := rig.workflow.withDefaults().resolveRuntime(context.Background(), Request{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := [][]string{{"JavaScript", "TypeScript", "PowerShell", "C#"}}
	if diff := cmp.Diff(want, rig.prompter.options); diff != "" {
		t.Fatalf("wizard options mismatch (-want +got):\n%s", diff)
	}
	if got.Runtime != runtime.Node || got.Language != "TypeScript" {
		t.Fatalf("unexpected resolution %+v", got)
	}
	if persisted := persistedRuntime(t, rig.dir); persisted != runtime.Node {
		t.Fatalf("persisted runtime=%s", persisted)
	}
}

func TestResolveUsesEnvironmentRuntime(t *testing.T) {
	rig := newRig(t, map[string]string{"local.settings.json": `{"Values": {}}`})
	rig.workflow.Getenv = func(key string) string {
		if key == "FUNCTIONS_WORKER_RUNTIME" {
			return "powershell"
		}
		return ""
	}
	got, err := rig.workflow.withDefaults().resolveRuntime(context.Background(), Request{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.Runtime != runtime.PowerShell || got.Language != "PowerShell" {
		t.Fatalf("unexpected resolution %+v", got)
	}
	if len(rig.prompter.titles) != 0 {
		t.Fatalf("single catalog language must be picked silently")
	}
}

func TestResolveRuntimeLanguagesDedupesCatalogSpelling(t *testing.T) {
	rig := newRig(t, map[string]string{"local.settings.json": settingsFor(runtime.Java)})
	rig.catalog.templates = append(rig.catalog.templates,
		fixtureTemplate("A-Java", "HTTP trigger", "Java", httpBindings(), nil),
		fixtureTemplate("B-Java", "HTTP trigger", "java", httpBindings(), nil),
	)
	got, err := rig.workflow.withDefaults().resolveRuntime(context.Background(), Request{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.Language != "Java" || len(rig.prompter.titles) != 0 {
		t.Fatalf("unexpected resolution %+v (prompts %v)", got, rig.prompter.titles)
	}
}

func TestResolveRuntimeLanguagesFallsBackToWizard(t *testing.T) {
	rig := newRig(t, map[string]string{"local.settings.json": settingsFor(runtime.Java)})
	rig.prompter.selects = []string{"Java"}
	got, err := rig.workflow.withDefaults().resolveRuntime(context.Background(), Request{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if diff := cmp.Diff([]string{"Select a language"}, rig.prompter.titles); diff != "" {
		t.Fatalf("prompt mismatch (-want +got):\n%s", diff)
	}
	if got.Language != "Java" {
		t.Fatalf("unexpected language %q", got.Language)
	}
}

func TestResolveManagedRuntimeInfers(t *testing.T) {
	rig := newRig(t, map[string]string{
		"local.settings.json": settingsFor(runtime.DotnetIsolated),
		"Functions.fsproj":    "<Project/>",
	})
	got, err := rig.workflow.withDefaults().resolveRuntime(context.Background(), Request{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.Language != runtime.FSharpIsolated {
		t.Fatalf("expected F#-isolated, got %q", got.Language)
	}
	if rig.catalog.calls != 0 {
		t.Fatalf("managed inference must not load the catalog")
	}
}

func TestResolveCsxUsesCatalogLanguages(t *testing.T) {
	rig := newRig(t, map[string]string{"local.settings.json": settingsFor(runtime.Dotnet)})
	got, err := rig.workflow.withDefaults().resolveRuntime(context.Background(), Request{Csx: true})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.Language != "C#" || rig.catalog.calls != 1 {
		t.Fatalf("unexpected resolution %+v (catalog calls %d)", got, rig.catalog.calls)
	}
}

func TestResolveExplicitLanguagePersistsRuntime(t *testing.T) {
	rig := newRig(t, map[string]string{"local.settings.json": `{"Values": {}}`})
	got, err := rig.workflow.withDefaults().resolveRuntime(context.Background(), Request{Language: "pwsh"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.Runtime != runtime.PowerShell {
		t.Fatalf("runtime=%s", got.Runtime)
	}
	if persisted := persistedRuntime(t, rig.dir); persisted != runtime.PowerShell {
		t.Fatalf("persisted runtime=%s", persisted)
	}
}

func TestSelectTemplateIsDeterministic(t *testing.T) {
	rig := newRig(t, nil)
	w := rig.workflow.withDefaults()
	templates := fixtureCatalog()
	first, err := w.selectTemplate(templates, template.ModelClassic, "HTTP trigger", "JavaScript")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := w.selectTemplate(templates, template.ModelClassic, "HTTP trigger", "JavaScript")
		if err != nil {
			t.Fatalf("select: %v", err)
		}
		if again.ID != first.ID {
			t.Fatalf("selection changed from %s to %s", first.ID, again.ID)
		}
	}
}

func TestSelectTemplatePythonV2NeverReturnsClassic(t *testing.T) {
	rig := newRig(t, nil)
	w := rig.workflow.withDefaults()
	templates := fixtureCatalog()[:6]
	if tpl, err := w.selectTemplate(templates, template.ModelPythonV2, "HTTP trigger", "Python"); err == nil {
		t.Fatalf("expected no match without a flagged template, got %s", tpl.ID)
	}
}
