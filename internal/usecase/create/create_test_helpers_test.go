// Where: cli/internal/usecase/create/create_test_helpers_test.go
// What: Fakes and fixtures shared by create workflow tests.
package create

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/poruru/funcnew/cli/internal/domain/runtime"
	"github.com/poruru/funcnew/cli/internal/domain/template"
	"github.com/poruru/funcnew/cli/internal/infra/probe"
	"github.com/poruru/funcnew/cli/internal/infra/settings"
	"github.com/poruru/funcnew/cli/internal/infra/telemetry"
)

type fakePrompter struct {
	selects   []string
	inputs    []string
	titles    []string
	options   [][]string
	inputSeen []string
}

func (p *fakePrompter) Input(title string, _ []string) (string, error) {
	p.inputSeen = append(p.inputSeen, title)
	if len(p.inputs) == 0 {
		return "", errors.New("no queued input")
	}
	next := p.inputs[0]
	p.inputs = p.inputs[1:]
	return next, nil
}

func (p *fakePrompter) Select(title string, options []string) (string, error) {
	p.titles = append(p.titles, title)
	p.options = append(p.options, append([]string(nil), options...))
	if len(p.selects) == 0 {
		return "", errors.New("no queued selection")
	}
	next := p.selects[0]
	p.selects = p.selects[1:]
	return next, nil
}

type recordUI struct {
	success []string
	notices []string
}

func (u *recordUI) Info(string)        {}
func (u *recordUI) Warn(string)        {}
func (u *recordUI) Error(string)       {}
func (u *recordUI) Success(msg string) { u.success = append(u.success, msg) }
func (u *recordUI) Notice(msg string)  { u.notices = append(u.notices, msg) }

type staticCatalog struct {
	templates []template.Template
	calls     int
}

func (c *staticCatalog) Templates(context.Context) ([]template.Template, error) {
	c.calls++
	return c.templates, nil
}

type deployCall struct {
	functionName string
	fileName     string
	template     template.Template
}

type recordDeployer struct {
	calls []deployCall
	err   error
}

func (d *recordDeployer) Deploy(_ context.Context, functionName, fileName string, tpl template.Template) error {
	d.calls = append(d.calls, deployCall{functionName: functionName, fileName: fileName, template: tpl})
	return d.err
}

type fakeBootstrapper struct {
	runtime  runtime.WorkerRuntime
	language string
	hints    []string
}

func (b *fakeBootstrapper) Run(_ context.Context, hint string) (runtime.WorkerRuntime, string, error) {
	b.hints = append(b.hints, hint)
	return b.runtime, b.language, nil
}

type fixedBundles bool

func (b fixedBundles) IsExtensionBundleConfigured() bool { return bool(b) }

type fixedTools map[string]bool

func (t fixedTools) CommandExists(name string) bool { return t[name] }

type memoryHistory struct {
	recent     map[string][]string
	remembered []string
}

func (h *memoryHistory) Recent(language string) []string { return h.recent[language] }

func (h *memoryHistory) Remember(language, name string) error {
	h.remembered = append(h.remembered, language+"/"+name)
	return nil
}

func httpBindings() map[string]any {
	return map[string]any{
		"bindings": []any{
			map[string]any{"type": "httpTrigger", "direction": "in", "authLevel": "function", "name": "req"},
			map[string]any{"type": "http", "direction": "out", "name": "res"},
		},
	}
}

func timerBindings() map[string]any {
	return map[string]any{
		"bindings": []any{
			map[string]any{"type": "timerTrigger", "direction": "in", "schedule": "0 */5 * * * *"},
		},
	}
}

func fixtureTemplate(id, name, language string, function map[string]any, files map[string]string) template.Template {
	return template.Template{
		ID: id,
		Metadata: template.Metadata{
			Name:                name,
			Language:            language,
			DefaultFunctionName: "HttpTrigger",
		},
		Function: function,
		Files:    files,
	}
}

// fixtureCatalog lists classic entries before their newer-model variants so
// tests prove the model filter, not catalog order, picks the entry.
func fixtureCatalog() []template.Template {
	pythonV2 := fixtureTemplate("HttpTrigger-Python-v2", "HTTP trigger", "Python", httpBindings(),
		map[string]string{"{{ .FileName }}": "# {{ .FunctionName }}\n"})
	pythonV2.Metadata.ProgrammingModel = true
	blob := fixtureTemplate("BlobTrigger-JavaScript", "Blob trigger", "JavaScript", map[string]any{
		"bindings": []any{map[string]any{"type": "blobTrigger", "direction": "in"}},
	}, map[string]string{"index.js": "// blob\n"})
	blob.Metadata.Extensions = []template.Extension{{ID: "Storage", Version: "5.0.0"}}
	timer := fixtureTemplate("TimerTrigger-JavaScript", "Timer trigger", "JavaScript", timerBindings(),
		map[string]string{"index.js": "// timer\n"})
	timer.Metadata.DefaultFunctionName = "TimerTrigger"
	return []template.Template{
		fixtureTemplate("HttpTrigger-JavaScript", "HTTP trigger", "JavaScript", httpBindings(),
			map[string]string{"index.js": "// {{ .FunctionName }}\n"}),
		fixtureTemplate("HttpTrigger-JavaScript-4.x", "HTTP trigger", "JavaScript", httpBindings(),
			map[string]string{"src/functions/{{ .FunctionName }}.js": "// v4\n"}),
		timer,
		blob,
		fixtureTemplate("HttpTrigger-TypeScript", "HTTP trigger", "TypeScript", httpBindings(),
			map[string]string{"index.ts": "// {{ .FunctionName }}\n"}),
		fixtureTemplate("HttpTrigger-Python", "HTTP trigger", "Python", httpBindings(),
			map[string]string{"__init__.py": "# {{ .FunctionName }}\n"}),
		pythonV2,
		fixtureTemplate("HttpTrigger-PowerShell", "HTTP trigger", "PowerShell", httpBindings(),
			map[string]string{"run.ps1": "# {{ .FunctionName }}\n"}),
		fixtureTemplate("HttpTrigger-CSharp", "HTTP trigger", "C#", httpBindings(),
			map[string]string{"run.csx": "// {{ .FunctionName }}\n"}),
	}
}

// newProjectDir writes files into a fresh directory.
func newProjectDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func settingsFor(rt runtime.WorkerRuntime) string {
	return `{"IsEncrypted": false, "Values": {"FUNCTIONS_WORKER_RUNTIME": "` + rt.String() + `"}}`
}

type testRig struct {
	dir       string
	workflow  Workflow
	catalog   *staticCatalog
	deployer  *recordDeployer
	prompter  *fakePrompter
	ui        *recordUI
	telemetry *telemetry.Recorder
	bootstrap *fakeBootstrapper
	history   *memoryHistory
}

func newRig(t *testing.T, files map[string]string) *testRig {
	t.Helper()
	dir := newProjectDir(t, files)
	rig := &testRig{
		dir:       dir,
		catalog:   &staticCatalog{templates: fixtureCatalog()},
		deployer:  &recordDeployer{},
		prompter:  &fakePrompter{},
		ui:        &recordUI{},
		telemetry: telemetry.NewRecorder(),
		bootstrap: &fakeBootstrapper{runtime: runtime.Node, language: runtime.JavaScript},
		history:   &memoryHistory{recent: map[string][]string{}},
	}
	store := settings.NewOSStore(dir)
	rig.workflow = Workflow{
		Project:       probe.ForDir(dir),
		Settings:      store,
		Getenv:        func(string) string { return "" },
		Bootstrapper:  rig.bootstrap,
		Catalog:       rig.catalog,
		Deployer:      rig.deployer,
		Bundles:       settings.Host{Store: store},
		Tools:         fixedTools{},
		Prompter:      rig.prompter,
		UserInterface: rig.ui,
		Telemetry:     rig.telemetry,
		History:       rig.history,
	}
	return rig
}

func persistedRuntime(t *testing.T, dir string) runtime.WorkerRuntime {
	t.Helper()
	rt, err := settings.Local{Store: settings.NewOSStore(dir)}.WorkerRuntime()
	if err != nil {
		t.Fatalf("read persisted runtime: %v", err)
	}
	return rt
}
