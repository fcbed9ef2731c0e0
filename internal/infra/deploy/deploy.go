// Where: cli/internal/infra/deploy/deploy.go
// What: Materialize a catalog template into the project directory.
// Why: Template files carry text/template placeholders; rendering them with
// sprig keeps naming helpers (snakecase, camelcase, upper) in the catalog.
package deploy

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	domaintemplate "github.com/poruru/funcnew/cli/internal/domain/template"
	"github.com/poruru/funcnew/cli/internal/infra/fileops"
	"github.com/poruru/funcnew/cli/internal/infra/settings"
	"github.com/poruru/funcnew/cli/internal/logging"
	"github.com/poruru/funcnew/cli/internal/meta"
	"go.uber.org/zap"
)

const defaultAuthLevel = "function"

var (
	errFunctionExists = errors.New("function already exists")
	errFileExists     = errors.New("file already exists")
	errEmptyName      = errors.New("function name is required")
)

// RenderData is the value passed to every template file and path.
type RenderData struct {
	FunctionName string
	FileName     string
	AuthLevel    string
	Language     string
	Appending    bool
}

// Materializer writes template files below Root.
type Materializer struct {
	Root   string
	Logger *zap.Logger
}

// New returns a Materializer rooted at root.
func New(root string, logger *zap.Logger) *Materializer {
	return &Materializer{Root: root, Logger: logging.OrNop(logger)}
}

// Deploy renders tpl for functionName. Classic templates get their own
// directory with a function.json; programming-model templates render into the
// project root, and Python v2 files are appended to when they already exist.
func (m *Materializer) Deploy(ctx context.Context, functionName, fileName string, tpl domaintemplate.Template) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name := strings.TrimSpace(functionName)
	if name == "" {
		return errEmptyName
	}
	data := RenderData{
		FunctionName: name,
		FileName:     fileName,
		AuthLevel:    authLevelOf(tpl),
		Language:     tpl.Metadata.Language,
	}
	switch {
	case tpl.Metadata.ProgrammingModel:
		return m.renderInto(m.Root, tpl, data, true)
	case tpl.IsNodeV4():
		return m.renderInto(m.Root, tpl, data, false)
	default:
		return m.deployClassic(name, tpl, data)
	}
}

func (m *Materializer) deployClassic(name string, tpl domaintemplate.Template, data RenderData) error {
	dir, err := fileops.SafeJoin(m.Root, name)
	if err != nil {
		return err
	}
	if fileops.DirExists(dir) || fileops.FileExists(dir) {
		return fmt.Errorf("%w: %s", errFunctionExists, dir)
	}
	if err := fileops.EnsureDir(dir); err != nil {
		return fmt.Errorf("create function directory: %w", err)
	}
	if err := m.renderInto(dir, tpl, data, false); err != nil {
		return err
	}
	if tpl.Function == nil {
		return nil
	}
	text, err := settings.MarshalIndented(tpl.Function)
	if err != nil {
		return fmt.Errorf("encode %s: %w", meta.FunctionJSONFile, err)
	}
	target := filepath.Join(dir, meta.FunctionJSONFile)
	if err := fileops.WriteFile(target, text); err != nil {
		return fmt.Errorf("write %s: %w", meta.FunctionJSONFile, err)
	}
	m.Logger.Debug("wrote function definition", zap.String("path", target))
	return nil
}

func (m *Materializer) renderInto(root string, tpl domaintemplate.Template, data RenderData, allowAppend bool) error {
	for _, rawPath := range sortedKeys(tpl.Files) {
		relPath, err := render(tpl.ID+":path", rawPath, data)
		if err != nil {
			return err
		}
		target, err := fileops.SafeJoin(root, strings.TrimSpace(relPath))
		if err != nil {
			return err
		}
		fileData := data
		exists := fileops.FileExists(target)
		if exists && !allowAppend {
			return fmt.Errorf("%w: %s", errFileExists, target)
		}
		fileData.Appending = exists
		content, err := render(tpl.ID+":"+rawPath, tpl.Files[rawPath], fileData)
		if err != nil {
			return err
		}
		if exists {
			err = fileops.AppendFile(target, content)
		} else {
			err = fileops.WriteFile(target, content)
		}
		if err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
		m.Logger.Debug("rendered template file",
			zap.String("template", tpl.ID),
			zap.String("path", target),
			zap.Bool("appended", exists),
		)
	}
	return nil
}

func render(name, text string, data RenderData) (string, error) {
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func authLevelOf(tpl domaintemplate.Template) string {
	for _, binding := range tpl.Bindings() {
		if !strings.EqualFold(binding.Type(), "httpTrigger") {
			continue
		}
		if level, ok := binding["authLevel"].(string); ok && strings.TrimSpace(level) != "" {
			return level
		}
	}
	return defaultAuthLevel
}

func sortedKeys(files map[string]string) []string {
	keys := make([]string, 0, len(files))
	for key := range files {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
