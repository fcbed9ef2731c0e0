package command

import (
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

type queuedPrompter struct {
	selects []string
	inputs  []string
}

func (p *queuedPrompter) Input(string, []string) (string, error) {
	return popQueued(&p.inputs, errors.New("no queued input"))
}

func (p *queuedPrompter) Select(string, []string) (string, error) {
	return popQueued(&p.selects, errors.New("no queued selection"))
}

func popQueued(values *[]string, emptyErr error) (string, error) {
	if len(*values) == 0 {
		return "", emptyErr
	}
	value := (*values)[0]
	*values = (*values)[1:]
	return value, nil
}

// testDeps returns dependencies rooted at a fresh project directory with the
// user config redirected into the test's temp space.
func testDeps(t *testing.T) (Dependencies, string, string) {
	t.Helper()
	projectDir := t.TempDir()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	deps := Dependencies{
		ProjectDir: projectDir,
		Getenv: func(key string) string {
			if key == "FUNCNEW_CONFIG" {
				return configPath
			}
			return ""
		},
		Prompter:  &queuedPrompter{},
		NewLogger: func(bool) (*zap.Logger, error) { return zap.NewNop(), nil },
	}
	return deps, projectDir, configPath
}
