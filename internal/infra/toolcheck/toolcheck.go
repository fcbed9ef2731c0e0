// Where: cli/internal/infra/toolcheck/toolcheck.go
// What: Host tool availability checks.
// Why: Templates with extensions fall back to a local dotnet build.
package toolcheck

import (
	"os/exec"
	"strings"
)

var lookPath = exec.LookPath

// PathChecker resolves commands through PATH.
type PathChecker struct{}

// CommandExists reports whether name resolves to an executable on PATH.
func (PathChecker) CommandExists(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	_, err := lookPath(name)
	return err == nil
}
