// Where: cli/internal/command/branding.go
// What: CLI naming for user-facing hints.
// Why: Keep user-facing command names consistent when the binary is wrapped.
package command

import (
	"os"
	"strings"

	"github.com/poruru/funcnew/cli/internal/meta"
)

func cliName() string {
	name := strings.TrimSpace(os.Getenv(meta.EnvPrefix + "_CLI_CMD"))
	if name == "" {
		name = meta.AppName
	}
	return name
}
