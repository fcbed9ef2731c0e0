// Where: cli/internal/command/error_helpers.go
// What: Shared CLI error output.
// Why: Every command reports failures the same way.
package command

import (
	"io"
)

// exitWithError prints an error message to the output writer and returns
// exit code 1 for CLI error handling.
func exitWithError(out io.Writer, err error) int {
	consoleUI(out, true).Error(err.Error())
	return 1
}
