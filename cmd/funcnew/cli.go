// Where: cli/cmd/funcnew/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/poruru/funcnew/cli/internal/command"
	"github.com/poruru/funcnew/cli/internal/infra/interaction"
	"github.com/poruru/funcnew/cli/internal/infra/toolcheck"
	"github.com/poruru/funcnew/cli/internal/logging"
)

var (
	getwd         = os.Getwd
	isInteractive = func() bool { return interaction.IsInteractive(os.Stdin, os.Stdout) }
)

// buildDependencies constructs the runtime dependencies required by the CLI.
func buildDependencies() (command.Dependencies, error) {
	projectDir, err := getwd()
	if err != nil {
		return command.Dependencies{}, err
	}
	return command.Dependencies{
		Out:         os.Stdout,
		ErrOut:      os.Stderr,
		ProjectDir:  projectDir,
		Prompter:    interaction.HuhPrompter{},
		Interactive: isInteractive(),
		Getenv:      os.Getenv,
		Tools:       toolcheck.PathChecker{},
		NewLogger:   logging.New,
	}, nil
}
