// Where: cli/internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/poruru/funcnew/cli/internal/infra/catalog"
	"github.com/poruru/funcnew/cli/internal/infra/interaction"
	"github.com/poruru/funcnew/cli/internal/infra/toolcheck"
	"github.com/poruru/funcnew/cli/internal/logging"
	"github.com/poruru/funcnew/cli/internal/meta"
	"github.com/poruru/funcnew/cli/internal/usecase/create"
	"github.com/poruru/funcnew/cli/internal/version"
	"go.uber.org/zap"
)

// Dependencies holds all injected dependencies required for CLI command execution.
// This structure enables dependency injection for testing and allows swapping
// implementations of various subsystems.
type Dependencies struct {
	Out         io.Writer
	ErrOut      io.Writer
	ProjectDir  string
	Prompter    interaction.Prompter
	Interactive bool
	Getenv      func(string) string
	Tools       create.ToolChecker
	NewLogger   func(verbose bool) (*zap.Logger, error)
	NewCatalog  func(overrideDir string, logger *zap.Logger) catalog.Provider
}

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	EnvFile   string       `name:"env-file" help:"Path to .env file"`
	New       NewCmd       `cmd:"" aliases:"create" help:"Create a new function from a template"`
	Templates TemplatesCmd `cmd:"" help:"List available templates"`
	Version   VersionCmd   `cmd:"" help:"Show version information"`
}

type (
	// NewCmd defines the new command flags.
	NewCmd struct {
		Args          []string `arg:"" optional:"" help:"Trigger name followed by 'help' for programming model guidance"`
		Language      string   `short:"l" help:"Template programming language, such as C#, F#, JavaScript"`
		Template      string   `short:"t" help:"Template name"`
		Name          string   `short:"n" help:"Function name"`
		File          string   `short:"f" default:"${python_app_file}" help:"File name for decorator-model Python functions"`
		AuthLevel     string   `short:"a" name:"authlevel" help:"Authorization level for HTTP trigger templates (function/anonymous/admin)"`
		Csx           bool     `name:"csx" help:"Use legacy script-style .NET functions"`
		WorkerRuntime string   `name:"worker-runtime" help:"Worker runtime used when the project is initialized"`
		Catalog       string   `name:"catalog" help:"Directory with additional template catalogs"`
		Verbose       bool     `short:"v" help:"Verbose output"`
		NoEmoji       bool     `name:"no-emoji" help:"Disable emoji output"`
	}

	// TemplatesCmd defines the templates command flags.
	TemplatesCmd struct {
		Language string `short:"l" help:"Only list templates for this language"`
		Catalog  string `name:"catalog" help:"Directory with additional template catalogs"`
		Verbose  bool   `short:"v" help:"Verbose output"`
	}

	VersionCmd struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	deps = withDefaults(deps)
	out := deps.Out
	ui := consoleUI(out, true)

	// Handle no arguments: show usage
	if len(args) == 0 {
		return runNoArgs(out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(cliName()),
		kong.Vars{"python_app_file": meta.PythonV2File},
		kong.Writers(out, deps.ErrOut),
	)
	if err != nil {
		return exitWithError(out, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(err, out)
	}

	// Load environment file if provided or if .env exists in the project directory
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			ui.Warn(fmt.Sprintf("Warning: failed to load env file %s: %v", cli.EnvFile, err))
		}
	} else {
		envPath := ".env"
		if deps.ProjectDir != "" {
			envPath = deps.ProjectDir + string(os.PathSeparator) + ".env"
		}
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				ui.Warn(fmt.Sprintf("Warning: failed to load .env: %v", err))
			}
		}
	}

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, out); handled {
		return exitCode
	}

	ui.Warn("unknown command")
	return 1
}

func withDefaults(deps Dependencies) Dependencies {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.Getenv == nil {
		deps.Getenv = os.Getenv
	}
	if deps.Prompter == nil {
		deps.Prompter = interaction.HuhPrompter{}
	}
	if deps.Tools == nil {
		deps.Tools = toolcheck.PathChecker{}
	}
	if deps.NewLogger == nil {
		deps.NewLogger = logging.New
	}
	if deps.NewCatalog == nil {
		deps.NewCatalog = func(dir string, logger *zap.Logger) catalog.Provider {
			return catalog.NewFSProvider(dir, logger)
		}
	}
	return deps
}

type commandHandler func(CLI, Dependencies, io.Writer) int

func dispatchCommand(command string, cli CLI, deps Dependencies, out io.Writer) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"new":       runNew,
		"templates": runTemplates,
		"version":   func(_ CLI, _ Dependencies, out io.Writer) int { return runVersion(cli, out) },
	}

	name := command
	if fields := strings.Fields(command); len(fields) > 0 {
		name = fields[0]
	}
	if handler, ok := exactHandlers[name]; ok {
		return handler(cli, deps, out), true
	}

	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(_ CLI, out io.Writer) int {
	consoleUI(out, true).Info(version.GetVersion())
	return 0
}

// runNoArgs handles the case when the CLI is invoked without arguments.
func runNoArgs(out io.Writer) int {
	ui := consoleUI(out, true)
	cmd := cliName()
	ui.Info("Usage:")
	ui.Info(fmt.Sprintf("  %s new --language <language> --template <name> --name <function> [flags]", cmd))
	ui.Info(fmt.Sprintf("  %s templates [--language <language>]", cmd))
	ui.Info("")
	ui.Info(fmt.Sprintf("Try: %s new --help", cmd))
	return 0
}

// handleParseError provides user-friendly error messages for parse failures.
func handleParseError(err error, out io.Writer) int {
	msg := err.Error()
	if strings.Contains(msg, "expected string value") {
		ui := consoleUI(out, true)
		cmd := cliName()
		switch {
		case strings.Contains(msg, "--template"):
			ui.Warn("`-t/--template` expects a value. Provide a template name or omit the flag for interactive selection.")
			ui.Info(fmt.Sprintf("Example: %s new -t \"HTTP trigger\" -n MyFunction", cmd))
			ui.Info(fmt.Sprintf("List templates: %s templates", cmd))
			return 1
		case strings.Contains(msg, "--language"):
			ui.Warn("`-l/--language` expects a value. Provide a language or omit the flag for interactive selection.")
			ui.Info(fmt.Sprintf("Example: %s new -l JavaScript", cmd))
			return 1
		case strings.Contains(msg, "--name"):
			ui.Warn("`-n/--name` expects a value. Provide a function name or omit the flag to be prompted.")
			ui.Info(fmt.Sprintf("Example: %s new -n MyFunction", cmd))
			return 1
		case strings.Contains(msg, "--env-file"):
			ui.Warn("`--env-file` expects a value. Provide a file path.")
			ui.Info(fmt.Sprintf("Example: %s new --env-file .env.local", cmd))
			return 1
		}
	}
	return exitWithError(out, err)
}
