// Where: cli/internal/domain/runtime/language.go
// What: Language identifiers and their mapping onto worker runtimes.
// Why: Several languages share one runtime, so the mapping lives in one table.
package runtime

import (
	"errors"
	"fmt"
	"strings"
)

var errUnsupportedLanguage = errors.New("unsupported language")

const (
	CSharp         = "C#"
	FSharp         = "F#"
	CSharpIsolated = "C#-isolated"
	FSharpIsolated = "F#-isolated"
	JavaScript     = "JavaScript"
	TypeScript     = "TypeScript"
	PythonLanguage = "Python"
	JavaLanguage   = "Java"
	PowerShellLang = "PowerShell"
	CustomLanguage = "Custom"
)

type languageEntry struct {
	canonical string
	runtime   WorkerRuntime
	aliases   []string
}

var languages = []languageEntry{
	{canonical: CSharp, runtime: Dotnet, aliases: []string{"c#", "csharp", "dotnet"}},
	{canonical: FSharp, runtime: Dotnet, aliases: []string{"f#", "fsharp"}},
	{canonical: CSharpIsolated, runtime: DotnetIsolated, aliases: []string{"c#-isolated", "csharp-isolated", "dotnet-isolated"}},
	{canonical: FSharpIsolated, runtime: DotnetIsolated, aliases: []string{"f#-isolated", "fsharp-isolated"}},
	{canonical: JavaScript, runtime: Node, aliases: []string{"javascript", "js", "node"}},
	{canonical: TypeScript, runtime: Node, aliases: []string{"typescript", "ts"}},
	{canonical: PythonLanguage, runtime: Python, aliases: []string{"python", "py"}},
	{canonical: JavaLanguage, runtime: Java, aliases: []string{"java"}},
	{canonical: PowerShellLang, runtime: PowerShell, aliases: []string{"powershell", "pwsh"}},
	{canonical: CustomLanguage, runtime: Custom, aliases: []string{"custom"}},
}

func lookupLanguage(language string) (languageEntry, bool) {
	normalized := strings.ToLower(strings.TrimSpace(language))
	for _, entry := range languages {
		for _, alias := range entry.aliases {
			if alias == normalized {
				return entry, true
			}
		}
	}
	return languageEntry{}, false
}

// NormalizeLanguage maps a user-supplied language or alias onto its canonical
// display string.
func NormalizeLanguage(language string) (string, error) {
	entry, ok := lookupLanguage(language)
	if !ok {
		return "", fmt.Errorf("%w: %s", errUnsupportedLanguage, language)
	}
	return entry.canonical, nil
}

// RuntimeForLanguage returns the worker runtime implied by language.
func RuntimeForLanguage(language string) (WorkerRuntime, error) {
	entry, ok := lookupLanguage(language)
	if !ok {
		return None, fmt.Errorf("%w: %s", errUnsupportedLanguage, language)
	}
	return entry.runtime, nil
}

// LanguagesForWorker lists the canonical languages hosted by rt.
func LanguagesForWorker(rt WorkerRuntime) []string {
	var out []string
	for _, entry := range languages {
		if entry.runtime == rt {
			out = append(out, entry.canonical)
		}
	}
	return out
}

// DefaultLanguage returns the language assumed for rt when nothing else is
// known. None has no default.
func DefaultLanguage(rt WorkerRuntime) string {
	for _, entry := range languages {
		if entry.runtime == rt {
			return entry.canonical
		}
	}
	return ""
}

// SupportsLanguage reports whether language is hosted by rt.
func SupportsLanguage(rt WorkerRuntime, language string) bool {
	entry, ok := lookupLanguage(language)
	return ok && entry.runtime == rt
}
