// Where: cli/internal/domain/runtime/runtime.go
// What: Worker runtime identifiers and normalization.
// Why: Centralize runtime behavior to avoid scattered conditional logic.
package runtime

import (
	"errors"
	"fmt"
	"strings"
)

var errUnsupportedRuntime = errors.New("unsupported worker runtime")

// WorkerRuntime identifies the execution host a function project targets.
type WorkerRuntime string

const (
	Dotnet         WorkerRuntime = "dotnet"
	DotnetIsolated WorkerRuntime = "dotnet-isolated"
	Node           WorkerRuntime = "node"
	Python         WorkerRuntime = "python"
	Java           WorkerRuntime = "java"
	PowerShell     WorkerRuntime = "powershell"
	Custom         WorkerRuntime = "custom"
	None           WorkerRuntime = "none"
)

// All lists every selectable runtime in display order. None is excluded.
var All = []WorkerRuntime{Dotnet, DotnetIsolated, Node, Python, Java, PowerShell, Custom}

// String returns the string representation of the WorkerRuntime.
func (r WorkerRuntime) String() string {
	return string(r)
}

// IsDotnet reports whether r is one of the managed-language runtimes.
func (r WorkerRuntime) IsDotnet() bool {
	return r == Dotnet || r == DotnetIsolated
}

// ParseWorkerRuntime normalizes a persisted or user-supplied runtime value.
// An empty value parses as None.
func ParseWorkerRuntime(value string) (WorkerRuntime, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "", "none":
		return None, nil
	case "dotnet-isolated", "dotnetisolated":
		return DotnetIsolated, nil
	case "node", "nodejs":
		return Node, nil
	}
	for _, rt := range All {
		if string(rt) == normalized {
			return rt, nil
		}
	}
	return None, fmt.Errorf("%w: %s", errUnsupportedRuntime, value)
}
