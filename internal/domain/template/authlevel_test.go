// Where: cli/internal/domain/template/authlevel_test.go
// What: Tests for authorization level injection.
// Why: Only the HTTP trigger binding may be touched.
package template

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseAuthLevel(t *testing.T) {
	cases := map[string]AuthLevel{
		"function":  AuthLevelFunction,
		"Anonymous": AuthLevelAnonymous,
		" ADMIN ":   AuthLevelAdmin,
	}
	for input, want := range cases {
		got, err := ParseAuthLevel(input)
		if err != nil {
			t.Fatalf("ParseAuthLevel(%q) error: %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseAuthLevel(%q)=%q, want %q", input, got, want)
		}
	}
	if _, err := ParseAuthLevel("system"); err == nil {
		t.Fatalf("expected error for unsupported level")
	}
}

func TestConfigureAuthLevelWithoutHTTPBindingFails(t *testing.T) {
	timer := newTemplate("TimerTrigger-JavaScript", "Timer trigger", "JavaScript", map[string]any{
		"type":     "timerTrigger",
		"name":     "myTimer",
		"schedule": "0 */5 * * * *",
	})
	err := ConfigureAuthLevel(timer, AuthLevelAnonymous)
	if !errors.Is(err, ErrAuthLevelNotApplicable) {
		t.Fatalf("expected ErrAuthLevelNotApplicable, got %v", err)
	}

	empty := Template{Metadata: Metadata{Name: "Empty"}}
	if err := ConfigureAuthLevel(empty, AuthLevelAdmin); !errors.Is(err, ErrAuthLevelNotApplicable) {
		t.Fatalf("expected ErrAuthLevelNotApplicable for empty template, got %v", err)
	}
}

func TestConfigureAuthLevelApplicabilityIsCaseSensitive(t *testing.T) {
	tpl := newTemplate("odd", "Odd", "JavaScript", httpBinding("HttpTrigger"))
	if err := ConfigureAuthLevel(tpl, AuthLevelAdmin); !errors.Is(err, ErrAuthLevelNotApplicable) {
		t.Fatalf("expected ErrAuthLevelNotApplicable, got %v", err)
	}
}

func TestConfigureAuthLevelMutatesOnlyHTTPBinding(t *testing.T) {
	tpl := newTemplate("HttpTrigger-JavaScript", "HTTP trigger", "JavaScript", httpBinding("httpTrigger"), outBinding())
	untouched := outBinding()

	if err := ConfigureAuthLevel(tpl, AuthLevelAnonymous); err != nil {
		t.Fatalf("ConfigureAuthLevel: %v", err)
	}
	bindings := tpl.Bindings()
	if got := bindings[0]["authLevel"]; got != "anonymous" {
		t.Fatalf("authLevel = %v, want anonymous", got)
	}
	if diff := cmp.Diff(Binding(untouched), bindings[1]); diff != "" {
		t.Fatalf("output binding changed (-want +got):\n%s", diff)
	}
}

func TestConfigureAuthLevelOnCloneLeavesOriginal(t *testing.T) {
	original := newTemplate("HttpTrigger-JavaScript", "HTTP trigger", "JavaScript", httpBinding("httpTrigger"))
	clone, err := original.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	if err := ConfigureAuthLevel(clone, AuthLevelFunction); err != nil {
		t.Fatalf("ConfigureAuthLevel: %v", err)
	}
	if _, ok := original.Bindings()[0]["authLevel"]; ok {
		t.Fatalf("original template was mutated")
	}
	if got := clone.Bindings()[0]["authLevel"]; got != "function" {
		t.Fatalf("clone authLevel = %v, want function", got)
	}
}
