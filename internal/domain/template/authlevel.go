// Where: cli/internal/domain/template/authlevel.go
// What: HTTP authorization level injection into trigger bindings.
// Why: Apply the --authlevel option to the selected template before deploy.
package template

import (
	"errors"
	"fmt"
	"strings"
)

const (
	httpTriggerType      = "httpTrigger"
	authLevelProperty    = "authLevel"
	authLevelAllowedList = "function, anonymous, admin"
)

var (
	// ErrAuthLevelNotApplicable is returned for templates without an HTTP trigger.
	ErrAuthLevelNotApplicable = errors.New("authorization level is applicable to templates that use an HTTP trigger only")
	errUnknownAuthLevel       = errors.New("unknown authorization level")
)

// AuthLevel is an HTTP trigger authorization level.
type AuthLevel string

const (
	AuthLevelFunction  AuthLevel = "function"
	AuthLevelAnonymous AuthLevel = "anonymous"
	AuthLevelAdmin     AuthLevel = "admin"
)

// String returns the string representation of the AuthLevel.
func (l AuthLevel) String() string {
	return string(l)
}

// ParseAuthLevel accepts the allowed levels case-insensitively.
func ParseAuthLevel(value string) (AuthLevel, error) {
	switch level := AuthLevel(strings.ToLower(strings.TrimSpace(value))); level {
	case AuthLevelFunction, AuthLevelAnonymous, AuthLevelAdmin:
		return level, nil
	default:
		return "", fmt.Errorf("%w: %q (allowed: %s)", errUnknownAuthLevel, value, authLevelAllowedList)
	}
}

// ConfigureAuthLevel sets level on the template's HTTP trigger binding.
// Applicability requires a binding typed exactly "httpTrigger"; the binding
// mutated is the first whose type matches ignoring case. Callers pass a
// cloned template so the catalog snapshot stays untouched.
func ConfigureAuthLevel(tpl Template, level AuthLevel) error {
	bindings := tpl.Bindings()
	applicable := false
	for _, binding := range bindings {
		if binding.Type() == httpTriggerType {
			applicable = true
			break
		}
	}
	if !applicable {
		return fmt.Errorf("%w: template %q", ErrAuthLevelNotApplicable, tpl.Metadata.Name)
	}
	for _, binding := range bindings {
		if strings.EqualFold(binding.Type(), httpTriggerType) {
			binding[authLevelProperty] = level.String()
			return nil
		}
	}
	return nil
}
