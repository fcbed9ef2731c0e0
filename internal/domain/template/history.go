// Where: cli/internal/domain/template/history.go
// What: Pure helpers for recently used template names.
// Why: Keep history logic deterministic and independent from I/O.
package template

import "strings"

// OrderByRecent moves names that appear in recent to the front, in recent
// order, followed by the remaining names in their original order. Names in
// recent that are not offered are dropped.
func OrderByRecent(names, recent []string) []string {
	offered := map[string]string{}
	for _, name := range names {
		offered[strings.ToLower(name)] = name
	}
	ordered := make([]string, 0, len(names))
	seen := map[string]struct{}{}
	add := func(value string) {
		key := strings.ToLower(strings.TrimSpace(value))
		name, ok := offered[key]
		if !ok {
			return
		}
		if _, dup := seen[key]; dup {
			return
		}
		ordered = append(ordered, name)
		seen[key] = struct{}{}
	}
	for _, entry := range recent {
		add(entry)
	}
	for _, name := range names {
		add(name)
	}
	return ordered
}

// UpdateHistory inserts name at the front and enforces a limit.
func UpdateHistory(history []string, name string, limit int) []string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return history
	}
	next := make([]string, 0, limit)
	seen := map[string]struct{}{}
	add := func(value string) {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			return
		}
		if limit > 0 && len(next) >= limit {
			return
		}
		next = append(next, trimmed)
		seen[key] = struct{}{}
	}

	add(trimmed)
	for _, entry := range history {
		add(entry)
	}
	return next
}
