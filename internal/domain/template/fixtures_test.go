package template

func httpBinding(typ string) map[string]any {
	return map[string]any{
		"type":      typ,
		"direction": "in",
		"name":      "req",
		"methods":   []any{"get", "post"},
	}
}

func outBinding() map[string]any {
	return map[string]any{
		"type":      "http",
		"direction": "out",
		"name":      "res",
	}
}

func newTemplate(id, name, language string, bindings ...map[string]any) Template {
	items := make([]any, 0, len(bindings))
	for _, b := range bindings {
		items = append(items, b)
	}
	return Template{
		ID: id,
		Metadata: Metadata{
			Name:                name,
			Language:            language,
			DefaultFunctionName: "HttpTrigger",
		},
		Function: map[string]any{"bindings": items},
	}
}
