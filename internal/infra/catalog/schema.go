// Where: cli/internal/infra/catalog/schema.go
// What: JSON schema validation for catalog documents.
// Why: Reject malformed catalogs before any template is offered to the user.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/poruru/funcnew/cli/assets"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

const schemaURL = "mem://funcnew/catalog.schema.json"

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// validateDocument converts YAML (or JSON) content to JSON and validates it
// against the catalog schema. The JSON form is returned for decoding.
func validateDocument(content []byte) ([]byte, error) {
	sch, err := loadSchema()
	if err != nil {
		return nil, err
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return nil, fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return nil, fmt.Errorf("unmarshal json: %w", err)
	}
	if err := sch.Validate(document); err != nil {
		return nil, err
	}
	return jsonData, nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(assets.CatalogSchema)); err != nil {
			schemaErr = fmt.Errorf("load catalog schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
