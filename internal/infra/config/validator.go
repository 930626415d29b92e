// Where: internal/infra/config/validator.go
// What: JSON schema validation for the config file.
// Why: Reject unknown keys and languages before decoding.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

const schemaURL = "config.schema.json"

//go:embed schema.json
var schemaJSON []byte

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

func validate(content []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return fmt.Errorf("load config schema: %w", err)
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	if document == nil {
		// An empty file is a valid, empty config.
		return nil
	}
	if err := sch.Validate(document); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}
