package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// validateAgainstSchema checks that raw is valid JSON conforming to the
// request's schema. Returns a *ValidationError on failure so the retry
// layer can give the model a second chance.
func validateAgainstSchema(raw json.RawMessage, schema *Schema) error {
	if schema == nil {
		return nil
	}

	defJSON, err := json.Marshal(schema.Definition)
	if err != nil {
		return fmt.Errorf("marshal schema definition: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(defJSON))
	if err != nil {
		return fmt.Errorf("parse schema definition: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	url := fmt.Sprintf("inline://%s.json", schema.Name)
	if err := compiler.AddResource(url, doc); err != nil {
		return fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &ValidationError{Detail: fmt.Sprintf("not valid JSON: %v", err)}
	}
	if err := compiled.Validate(inst); err != nil {
		return &ValidationError{Detail: err.Error()}
	}
	return nil
}
