package dataset

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ValidationError reports a dataset that does not match its schema.
type ValidationError struct {
	Dataset string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid dataset %s: %v", e.Dataset, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// schemaCache caches compiled schemas by dataset kind.
var schemaCache sync.Map // map[Kind]*jsonschema.Schema

// validate checks raw fixture JSON against the dataset's schema.
func validate(k Kind, data []byte) error {
	compiled, err := compiledSchema(k)
	if err != nil {
		return err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := compiled.Validate(inst); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(k Kind) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(k); ok {
		return cached.(*jsonschema.Schema), nil
	}

	name := "data/schema/" + stemOf(k) + ".schema.json"
	raw, err := embedded.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", k)
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(k, compiled)
	return compiled, nil
}

func stemOf(k Kind) string {
	if k == KindFlags {
		return "countries"
	}
	return string(k)
}
