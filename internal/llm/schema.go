package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a structured-output contract. Instances are package-level
// vars on the caller side (the quiz question schema), so compilation
// happens once per instance and is cached on it.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "quiz-question".
	Name string

	// Description is sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any

	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
}

// Check validates raw against the schema. A failure is a KindBadPayload
// BackendError carrying the offending content, which grants the caller
// one retry.
func (s *Schema) Check(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return BadPayload(raw, fmt.Errorf("response is not JSON: %w", err))
	}

	compiled, err := s.compile()
	if err != nil {
		return BadPayload(raw, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return BadPayload(raw, fmt.Errorf("schema %s: %w", s.Name, err))
	}
	return nil
}

// compile builds the jsonschema once per Schema instance.
func (s *Schema) compile() (*jsonschema.Schema, error) {
	s.compileOnce.Do(func() {
		// The compiler wants a parsed JSON document, not a Go map with
		// arbitrary value types, so round-trip the definition.
		defBytes, err := json.Marshal(s.Definition)
		if err != nil {
			s.compileErr = fmt.Errorf("marshal schema %s: %w", s.Name, err)
			return
		}
		var doc any
		if err := json.Unmarshal(defBytes, &doc); err != nil {
			s.compileErr = fmt.Errorf("parse schema %s: %w", s.Name, err)
			return
		}

		c := jsonschema.NewCompiler()
		url := fmt.Sprintf("schema://%s.json", s.Name)
		if err := c.AddResource(url, doc); err != nil {
			s.compileErr = fmt.Errorf("register schema %s: %w", s.Name, err)
			return
		}
		s.compiled, s.compileErr = c.Compile(url)
	})
	return s.compiled, s.compileErr
}
