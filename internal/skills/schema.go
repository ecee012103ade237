package skills

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// recordSchema is a named JSON schema compiled on first use.
type recordSchema struct {
	name string
	def  func() map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

var snapshotSchema = &recordSchema{name: "snapshot", def: snapshotSchemaDef}

var playerInfoSchema = &recordSchema{name: "player_info", def: playerInfoSchemaDef}

func snapshotSchemaDef() map[string]any {
	props := make(map[string]any, Count+1)
	required := make([]string, 0, Count+1)
	for _, e := range catalog {
		props[e.name] = map[string]any{"type": "integer", "minimum": 0}
		required = append(required, e.name)
	}
	props["Ehp"] = map[string]any{"type": "number", "minimum": 0}
	required = append(required, "Ehp")

	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   required,
	}
}

func playerInfoSchemaDef() map[string]any {
	flag := map[string]any{"enum": []any{0, 1, false, true}}
	optionalStamp := map[string]any{"type": []any{"string", "null"}}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"Username":            map[string]any{"type": "string", "minLength": 1},
			"Country":             map[string]any{"type": "string"},
			"Game mode":           map[string]any{"type": "integer", "minimum": 0, "maximum": 3},
			"fresh_start_account": flag,
			"Cb-3":                flag,
			"F2p":                 flag,
			"Banned":              flag,
			"Disqualified":        flag,
			"Clan preference":     map[string]any{"type": []any{"integer", "null"}, "minimum": 0},
			"Last checked":        optionalStamp,
			"Last changed":        optionalStamp,
			"Last changed KC":     optionalStamp,
			"Datapoint Cooldown":  map[string]any{"type": "string"},
		},
		"required": []any{
			"Username", "Country", "Game mode", "fresh_start_account", "Cb-3",
			"F2p", "Banned", "Disqualified", "Datapoint Cooldown",
		},
	}
}

// compile returns the cached compiled schema, compiling it on first call.
func (s *recordSchema) compile() (*jsonschema.Schema, error) {
	s.once.Do(func() {
		// The compiler wants the same value shapes UnmarshalJSON produces,
		// so the Go map goes through a JSON round trip first.
		defBytes, err := json.Marshal(s.def())
		if err != nil {
			s.err = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
		if err != nil {
			s.err = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		url := fmt.Sprintf("schema://%s.json", s.name)
		if err := c.AddResource(url, doc); err != nil {
			s.err = fmt.Errorf("add resource: %w", err)
			return
		}
		s.compiled, s.err = c.Compile(url)
	})
	return s.compiled, s.err
}

// validateRecord checks raw against the schema.
func validateRecord(s *recordSchema, raw []byte) error {
	compiled, err := s.compile()
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", s.name, err)
	}

	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
