package itembank

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// getCompiledSchema compiles the bank schema once and caches it.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(bankSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://item-bank.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// bankFile mirrors the on-disk JSON layout.
type bankFile struct {
	Items []itemRecord `json:"items"`
}

type itemRecord struct {
	ID               string   `json:"id"`
	Discrimination   float64  `json:"discrimination"`
	Difficulty       float64  `json:"difficulty"`
	Guessing         float64  `json:"guessing"`
	Skills           []string `json:"skills"`
	ExpectedTimeSecs float64  `json:"expected_time_secs"`
}

// LoadFile reads and validates a JSON item bank file.
func LoadFile(path string) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read item bank: %w", err)
	}
	return Parse(raw)
}

// Parse validates raw JSON against the bank schema and builds a Bank.
func Parse(raw []byte) (*Bank, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile item bank schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("item bank schema validation failed: %w", err)
	}

	var bf bankFile
	if err := json.Unmarshal(raw, &bf); err != nil {
		return nil, fmt.Errorf("decode item bank: %w", err)
	}

	items := make([]Item, len(bf.Items))
	for i, r := range bf.Items {
		items[i] = Item{
			ID:             r.ID,
			Discrimination: r.Discrimination,
			Difficulty:     r.Difficulty,
			Guessing:       r.Guessing,
			Skills:         r.Skills,
			ExpectedTime:   time.Duration(r.ExpectedTimeSecs * float64(time.Second)),
		}
	}
	return NewBank(items)
}
