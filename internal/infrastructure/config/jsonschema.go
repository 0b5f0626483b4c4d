package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// SchemaFileName is written next to config.toml for editor completion.
const SchemaFileName = "config.schema.json"

// Schema returns the JSON schema of Config.
func Schema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})
	schema.ID = "https://github.com/bnema/shades/config.schema.json"
	schema.Title = "Shades Configuration"
	schema.Description = "Configuration schema for shades, per-site color filter overlays"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes the schema into dir.
func WriteSchemaFile(dir string) error {
	data, err := Schema()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, SchemaFileName), data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}
