package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateJSONSchema returns the JSON schema of Config, field names as they are written in TOML
func GenerateJSONSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:              "mapstructure",
		DoNotReference:            true,
		ExpandedStruct:            true,
		AllowAdditionalProperties: true,
	}
	schema := r.Reflect(&Config{})
	schema.Title = "walletkit config file"
	schema.Description = "Configuration of the walletkit CLI and REST service"
	return json.MarshalIndent(schema, "", "  ")
}
