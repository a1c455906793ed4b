package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON schema of the manifest for editor tooling
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	schema := reflector.Reflect(&Manifest{})
	schema.Title = "Composition Manifest"
	schema.Description = "Selects and overrides the compositions registered at startup."
	return json.MarshalIndent(schema, "", "  ")
}
