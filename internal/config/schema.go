package config

import (
	"github.com/invopop/jsonschema"
	"github.com/rxtech-lab/argo-chart/internal/types"
)

// GenerateSchema generates a JSON schema for the chart configuration.
func GenerateSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: false,
		ExpandedStruct:             true,
		AllowAdditionalProperties:  false,
	}

	schema := reflector.Reflect(&Config{})

	schema.Title = "argo-chart-config"
	schema.Description = "Configuration schema for a chart and its indicators"
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return schema
}

// JSONSchemaExtend lists the accepted indicator type names.
func (IndicatorConfig) JSONSchemaExtend(schema *jsonschema.Schema) {
	prop, ok := schema.Properties.Get("type")
	if !ok {
		return
	}

	names := []any{}
	for _, t := range types.AllIndicatorTypes() {
		names = append(names, string(t))
	}

	names = append(names, "sma", "boll", "bb")
	prop.Enum = names
}
