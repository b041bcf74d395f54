package openapi

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/rs/zerolog/log"
	"sigs.k8s.io/yaml"
)

// ConvertV2 reads a Swagger 2.0 document from path and upgrades it to OpenAPI 3.
// The returned document has not been validated yet; callers decide whether the
// upgraded result must also pass validation before use.
func ConvertV2(path string) (*openapi3.T, error) {
	log.Debug().Str("path", path).Msg("converting document to OpenAPI 3")

	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read document: %w", err)
	}

	// The v2 types only unmarshal from JSON, so YAML input gets translated first.
	// JSON documents pass through YAMLToJSON untouched.
	jsonContents, err := yaml.YAMLToJSON(contents)
	if err != nil {
		return nil, fmt.Errorf("could not parse document: %w", err)
	}

	var docV2 openapi2.T
	err = json.Unmarshal(jsonContents, &docV2)
	if err != nil {
		return nil, fmt.Errorf("could not decode document: %w", err)
	}

	if docV2.Swagger != "2.0" {
		return nil, fmt.Errorf("document is not a Swagger 2.0 document; found version %q", docV2.Swagger)
	}

	docV3, err := openapi2conv.ToV3(&docV2)
	if err != nil {
		return nil, fmt.Errorf("could not convert document: %w", err)
	}

	return docV3, nil
}
