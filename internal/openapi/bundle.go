package openapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/rs/zerolog/log"
	"sigs.k8s.io/yaml"
)

// Bundle loads the document at path, pulls in every file and URL reference it makes,
// and rewrites those references so the returned document is fully self-contained.
// Referenced objects are moved under the document's own components section.
//
// Bundle assumes the document has already passed validation; loading failures are
// still returned since bundling cannot proceed without a parseable document tree.
func Bundle(ctx context.Context, path string) (*openapi3.T, error) {
	log.Debug().Str("path", path).Msg("bundling document")

	doc, err := Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not load document: %w", err)
	}

	doc.InternalizeRefs(ctx, nil)

	return doc, nil
}

// EncodeJSON renders a document as indented JSON, ready to write to disk.
func EncodeJSON(doc *openapi3.T) ([]byte, error) {
	contents, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("could not encode document: %w", err)
	}

	return append(contents, '\n'), nil
}

// EncodeYAML renders a document as YAML, ready to write to disk.
func EncodeYAML(doc *openapi3.T) ([]byte, error) {
	contents, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("could not encode document: %w", err)
	}

	return contents, nil
}
