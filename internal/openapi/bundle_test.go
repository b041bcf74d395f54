package openapi

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// collectRefs walks a decoded document tree and gathers every $ref value it finds.
func collectRefs(node any, refs *[]string) {
	switch value := node.(type) {
	case map[string]any:
		for key, child := range value {
			if key == "$ref" {
				if ref, ok := child.(string); ok {
					*refs = append(*refs, ref)
				}
				continue
			}
			collectRefs(child, refs)
		}
	case []any:
		for _, child := range value {
			collectRefs(child, refs)
		}
	}
}

func TestBundleInternalizesFileReferences(t *testing.T) {
	tmpDir := t.TempDir()
	writeDocument(t, tmpDir, "components.yml", petstoreComponents)
	path := writeDocument(t, tmpDir, "api.yml", petstoreDocument)

	ctx := context.Background()

	doc, err := Bundle(ctx, path)
	if err != nil {
		t.Fatalf("Bundle failed: %v", err)
	}

	contents, err := EncodeJSON(doc)
	if err != nil {
		t.Fatalf("EncodeJSON failed: %v", err)
	}

	var tree map[string]any
	if err := json.Unmarshal(contents, &tree); err != nil {
		t.Fatalf("bundled output is not valid JSON: %v", err)
	}

	var refs []string
	collectRefs(tree, &refs)

	if len(refs) == 0 {
		t.Fatal("expected the bundled document to still carry references to its components")
	}

	for _, ref := range refs {
		if !strings.HasPrefix(ref, "#/") {
			t.Errorf("found external reference %q in bundled output", ref)
		}
	}
}

func TestBundledDocumentStillValidates(t *testing.T) {
	tmpDir := t.TempDir()
	writeDocument(t, tmpDir, "components.yml", petstoreComponents)
	path := writeDocument(t, tmpDir, "api.yml", petstoreDocument)

	ctx := context.Background()

	doc, err := Bundle(ctx, path)
	if err != nil {
		t.Fatalf("Bundle failed: %v", err)
	}

	outcome := ValidateDocument(ctx, path, doc)
	if !outcome.Valid {
		t.Errorf("bundled document no longer validates; issues: %+v", outcome.Issues)
	}
}

func TestBundleYAMLOutput(t *testing.T) {
	tmpDir := t.TempDir()
	writeDocument(t, tmpDir, "components.yml", petstoreComponents)
	path := writeDocument(t, tmpDir, "api.yml", petstoreDocument)

	doc, err := Bundle(context.Background(), path)
	if err != nil {
		t.Fatalf("Bundle failed: %v", err)
	}

	contents, err := EncodeYAML(doc)
	if err != nil {
		t.Fatalf("EncodeYAML failed: %v", err)
	}

	var tree map[string]any
	if err := yaml.Unmarshal(contents, &tree); err != nil {
		t.Fatalf("bundled output is not valid YAML: %v", err)
	}

	if tree["openapi"] != "3.0.3" {
		t.Errorf("expected openapi version 3.0.3 in output; got %v", tree["openapi"])
	}

	var refs []string
	collectRefs(tree, &refs)

	for _, ref := range refs {
		if !strings.HasPrefix(ref, "#/") {
			t.Errorf("found external reference %q in bundled output", ref)
		}
	}
}

func TestBundleMissingFile(t *testing.T) {
	_, err := Bundle(context.Background(), filepath.Join(t.TempDir(), "nope.yml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
