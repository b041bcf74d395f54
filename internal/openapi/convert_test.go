package openapi

import (
	"context"
	"strings"
	"testing"
)

func TestConvertV2UpgradesLegacyDocument(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeDocument(t, tmpDir, "legacy.yml", legacyDocument)

	doc, err := ConvertV2(path)
	if err != nil {
		t.Fatalf("ConvertV2 failed: %v", err)
	}

	if !strings.HasPrefix(doc.OpenAPI, "3.") {
		t.Errorf("expected an OpenAPI 3 document; got version %q", doc.OpenAPI)
	}

	if doc.Paths == nil || doc.Paths.Find("/pets") == nil {
		t.Error("expected the /pets path to survive conversion")
	}

	outcome := ValidateDocument(context.Background(), path, doc)
	if !outcome.Valid {
		t.Errorf("converted document does not validate; issues: %+v", outcome.Issues)
	}
}

func TestConvertV2RejectsNonLegacyDocument(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeDocument(t, tmpDir, "api.yml", selfContainedDocument)

	_, err := ConvertV2(path)
	if err == nil {
		t.Fatal("expected an error for a document that is not Swagger 2.0")
	}

	if !strings.Contains(err.Error(), "2.0") {
		t.Errorf("expected the error to name the required version; got %q", err.Error())
	}
}

func TestConvertV2MissingFile(t *testing.T) {
	_, err := ConvertV2("testdata/does-not-exist.yml")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
