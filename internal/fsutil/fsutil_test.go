package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDirCreatesNestedPath(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "bundled", "v1", "docs")

	err := EnsureDir(target)
	if err != nil {
		t.Fatal(err)
	}

	// A second call on the now-existing path must also succeed.
	err = EnsureDir(target)
	if err != nil {
		t.Errorf("expected repeated EnsureDir to be a noop; got %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatal(err)
	}

	if !info.IsDir() {
		t.Errorf("expected %q to be a directory", target)
	}
}

func TestEnsureDirExistingPathIsNoop(t *testing.T) {
	tmp := t.TempDir()

	err := EnsureDir(tmp)
	if err != nil {
		t.Errorf("expected nil for existing directory; got %v", err)
	}
}

func TestWriteFileCreatesParentDirectories(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "out", "api.json")

	err := WriteFile(target, []byte(`{"openapi":"3.0.3"}`))
	if err != nil {
		t.Fatal(err)
	}

	contents, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}

	if string(contents) != `{"openapi":"3.0.3"}` {
		t.Errorf("unexpected file contents: %q", contents)
	}
}

func TestWriteFileExistingParentDirectory(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "api.json")

	err := WriteFile(target, []byte("hello"))
	if err != nil {
		t.Fatal(err)
	}

	err = WriteFile(target, []byte("hello again"))
	if err != nil {
		t.Fatal(err)
	}

	contents, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}

	if string(contents) != "hello again" {
		t.Errorf("unexpected file contents: %q", contents)
	}
}
