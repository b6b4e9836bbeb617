package importer

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestLoadIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ids.txt")
	if err := os.WriteFile(path, []byte("12345\r\n\n  67890 \n11111"), 0o600); err != nil {
		t.Fatalf("writing ids: %v", err)
	}

	ids, err := LoadIDs(path)
	if err != nil {
		t.Fatalf("LoadIDs() error = %v", err)
	}
	if want := []string{"12345", "67890", "11111"}; !slices.Equal(ids, want) {
		t.Errorf("LoadIDs() = %q, want %q", ids, want)
	}
}

func TestLoadIDsErrors(t *testing.T) {
	if _, err := LoadIDs(""); !errors.Is(err, ErrNoIDsConfigured) {
		t.Errorf("expected ErrNoIDsConfigured, got %v", err)
	}
	if _, err := LoadIDs(filepath.Join(t.TempDir(), "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}
