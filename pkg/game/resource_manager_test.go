package game

import (
	"os"
	"strings"
	"testing"
)

// TestLoadFontMissingFile verifies a missing font file is reported as
// an error naming the path, which the bootstrap turns into a fatal
// startup failure.
func TestLoadFontMissingFile(t *testing.T) {
	rm := NewResourceManager(nil)

	_, err := rm.LoadFont("assets/fonts/does_not_exist.ttf", 28)
	if err == nil {
		t.Fatal("Expected an error for a missing font file")
	}
	if !strings.Contains(err.Error(), "does_not_exist.ttf") {
		t.Errorf("Expected error to name the font path, got: %v", err)
	}
}

// TestLoadFontGarbageData verifies unparsable font data is rejected.
func TestLoadFontGarbageData(t *testing.T) {
	rm := NewResourceManager(nil)

	path := t.TempDir() + "/garbage.ttf"
	if err := os.WriteFile(path, []byte("not a font"), 0o644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	if _, err := rm.LoadFont(path, 28); err == nil {
		t.Error("Expected an error for unparsable font data")
	}
}
