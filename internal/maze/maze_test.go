package maze

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestListCatalog(t *testing.T) {
	mazes := List()
	if len(mazes) == 0 {
		t.Fatal("Expected at least one embedded maze")
	}

	// Sorted by ID
	for i := 1; i < len(mazes); i++ {
		if mazes[i-1].ID >= mazes[i].ID {
			t.Errorf("List() not sorted: %q before %q", mazes[i-1].ID, mazes[i].ID)
		}
	}

	// The classic board always ships
	found := false
	for _, m := range mazes {
		if m.ID == "classic" {
			found = true
			if m.Title != "Classic" {
				t.Errorf("Title = %q, expected %q", m.Title, "Classic")
			}
		}
	}
	if !found {
		t.Error("Expected the classic maze in the catalog")
	}
}

func TestExists(t *testing.T) {
	if !Exists("classic") {
		t.Error("Exists(classic) = false, expected true")
	}
	if Exists("no-such-maze") {
		t.Error("Exists(no-such-maze) = true, expected false")
	}
}

func TestTitleFallsBackToID(t *testing.T) {
	if Title("classic") != "Classic" {
		t.Errorf("Title(classic) = %q", Title("classic"))
	}
	if Title("custom-thing") != "custom-thing" {
		t.Errorf("Title of an unknown ID should be the ID, got %q", Title("custom-thing"))
	}
}

func TestLoadEmbedded(t *testing.T) {
	for _, info := range List() {
		lines, err := Load(info.ID)
		if err != nil {
			t.Fatalf("Load(%q) failed: %v", info.ID, err)
		}
		if len(lines) == 0 {
			t.Fatalf("Load(%q) returned an empty board", info.ID)
		}

		// Every shipped board is rectangular and framed with walls
		width := len(lines[0])
		for i, line := range lines {
			if len(line) != width {
				t.Errorf("%s row %d has width %d, expected %d", info.ID, i, len(line), width)
			}
		}

		// Required markers
		joined := strings.Join(lines, "")
		if !strings.ContainsRune(joined, 'c') {
			t.Errorf("%s has no player start", info.ID)
		}
		if !strings.ContainsRune(joined, 'n') {
			t.Errorf("%s has no ghosts", info.ID)
		}
		if !strings.ContainsRune(joined, '.') {
			t.Errorf("%s has no pellets", info.ID)
		}
	}
}

func TestLoadUnknown(t *testing.T) {
	_, err := Load("no-such-maze")
	if err == nil {
		t.Error("Expected an error for an unknown maze ID")
	}
}

func TestLoadFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "mini.txt")

	content := "#####\r\n#c.n#\r\n#####\r\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	lines, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}

	// CRLF stripped, trailing empty line dropped
	if len(lines) != 3 {
		t.Fatalf("Expected 3 rows, got %d: %q", len(lines), lines)
	}
	if lines[1] != "#c.n#" {
		t.Errorf("Row 1 = %q, expected %q", lines[1], "#c.n#")
	}

	if _, err := LoadFile(filepath.Join(tmpDir, "missing.txt")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
