// Package maze is the catalog of playable boards. Mazes ship embedded in
// the binary and can be overridden or extended through the filesystem, with
// the same search order the config loader uses.
package maze

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed mazes/*.txt
var embedded embed.FS

// Info contains metadata about a catalog maze.
type Info struct {
	ID    string
	Title string
}

// titles maps maze IDs to display names. Mazes without an entry fall back
// to their ID.
var titles = map[string]string{
	"classic": "Classic",
	"compact": "Compact",
	"tunnels": "Twin Tunnels",
}

// List returns every embedded maze, sorted by ID.
func List() []Info {
	entries, err := embedded.ReadDir("mazes")
	if err != nil {
		return nil
	}

	result := make([]Info, 0, len(entries))
	for _, e := range entries {
		id := strings.TrimSuffix(e.Name(), ".txt")
		title := titles[id]
		if title == "" {
			title = id
		}
		result = append(result, Info{ID: id, Title: title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Exists checks if a maze with the given ID is in the catalog.
func Exists(id string) bool {
	_, err := embedded.ReadFile(embeddedPath(id))
	return err == nil
}

// Title returns the display name for a maze ID.
func Title(id string) string {
	if t, ok := titles[id]; ok {
		return t
	}
	return id
}

// Load resolves a maze source by ID.
// Search order: ~/.pacman/mazes/<id>.txt -> ./mazes/<id>.txt -> embedded.
// An unknown ID is an error; the caller decides whether to degrade to an
// empty world or refuse.
func Load(id string) ([]string, error) {
	if userPath := userMazePath(id + ".txt"); userPath != "" {
		if lines, err := readLines(userPath); err == nil {
			return lines, nil
		}
	}

	if lines, err := readLines(filepath.Join("mazes", id+".txt")); err == nil {
		return lines, nil
	}

	data, err := embedded.ReadFile(embeddedPath(id))
	if err != nil {
		return nil, fmt.Errorf("maze: unknown maze %q", id)
	}
	return splitLines(string(data)), nil
}

// LoadFile reads a maze source from an arbitrary path. A missing or
// unreadable file returns an error alongside a nil source; parsing nil
// yields the empty world the engine is required to tolerate.
func LoadFile(path string) ([]string, error) {
	lines, err := readLines(path)
	if err != nil {
		return nil, fmt.Errorf("maze: cannot read %s: %w", path, err)
	}
	return lines, nil
}

// userMazePath returns the per-user override path, or empty if home is
// unavailable.
func userMazePath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pacman", "mazes", filename)
}

func embeddedPath(id string) string {
	return "mazes/" + id + ".txt"
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return splitLines(string(data)), nil
}

// splitLines breaks maze text into rows, dropping a trailing empty line
// left by a final newline. Carriage returns are stripped so Windows-saved
// maps load the same way.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
