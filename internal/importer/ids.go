package importer

import (
	"fmt"
	"os"
	"strings"
)

// LoadIDs reads newline-separated provider ids from path. Blank lines are
// skipped.
func LoadIDs(path string) ([]string, error) {
	if path == "" {
		return nil, ErrNoIDsConfigured
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading recipe ids: %w", err)
	}
	return parseIDs(string(contents)), nil
}

func parseIDs(contents string) []string {
	var ids []string
	for line := range strings.Lines(contents) {
		if id := strings.TrimSpace(line); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
