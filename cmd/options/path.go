package options

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs/url"
)

// absLocation resolves a command line location against home and working directories,
// URLs with a scheme are returned unchanged
func absLocation(location string) (string, error) {
	if location == "~" || strings.HasPrefix(location, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to expand %v: %w", location, err)
		}
		location = filepath.Join(home, location[1:])
	}
	if !url.IsRelative(location) {
		return location, nil
	}
	abs, err := filepath.Abs(location)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %v: %w", location, err)
	}
	return abs, nil
}
