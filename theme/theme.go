// Package theme carries the built-in stylesheets and a small CSS reader used
// to inline them into generated documents.
package theme

import (
	"bytes"
	"embed"
	"fmt"
	"os"

	"github.com/bratpeki/bookgen/common"
)

//go:embed default-light.css default-dark.css
var builtin embed.FS

// Default returns the parsed built-in stylesheet for the requested theme.
func Default(v common.Theme) (*Stylesheet, error) {
	if v != common.ThemeLight && v != common.ThemeDark {
		return nil, fmt.Errorf("no built-in stylesheet for theme %q", v)
	}
	data, err := builtin.ReadFile(v.FileName())
	if err != nil {
		return nil, fmt.Errorf("unable to read built-in stylesheet: %w", err)
	}
	return Parse(bytes.NewReader(data), nil)
}

// Load reads and parses a stylesheet from disk.
func Load(path string) (*Stylesheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open stylesheet %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f, nil)
}
