// Package posts turns a source directory into the list of posts the site
// is generated from.
package posts

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mdpress/mdpress/config"
	"github.com/mdpress/mdpress/metadata"
	"github.com/mdpress/mdpress/types"
)

// Load reads every `.md` file directly inside dir (non-recursive, exact
// lowercase extension) and parses its header. A file that cannot be read
// or whose header is malformed is logged and dropped; the rest of the
// batch is unaffected. Only a missing or unreadable directory is fatal.
func Load(dir string) ([]types.Post, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read source dir %q: %w", dir, err)
	}
	loaded := make([]types.Post, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("Skipping unreadable post", "file", path, "err", err)
			continue
		}
		meta, body, err := metadata.Parse(raw)
		if err != nil {
			slog.Warn("Skipping post with malformed header", "file", path, "err", err)
			continue
		}
		loaded = append(loaded, types.Post{Meta: meta, SrcPath: path, Body: body})
	}
	return loaded, nil
}

// Passthrough lists the regular files in dir that are neither posts nor
// the site config, so images and stylesheets next to the markdown can be
// copied into the output untouched.
func Passthrough(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read source dir %q: %w", dir, err)
	}
	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if filepath.Ext(entry.Name()) == ".md" || entry.Name() == config.FileName {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}
