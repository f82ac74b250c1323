// Package site renders the loaded posts into a static HTML site: one page
// per post, an index of the lot, the code stylesheet and an RSS feed.
package site

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mdpress/mdpress/config"
	"github.com/mdpress/mdpress/fsutil"
	"github.com/mdpress/mdpress/markdown"
	"github.com/mdpress/mdpress/types"
)

type Generator struct {
	Config   config.Site
	Markdown markdown.Config
}

// Generate renders every non-draft post plus the index into dest,
// replacing whatever was there. Failing to reset dest is fatal; each
// output file is fully rendered in memory before anything is written, so
// no partial file is ever left behind.
func (g Generator) Generate(posts []types.Post, dest string) error {
	if err := fsutil.Recreate(dest); err != nil {
		return fmt.Errorf("failed to reset destination %q: %w", dest, err)
	}
	live := published(posts)
	sortPosts(live)

	for _, p := range live {
		out := filepath.Join(dest, Slug(p)+".html")
		slog.Info("Generating post", "post", out)
		fragment := markdown.AsHTML(p.Body, g.Markdown)
		if err := writeFile(out, g.renderPage(p.Meta.Title, fragment)); err != nil {
			return fmt.Errorf("while generating post %q: %w", p.SrcPath, err)
		}
	}

	if err := writeFile(filepath.Join(dest, "index.html"), g.renderIndex(live)); err != nil {
		return fmt.Errorf("while generating index: %w", err)
	}
	css := markdown.CSS(g.Markdown)
	if err := writeFile(filepath.Join(dest, "output.css"), css.Data); err != nil {
		return fmt.Errorf("while generating stylesheet: %w", err)
	}
	feed, err := g.renderFeed(live)
	if err != nil {
		return fmt.Errorf("while generating feed: %w", err)
	}
	return writeFile(filepath.Join(dest, "feed.xml"), feed)
}

// CopyStatic copies passthrough assets into dest unchanged. A single
// asset failing does not stop the others.
func CopyStatic(files []string, dest string) error {
	var errs []error
	for _, file := range files {
		out := filepath.Join(dest, filepath.Base(file))
		slog.Info("Copying asset", "asset", out)
		if err := fsutil.Copy(file, out); err != nil {
			errs = append(errs, fmt.Errorf("failed to copy %q: %w", file, err))
		}
	}
	return errors.Join(errs...)
}

// Slug is the output filename stem: the source basename with its
// extension stripped. Colliding stems overwrite one another, that is
// accepted rather than guarded against.
func Slug(p types.Post) string {
	base := filepath.Base(p.SrcPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func published(posts []types.Post) []types.Post {
	live := make([]types.Post, 0, len(posts))
	for _, p := range posts {
		if p.Meta.Draft {
			continue
		}
		live = append(live, p)
	}
	return live
}

// sortPosts orders newest first. The canonical date form compares
// lexicographically in chronological order, and the stable sort keeps
// posts with equal dates in their input order.
func sortPosts(posts []types.Post) {
	slices.SortStableFunc(posts, func(a, b types.Post) int {
		return strings.Compare(b.Meta.Created, a.Meta.Created)
	})
}

func writeFile(out string, data []byte) error {
	f, err := fsutil.NewOutputFile(out)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %q: %w", out, err)
	}
	return f.Close()
}
