package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mdpress/mdpress/config"
	"github.com/mdpress/mdpress/markdown"
	"github.com/mdpress/mdpress/types"
)

func testGenerator() Generator {
	return Generator{
		Config:   config.Site{Name: "Test Blog", URL: "https://example.com/"},
		Markdown: markdown.Default(),
	}
}

func post(title, created, src, body string) types.Post {
	return types.Post{
		Meta:    types.Metadata{Title: title, Created: created},
		SrcPath: src,
		Body:    []byte(body),
	}
}

func readOutput(t *testing.T, dest, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dest, name))
	if err != nil {
		t.Fatalf("missing output file %s: %v", name, err)
	}
	return string(data)
}

func TestSlug(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"content/a.md", "a"},
		{"a.md", "a"},
		{"/abs/path/hello-world.md", "hello-world"},
		{"dotted.name.md", "dotted.name"},
	}
	for _, tt := range tests {
		got := Slug(types.Post{SrcPath: tt.src})
		if got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestSortPostsDescendingAndStable(t *testing.T) {
	ps := []types.Post{
		post("old", "2023-05-01", "old.md", ""),
		post("tie-first", "2024-01-03", "tie1.md", ""),
		post("newest", "2025-02-01", "new.md", ""),
		post("tie-second", "2024-01-03", "tie2.md", ""),
	}
	sortPosts(ps)
	wantOrder := []string{"newest", "tie-first", "tie-second", "old"}
	for i, want := range wantOrder {
		if ps[i].Meta.Title != want {
			t.Fatalf("sort order[%d] = %q, want %q (full order %v)", i, ps[i].Meta.Title, want, ps)
		}
	}
	for i := 1; i < len(ps); i++ {
		if ps[i-1].Meta.Created < ps[i].Meta.Created {
			t.Errorf("order not descending at %d: %q < %q", i, ps[i-1].Meta.Created, ps[i].Meta.Created)
		}
	}
}

func TestGenerate(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "build")
	ps := []types.Post{
		post("Older Post", "2023-12-25", "b.md", "old words"),
		post("Hello World", "2024-01-03", "a.md", "Some body text."),
	}
	if err := testGenerator().Generate(ps, dest); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	index := readOutput(t, dest, "index.html")
	newer := strings.Index(index, `<a href="a.html">Hello World</a>`)
	older := strings.Index(index, `<a href="b.html">Older Post</a>`)
	if newer == -1 || older == -1 {
		t.Fatalf("index missing entries:\n%s", index)
	}
	if newer > older {
		t.Errorf("newer post listed after older post:\n%s", index)
	}
	if !strings.Contains(index, "<title>Home</title>") {
		t.Errorf("index page title should be Home:\n%s", index)
	}
	if !strings.Contains(index, "Published: 2024-01-03") {
		t.Errorf("index missing published date:\n%s", index)
	}

	page := readOutput(t, dest, "a.html")
	if !strings.Contains(page, "<title>Hello World</title>") {
		t.Errorf("post page title should be the post title:\n%s", page)
	}
	if !strings.Contains(page, "<p>Some body text.</p>") {
		t.Errorf("post page missing rendered body:\n%s", page)
	}

	if _, err := os.Stat(filepath.Join(dest, "output.css")); err != nil {
		t.Errorf("stylesheet not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dest, "feed.xml")); err != nil {
		t.Errorf("feed not written: %v", err)
	}
}

func TestGenerateExcludesDrafts(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "build")
	draft := post("Secret", "2024-06-01", "secret.md", "not yet")
	draft.Meta.Draft = true
	ps := []types.Post{draft, post("Public", "2024-01-03", "public.md", "hi")}
	if err := testGenerator().Generate(ps, dest); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dest, "secret.html")); !os.IsNotExist(err) {
		t.Error("draft post should not produce an output file")
	}
	index := readOutput(t, dest, "index.html")
	if strings.Contains(index, "Secret") {
		t.Errorf("draft post should not appear in the index:\n%s", index)
	}
	if !strings.Contains(index, "Public") {
		t.Errorf("non-draft post missing from the index:\n%s", index)
	}
}

func TestGenerateEmpty(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "build")
	if err := testGenerator().Generate(nil, dest); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	index := readOutput(t, dest, "index.html")
	if !strings.Contains(index, `<ul class="posts">`) {
		t.Errorf("empty index should still carry the list:\n%s", index)
	}
	if strings.Contains(index, "<li>") {
		t.Errorf("empty site should have no index entries:\n%s", index)
	}
}

func TestGenerateReplacesDestination(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "build")
	if err := os.MkdirAll(dest, 0755); err != nil {
		t.Fatal(err)
	}
	stale := filepath.Join(dest, "stale.html")
	if err := os.WriteFile(stale, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := testGenerator().Generate(nil, dest); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale output should be removed by regeneration")
	}
}

func TestCopyStatic(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	asset := filepath.Join(src, "style.css")
	if err := os.WriteFile(asset, []byte("body {}"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := CopyStatic([]string{asset}, dest); err != nil {
		t.Fatalf("CopyStatic failed: %v", err)
	}
	got := readOutput(t, dest, "style.css")
	if got != "body {}" {
		t.Errorf("copied asset = %q, want original bytes", got)
	}
}
