package site

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mdpress/mdpress/types"
)

// The one shell every page uses; only the title and the article region
// differ between the index and a post page.
const pageShell = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<link rel="stylesheet" href="output.css">
</head>
<body>
<header><a href="index.html">%s</a></header>
<main>
%s
</main>
<footer>© %s %s</footer>
</body>
</html>
`

func (g Generator) renderPage(title string, article []byte) []byte {
	year := strconv.Itoa(time.Now().Year())
	author := g.Config.Author
	if author == "" {
		author = g.Config.Name
	}
	page := fmt.Sprintf(pageShell, title, g.Config.Name, article, year, author)
	page += fmt.Sprintf("<!-- Generated %s -->\n", time.Now().Format(time.RFC3339))
	return []byte(page)
}

func (g Generator) renderIndex(posts []types.Post) []byte {
	b := &strings.Builder{}
	b.WriteString(`<ul class="posts">` + "\n")
	for _, p := range posts {
		writeSummary(b, Slug(p)+".html", p)
	}
	b.WriteString(`</ul>`)
	return g.renderPage("Home", []byte(b.String()))
}

func writeSummary(b *strings.Builder, url string, p types.Post) {
	b.WriteString(`<li><a href="` + url + `">`)
	b.WriteString(p.Meta.Title)
	b.WriteString(`</a>`)
	b.WriteString(`<div class="published">Published: ` + p.Meta.Created + `</div>`)
	b.WriteString("</li>\n")
}
