// Package markdown renders post bodies to HTML fragments. Fenced code
// blocks are routed through chroma so the generated pages only need the
// class-based stylesheet exposed by CSS.
package markdown

import (
	"bytes"
	"io"

	"github.com/alecthomas/chroma"
	chromahtml "github.com/alecthomas/chroma/formatters/html"
	"github.com/alecthomas/chroma/lexers"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/mdpress/mdpress/types"
)

type Config struct {
	TabWidth   int
	Flags      mdhtml.Flags
	Extensions parser.Extensions
}

func Default() Config {
	return Config{
		TabWidth:   4,
		Flags:      mdhtml.CommonFlags,
		Extensions: parser.CommonExtensions | parser.Footnotes,
	}
}

// AsHTML renders one post body. The parser is single-use so a fresh one is
// built per call.
func AsHTML(body []byte, mc Config) []byte {
	return markdown.ToHTML(body, parser.NewWithExtensions(mc.Extensions), renderer(mc))
}

// CSS is the stylesheet matching the classes the code-block hook emits.
func CSS(mc Config) types.CSS {
	formatter := mc.formatter()
	buf := bytes.Buffer{}
	err := formatter.WriteCSS(&buf, codeStyle)
	if err != nil {
		panic("should not fail")
	}
	return types.CSS{Data: buf.Bytes()}
}

func (mc Config) formatter() *chromahtml.Formatter {
	return chromahtml.New(chromahtml.WithClasses(true), chromahtml.TabWidth(mc.TabWidth))
}

func renderer(mc Config) *mdhtml.Renderer {
	opts := mdhtml.RendererOptions{
		Flags:          mc.Flags,
		RenderNodeHook: renderHook(mc),
	}
	return mdhtml.NewRenderer(opts)
}

func renderHook(mc Config) func(w io.Writer, node ast.Node, entering bool) (ast.WalkStatus, bool) {
	formatter := mc.formatter()
	return func(w io.Writer, node ast.Node, entering bool) (ast.WalkStatus, bool) {
		block, ok := node.(*ast.CodeBlock)
		if !ok {
			return ast.GoToNext, false
		}
		source := string(block.Literal)
		l := lexers.Get(string(block.Info))
		if l == nil {
			l = lexers.Analyse(source)
		}
		if l == nil {
			l = lexers.Fallback
		}
		l = chroma.Coalesce(l)
		it, err := l.Tokenise(nil, source)
		if err != nil {
			// fall back to the plain <pre> rendering
			return ast.GoToNext, false
		}
		if err := formatter.Format(w, codeStyle, it); err != nil {
			return ast.GoToNext, false
		}
		return ast.GoToNext, true
	}
}
