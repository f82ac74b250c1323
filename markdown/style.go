package markdown

import (
	"github.com/alecthomas/chroma"
)

var codeStyle = chroma.MustNewStyle("mdpress", chroma.StyleEntries{
	chroma.Error:             "#f85149",
	chroma.LineHighlight:     "bg:#6e7681",
	chroma.LineNumbers:       "#6e7681",
	chroma.Background:        "#e6edf3 bg:#0d1117",
	chroma.Keyword:           "#ff7b72",
	chroma.KeywordConstant:   "#79c0ff",
	chroma.Name:              "#e6edf3",
	chroma.NameClass:         "#f0883e",
	chroma.NameConstant:      "#79c0ff",
	chroma.NameFunction:      "#d2a8ff",
	chroma.NameNamespace:     "#ff7b72",
	chroma.NameTag:           "#7ee787",
	chroma.NameVariable:      "#79c0ff",
	chroma.Literal:           "#a5d6ff",
	chroma.LiteralDate:       "#a5d6ff",
	chroma.Operator:          "#ff7b72",
	chroma.Comment:           "#8b949e",
	chroma.CommentPreproc:    "#8b949e",
	chroma.Generic:           "#e6edf3",
	chroma.GenericDeleted:    "#ffa198 bg:#490202",
	chroma.GenericInserted:   "#56d364 bg:#0f5323",
	chroma.GenericHeading:    "#79c0ff",
	chroma.GenericSubheading: "#79c0ff",
	chroma.GenericUnderline:  "underline",
	chroma.TextWhitespace:    "#6e7681",
})
