// Package report renders validation diagnostics and the ranked index into
// a markdown digest, with an HTML rendering for the dashboard's
// diagnostics panel.
package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"techindex/domain/index"
)

// Digest builds a markdown summary of a processed batch. Errors make up
// the blocking message shown to the user; warnings are listed for
// reference only.
func Digest(rep index.Report, records []index.CountryRecord) string {
	var b strings.Builder
	b.WriteString("# Technology Index Report\n\n")

	if rep.IsValid {
		fmt.Fprintf(&b, "Processed **%d** countries.\n\n", len(records))
	} else {
		b.WriteString("**Validation failed — no data was loaded.**\n\n")
	}

	if len(rep.Errors) > 0 {
		b.WriteString("## Errors\n\n")
		for _, e := range rep.Errors {
			fmt.Fprintf(&b, "- %s\n", e)
		}
		b.WriteString("\n")
	}

	if len(rep.Warnings) > 0 {
		b.WriteString("## Warnings\n\n")
		for _, w := range rep.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
		b.WriteString("\n")
	}

	if len(records) > 0 {
		b.WriteString("## Ranking\n\n")
		b.WriteString("| # | Country | Composite |\n|---|---------|-----------|\n")
		for i, rec := range records {
			fmt.Fprintf(&b, "| %d | %s | %.4f |\n", i+1, rec.Country, rec.TotalScore)
		}
	}

	return b.String()
}

// RenderHTML converts a markdown digest to HTML.
func RenderHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse([]byte(md))
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.Render(doc, renderer)
}
