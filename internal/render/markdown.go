// Package render maps block sequences to display formats. It is the service
// side of the render-adapter contract: dashboards consume the JSON blocks
// directly, everything else goes through Markdown or HTML.
package render

import (
	"strings"

	"github.com/datahalo/briefing/internal/report"
)

// Markdown renders a block sequence as Markdown, one stanza per block.
func Markdown(blocks []report.Block) string {
	var parts []string
	for _, b := range blocks {
		switch b.Kind {
		case report.KindHeading:
			parts = append(parts, strings.Repeat("#", headingDepth(b.Level))+" "+b.Text)
		case report.KindParagraph:
			parts = append(parts, b.Text)
		case report.KindBullets:
			lines := make([]string, 0, len(b.Items))
			for _, item := range b.Items {
				lines = append(lines, "- "+item)
			}
			parts = append(parts, strings.Join(lines, "\n"))
		case report.KindSeparator:
			parts = append(parts, "---")
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}

func headingDepth(level int) int {
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}
