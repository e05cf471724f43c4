// Package parser segments raw narrative report text into renderable blocks.
//
// The analysis service returns each smart-analysis summary as one freeform
// string whose only structure is typographic convention: all-caps section
// titles, "• " bullet lines, a fixed box-drawing rule between sections, and
// blank-line breaks. Parse walks the lines once and folds them into an
// ordered []report.Block.
package parser

import (
	"strings"

	"github.com/datahalo/briefing/internal/report"
)

// Parse converts a raw summary into an ordered block sequence. It is total:
// any string yields a valid (possibly empty) sequence, and text with no
// recognizable structure degrades to one paragraph per non-blank line.
func Parse(raw string) []report.Block {
	lines := strings.Split(raw, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	var blocks []report.Block
	var pending []string // open bullet run
	inMajorStories := false

	flush := func() {
		if len(pending) == 0 {
			return
		}
		blocks = append(blocks, report.Bullets(pending))
		pending = nil
	}

	for i, line := range lines {
		var next string
		if i+1 < len(lines) {
			next = lines[i+1]
		}

		switch classify(line, next, inMajorStories) {
		case lineBlank:
			flush()
		case lineSeparator:
			flush()
			blocks = append(blocks, report.Sep())
		case lineSectionTitle:
			flush()
			m := matchSectionMarker(line)
			if m.Enters {
				inMajorStories = true
			} else if m.Leaves {
				inMajorStories = false
			}
			blocks = append(blocks, report.Heading(m.Level, line))
		case lineBullet:
			pending = append(pending, strings.TrimPrefix(line, bulletPrefix))
		case lineHeading:
			flush()
			blocks = append(blocks, report.Heading(3, line))
		case linePlain:
			flush()
			blocks = append(blocks, report.Paragraph(line))
		}
	}
	// End of input closes any open bullet run.
	flush()

	return blocks
}
