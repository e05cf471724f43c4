package parser

import (
	"regexp"
	"strings"
)

// lineKind is the lexical category assigned to one trimmed input line.
type lineKind int

const (
	lineBlank lineKind = iota
	lineSeparator
	lineSectionTitle // known template vocabulary, see sections.go
	lineBullet
	lineHeading // inferred from typographic convention
	linePlain
)

// bulletPrefix is the two-character bullet marker: glyph plus space.
const bulletPrefix = "• "

// separatorRun is the fixed horizontal rule the report template draws
// between sections: 49 box-drawing characters.
var separatorRun = strings.Repeat("━", 49)

// headingShape matches lines that look like all-caps titles.
var headingShape = regexp.MustCompile(`^[A-Z0-9' -]+$`)

// Literal titles the template always emits. The marker table owns them, so
// the shape heuristic must not fire for them a second time.
var excludedTitles = []string{
	"DataHalo Current Affairs Analysis",
	"CURRENT AFFAIRS ANALYSIS",
}

// classify assigns a category to one trimmed line. next is the following
// trimmed line ("" at end of input); inMajorStories relaxes the heading
// heuristic for the mixed-case sub-headings that only occur in that section.
func classify(line, next string, inMajorStories bool) lineKind {
	switch {
	case line == "":
		return lineBlank
	case strings.Contains(line, separatorRun):
		return lineSeparator
	case matchSectionMarker(line) != nil:
		return lineSectionTitle
	case strings.HasPrefix(line, bulletPrefix):
		return lineBullet
	case isHeadingShaped(line, next, inMajorStories):
		return lineHeading
	default:
		return linePlain
	}
}

func isHeadingShaped(line, next string, inMajorStories bool) bool {
	// Inside the major-stories section a sub-heading sits directly above its
	// bullet run, even when it is not all-caps.
	if inMajorStories && strings.HasPrefix(next, bulletPrefix) {
		return true
	}
	if len(line) <= 3 || !headingShape.MatchString(line) {
		return false
	}
	for _, t := range excludedTitles {
		if strings.Contains(line, t) {
			return false
		}
	}
	return true
}
