package parser

import "strings"

// sectionMarker is one entry of the known report-template vocabulary. A line
// containing Match (ignoring case) is a heading at Level regardless of its
// shape; Enters/Leaves adjust the major-stories section flag.
type sectionMarker struct {
	Match  string
	Level  int
	Enters bool // opens the major-stories section
	Leaves bool // closes it
}

// sectionMarkers is ordered; the first matching entry wins. New template
// vocabulary goes here, not into the classifier.
var sectionMarkers = []sectionMarker{
	{Match: "CURRENT AFFAIRS ANALYSIS", Level: 2},
	{Match: "MAJOR STORIES - IN DEPTH", Level: 3, Enters: true},
	{Match: "KEY POINTS TO REMEMBER", Level: 3, Leaves: true},
	{Match: "THE BIG PICTURE", Level: 3, Leaves: true},
	{Match: "WHAT TO WATCH", Level: 3, Leaves: true},
	{Match: "LATEST NEWS ARTICLES", Level: 3, Leaves: true},
}

// matchSectionMarker returns the first marker whose substring occurs in line,
// ignoring case, or nil if the line is not a known section title.
func matchSectionMarker(line string) *sectionMarker {
	upper := strings.ToUpper(line)
	for i := range sectionMarkers {
		if strings.Contains(upper, sectionMarkers[i].Match) {
			return &sectionMarkers[i]
		}
	}
	return nil
}
