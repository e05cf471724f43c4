// Package sanitize normalizes raw summaries before parsing. Summaries are
// usually plain text, but upstream rich-text editors occasionally wrap them
// in HTML; markup is stripped with line breaks kept at block boundaries so
// the line-oriented parser still sees the report's structure.
package sanitize

import (
	"strings"

	"golang.org/x/net/html"
)

// blockTags are elements whose close implies a line break.
var blockTags = map[string]bool{
	"p": true, "div": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "tr": true, "section": true, "article": true,
	"hr": true, "pre": true,
}

// Clean returns the text content of s with any HTML markup removed. Plain
// text (nothing resembling a tag) passes through untouched.
func Clean(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// net/html is tolerant; a hard failure means the input was never
		// usable markup, so hand back the raw text.
		return s
	}
	var b strings.Builder
	walk(doc, &b)
	return b.String()
}

func walk(n *html.Node, b *strings.Builder) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "nav", "header", "footer":
			return
		case "br":
			b.WriteString("\n")
			return
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, b)
	}
	if n.Type == html.ElementNode && blockTags[n.Data] {
		b.WriteString("\n")
	}
}
