package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"

	"github.com/datahalo/briefing/internal/report"
)

// HTML renders a block sequence as an HTML fragment by converting the
// Markdown rendering with goldmark.
func HTML(blocks []report.Block) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(Markdown(blocks)), &buf); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}
