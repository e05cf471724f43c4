package sanitize

import (
	"strings"
	"testing"
)

func TestClean_PlainTextPassesThrough(t *testing.T) {
	in := "CURRENT AFFAIRS ANALYSIS\n• a point\n\nProse line."
	if got := Clean(in); got != in {
		t.Errorf("expected pass-through, got %q", got)
	}
}

func TestClean_StripsTagsKeepsLineBreaks(t *testing.T) {
	in := "<p>CURRENT AFFAIRS ANALYSIS</p><p>• first point</p><p>• second point</p>"
	got := Clean(in)

	lines := nonBlankLines(got)
	want := []string{"CURRENT AFFAIRS ANALYSIS", "• first point", "• second point"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(lines), got)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line[%d]: expected %q, got %q", i, w, lines[i])
		}
	}
}

func TestClean_BrBecomesNewline(t *testing.T) {
	got := Clean("one<br>two<br/>three")
	lines := nonBlankLines(got)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), got)
	}
}

func TestClean_SkipsScriptAndStyle(t *testing.T) {
	in := "<div>visible</div><script>var hidden = 1;</script><style>.x{}</style>"
	got := Clean(in)
	if strings.Contains(got, "hidden") || strings.Contains(got, ".x{}") {
		t.Errorf("script/style content leaked: %q", got)
	}
	if !strings.Contains(got, "visible") {
		t.Errorf("expected visible text, got %q", got)
	}
}

func TestClean_StrayAngleBracketSurvives(t *testing.T) {
	// Prose that merely mentions a comparison should keep its text content.
	got := Clean("scores of 5 < 7 are low")
	if !strings.Contains(got, "are low") {
		t.Errorf("expected text content to survive, got %q", got)
	}
}

func nonBlankLines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			out = append(out, t)
		}
	}
	return out
}
