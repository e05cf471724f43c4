package main

import (
	"bytes"
	"strings"
	"testing"
)

func runParse(t *testing.T, input string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetArgs(append([]string{"parse"}, args...))
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	return out.String()
}

func TestParseCmd_JSON(t *testing.T) {
	got := runParse(t, "• first\n• second", "--format", "json")
	if !strings.Contains(got, `"kind": "bullets"`) {
		t.Errorf("expected bullets block in JSON output, got %s", got)
	}
	if !strings.Contains(got, `"first"`) || !strings.Contains(got, `"second"`) {
		t.Errorf("expected items in JSON output, got %s", got)
	}
}

func TestParseCmd_Markdown(t *testing.T) {
	got := runParse(t, "CURRENT AFFAIRS ANALYSIS\nSome intro line.", "--format", "markdown")
	if !strings.Contains(got, "## CURRENT AFFAIRS ANALYSIS") {
		t.Errorf("expected markdown heading, got %s", got)
	}
}

func TestParseCmd_UnknownFormat(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetArgs([]string{"parse", "--format", "yaml"})
	rootCmd.SetIn(strings.NewReader("x"))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
