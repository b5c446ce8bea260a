package ingest

import (
	"strings"
	"testing"
)

func TestForFile(t *testing.T) {
	cases := []struct {
		name      string
		supported bool
	}{
		{"Chapter 1.docx", true},
		{"Chapter 2 A.md", true},
		{"Chapter 3.txt", true},
		{"Chapter 4.html", true},
		{"Chapter 5.pdf", true},
		{"Chapter 6.DOCX", true},
		{"notes.json", false},
		{"script.csv", false},
	}
	for _, c := range cases {
		_, err := ForFile(c.name)
		if c.supported && err != nil {
			t.Errorf("ForFile(%q): unexpected error: %v", c.name, err)
		}
		if !c.supported && err == nil {
			t.Errorf("ForFile(%q): expected error, got none", c.name)
		}
		if got := IsSupportedExtension(c.name); got != c.supported {
			t.Errorf("IsSupportedExtension(%q) = %v, want %v", c.name, got, c.supported)
		}
	}
}

func TestTextExtractor_PreservesLineOrder(t *testing.T) {
	input := "Chapter 1\n\nSubchapter 1.1 - Intro\nFirst line.\nSecond line.\n"
	e := &TextExtractor{}
	lines, err := e.Extract(strings.NewReader(input), "Chapter 1.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Chapter 1", "", "Subchapter 1.1 - Intro", "First line.", "Second line."}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %#v", len(want), len(lines), lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line[%d]: expected %q, got %q", i, w, lines[i])
		}
	}
}

func TestTextExtractor_EmptyInput(t *testing.T) {
	e := &TextExtractor{}
	lines, err := e.Extract(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected 0 lines for empty input, got %d", len(lines))
	}
}

func TestMarkdownExtractor_FlattensBlocks(t *testing.T) {
	input := `Chapter 1

Subchapter 1.1 - Intro

The fog rolled in.

Nobody noticed.
`
	e := &MarkdownExtractor{}
	lines, err := e.Extract(strings.NewReader(input), "Chapter 1.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	joined := strings.Join(lines, "\n")
	for _, want := range []string{"Chapter 1", "Subchapter 1.1 - Intro", "The fog rolled in.", "Nobody noticed."} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected %q in extracted lines: %#v", want, lines)
		}
	}

	// Marker lines must survive as standalone lines for the state machine.
	found := false
	for _, line := range lines {
		if line == "Subchapter 1.1 - Intro" {
			found = true
		}
	}
	if !found {
		t.Errorf("subchapter marker not a standalone line: %#v", lines)
	}
}

func TestMarkdownExtractor_HeadingsBecomeLines(t *testing.T) {
	input := "# Chapter 2\n\n## Subchapter 2.1 - Return\n\nText here.\n"
	e := &MarkdownExtractor{}
	lines, err := e.Extract(strings.NewReader(input), "Chapter 2.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []string
	for _, l := range lines {
		if l != "" {
			got = append(got, l)
		}
	}
	want := []string{"Chapter 2", "Subchapter 2.1 - Return", "Text here."}
	if len(got) != len(want) {
		t.Fatalf("expected %d non-blank lines, got %#v", len(want), got)
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("line[%d]: expected %q, got %q", i, w, got[i])
		}
	}
}

func TestHTMLExtractor_ContentElements(t *testing.T) {
	input := `<html><head><title>Chapter 1</title><style>p{}</style></head><body>
<h1>Chapter 1</h1>
<p>Subchapter 1.1 - Intro</p>
<p>The fog rolled in.</p>
<script>ignore()</script>
</body></html>`
	e := &HTMLExtractor{}
	lines, err := e.Extract(strings.NewReader(input), "Chapter 1.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Chapter 1", "Subchapter 1.1 - Intro", "The fog rolled in."}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %#v", len(want), lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line[%d]: expected %q, got %q", i, w, lines[i])
		}
	}
}
