package graph

import (
	"strings"
	"testing"

	"storybuild/internal/puzzle"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func testGraph() Graph {
	return Graph{
		"001C": {
			"ROOT": &Entry{
				Chapter: 1, Subchapter: 3, Title: "Fork",
				Decision: &Decision{
					Intro: []string{"Choose."},
					Options: []*Option{
						{Key: "A", Title: "Go", NextChapter: intPtr(2), NextPathKey: strPtr("A"), Details: []string{}},
						{Key: "B", Title: "Stay", Details: []string{}},
					},
				},
			},
		},
		"002A": {
			"A": &Entry{Chapter: 2, Subchapter: 1, Title: "Fallout"},
		},
	}
}

func TestCheck_CleanGraph(t *testing.T) {
	g := testGraph()
	// Close the open thread so only structural findings remain.
	g["002C"] = map[string]*Entry{
		"A": {Chapter: 2, Subchapter: 3, Title: "End", Decision: &Decision{Intro: []string{}, Options: []*Option{}}},
	}
	report := Check(g, 12)
	if len(report.BrokenTargets) != 0 {
		t.Errorf("unexpected broken targets: %v", report.BrokenTargets)
	}
}

func TestCheck_BrokenTarget(t *testing.T) {
	g := testGraph()
	g["001C"]["ROOT"].Decision.Options[1].NextChapter = intPtr(9)
	g["001C"]["ROOT"].Decision.Options[1].NextPathKey = strPtr("NOWHERE")

	report := Check(g, 12)
	if len(report.BrokenTargets) != 1 {
		t.Fatalf("expected 1 broken target, got %d: %v", len(report.BrokenTargets), report.BrokenTargets)
	}
	if !strings.Contains(report.BrokenTargets[0], "009A/NOWHERE") {
		t.Errorf("finding should name the missing slot: %s", report.BrokenTargets[0])
	}
}

func TestCheck_TargetLandsOnSubchapterA(t *testing.T) {
	// Option A points at chapter 2 path A; 002A/A exists, so no finding
	// even though 002C does not.
	report := Check(testGraph(), 12)
	for _, f := range report.BrokenTargets {
		if strings.Contains(f, "option A") {
			t.Errorf("resolvable target reported broken: %s", f)
		}
	}
}

func TestCheck_MissingDecisionNonTerminal(t *testing.T) {
	g := Graph{
		"005C": {"ROOT": &Entry{Chapter: 5, Subchapter: 3, Title: "Dead end"}},
	}
	report := Check(g, 12)
	if len(report.MissingDecisions) != 1 {
		t.Fatalf("expected missing-decision finding, got %v", report.MissingDecisions)
	}
}

func TestCheck_TerminalChapterNeedsNoDecision(t *testing.T) {
	g := Graph{
		"012C": {"ROOT": &Entry{Chapter: 12, Subchapter: 3, Title: "Epilogue"}},
	}
	report := Check(g, 12)
	if len(report.MissingDecisions) != 0 {
		t.Errorf("terminal chapter should not be flagged: %v", report.MissingDecisions)
	}
}

func TestCheck_BadBoard(t *testing.T) {
	g := Graph{
		"001A": {"ROOT": &Entry{
			Chapter: 1, Subchapter: 1, Title: "Arrival",
			Board: &puzzle.Board{
				OutlierWords: []string{"CLUE", "LEAD", "PROOF", "TRUTH"},
				Grid: [][]string{
					{"CLUE", "LEAD", "PROOF", "TRUTH"},
					{"FILE", "CASE", "LOCK", "CODE"},
					{"TIME", "FACT", "LIES", "TIME"}, // duplicate
					{"DARK", "COLD", "RAIN", "CITY"},
				},
			},
		}},
	}
	report := Check(g, 12)
	if len(report.BadBoards) == 0 {
		t.Error("duplicate grid word should be reported")
	}

	goodBoard := puzzle.Generate("the grange ledger", "", "001A|ROOT")
	g["001A"]["ROOT"].Board = goodBoard
	report = Check(g, 12)
	if len(report.BadBoards) != 0 {
		t.Errorf("generated board should validate: %v", report.BadBoards)
	}
}
