package graph

import (
	"fmt"
	"sort"

	"storybuild/internal/puzzle"
	"storybuild/internal/story"
)

// Report lists consistency findings for a built graph. Referential
// violations are the hard findings; the rest are advisory.
type Report struct {
	// BrokenTargets are decision options whose resolved target has no
	// entry in the graph.
	BrokenTargets []string
	// MissingDecisions are non-terminal C entries that end without a
	// decision point.
	MissingDecisions []string
	// BadBoards are boards violating the 4x4 / unique-word / outliers-
	// present invariants.
	BadBoards []string
}

// Clean reports whether no findings of any kind were recorded.
func (r *Report) Clean() bool {
	return len(r.BrokenTargets) == 0 && len(r.MissingDecisions) == 0 && len(r.BadBoards) == 0
}

// Check validates a built graph. maxChapter is the story's terminal
// chapter: C entries at that chapter legitimately end without a decision.
func Check(g Graph, maxChapter int) *Report {
	report := &Report{}

	for _, caseNumber := range sortedKeys(g) {
		bucket := g[caseNumber]
		for _, pathKey := range sortedKeys(bucket) {
			entry := bucket[pathKey]
			checkTargets(g, report, caseNumber, pathKey, entry)
			checkDecisionPresence(report, caseNumber, pathKey, entry, maxChapter)
			checkBoard(report, caseNumber, pathKey, entry.Board)
		}
	}
	return report
}

func checkTargets(g Graph, report *Report, caseNumber, pathKey string, entry *Entry) {
	if entry.Decision == nil {
		return
	}
	for _, opt := range entry.Decision.Options {
		if opt.NextChapter == nil || opt.NextPathKey == nil {
			continue
		}
		// A branch target always lands on the A subchapter of the
		// destination chapter.
		target, err := story.CaseNumber(*opt.NextChapter, 1)
		if err != nil {
			report.BrokenTargets = append(report.BrokenTargets, fmt.Sprintf(
				"%s/%s option %s: invalid target chapter %d", caseNumber, pathKey, opt.Key, *opt.NextChapter))
			continue
		}
		if _, ok := g[target][*opt.NextPathKey]; !ok {
			report.BrokenTargets = append(report.BrokenTargets, fmt.Sprintf(
				"%s/%s option %s: no entry at %s/%s", caseNumber, pathKey, opt.Key, target, *opt.NextPathKey))
		}
	}
}

func checkDecisionPresence(report *Report, caseNumber, pathKey string, entry *Entry, maxChapter int) {
	if entry.Subchapter != 3 || entry.Chapter >= maxChapter || entry.Decision != nil {
		return
	}
	report.MissingDecisions = append(report.MissingDecisions, fmt.Sprintf(
		"%s/%s: non-terminal chapter ends without a decision point", caseNumber, pathKey))
}

func checkBoard(report *Report, caseNumber, pathKey string, board *puzzle.Board) {
	if board == nil {
		return
	}
	bad := func(msg string) {
		report.BadBoards = append(report.BadBoards, fmt.Sprintf("%s/%s: %s", caseNumber, pathKey, msg))
	}

	if len(board.OutlierWords) != puzzle.OutlierCount {
		bad(fmt.Sprintf("expected %d outliers, found %d", puzzle.OutlierCount, len(board.OutlierWords)))
	}
	if len(board.Grid) != puzzle.GridSize/puzzle.OutlierCount {
		bad(fmt.Sprintf("expected %d grid rows, found %d", puzzle.GridSize/puzzle.OutlierCount, len(board.Grid)))
		return
	}

	seen := make(map[string]bool)
	for _, row := range board.Grid {
		if len(row) != puzzle.OutlierCount {
			bad(fmt.Sprintf("grid row has %d words, expected %d", len(row), puzzle.OutlierCount))
		}
		for _, w := range row {
			if seen[w] {
				bad(fmt.Sprintf("duplicate grid word %q", w))
			}
			seen[w] = true
		}
	}
	for _, outlier := range board.OutlierWords {
		if !seen[outlier] {
			bad(fmt.Sprintf("outlier %q missing from grid", outlier))
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
