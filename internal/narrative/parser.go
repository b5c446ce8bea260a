// Package narrative parses one authored story document — already reduced
// to an ordered sequence of text lines — into its subchapters and the
// optional trailing decision block.
//
// The parser is a single forward pass with four states: idle, inside a
// subchapter, inside a decision intro, inside a decision option. Marker
// lines ("Chapter N", "Subchapter N.M - Title", "[DECISION POINT]",
// "OPTION K: Title", field prefixes) drive the transitions; everything
// else is narrative prose or option detail.
package narrative

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"storybuild/internal/story"
)

// StructureError is a fatal defect in a single document's structure. The
// graph builder decides whether it aborts the build or skips the document.
type StructureError struct {
	Doc  string
	Line string
	Msg  string
}

func (e *StructureError) Error() string {
	if e.Line == "" {
		return fmt.Sprintf("%s: %s", e.Doc, e.Msg)
	}
	return fmt.Sprintf("%s: %s (line %q)", e.Doc, e.Msg, e.Line)
}

var (
	chapterHeaderRe = regexp.MustCompile(`(?i)^Chapter\s+(\d+)`)
	subchapterRe    = regexp.MustCompile(`(?i)^Subchapter\s+(\d+)\.(\d+)`)
	optionRe        = regexp.MustCompile(`^OPTION\s+([A-Z0-9]+)\s*:\s*(.*)`)
	previouslyRe    = regexp.MustCompile(`(?i)PREVIOUSLY\s*:?`)
)

// Marker tokens. Both decision spellings and both option spellings are
// accepted; authors have used each.
const (
	decisionMarker    = "[DECISION POINT]"
	decisionMarkerAlt = "[DECISION_POINT]"
	optionMarker      = "OPTION"
	optionMarkerAlt   = "[OPTION]"
)

// ParseDocument runs the state machine over a document's lines. docName is
// used in error messages; pathKey is the document's filename-derived path,
// stamped onto every subchapter.
func ParseDocument(lines []string, docName, pathKey string) ([]*story.Subchapter, error) {
	var (
		chapterNumber     *int
		subchapters       []*story.Subchapter
		current           *story.Subchapter
		pendingBridge     *string
		pendingPreviously *string
		decision          *story.Decision
		currentOption     *story.DecisionOption
	)

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if recap := previouslyFragment(line); recap != "" {
			pendingPreviously = &recap
			continue
		}

		if m := chapterHeaderRe.FindStringSubmatch(line); m != nil && chapterNumber == nil {
			n := atoi(m[1])
			chapterNumber = &n
			continue
		}

		// Puzzle unlock markers are authoring annotations, not narrative.
		if strings.HasPrefix(line, "PUZZLE") {
			continue
		}

		if strings.HasPrefix(line, "Bridge Text:") {
			bridge := stripQuotes(strings.TrimSpace(strings.TrimPrefix(line, "Bridge Text:")))
			pendingBridge = &bridge
			continue
		}

		if strings.HasPrefix(line, "Subchapter") {
			if current != nil {
				subchapters = append(subchapters, current)
			}
			m := subchapterRe.FindStringSubmatch(line)
			if m == nil {
				return nil, &StructureError{Doc: docName, Line: line, Msg: "unable to parse subchapter header"}
			}
			title := line
			if _, after, found := strings.Cut(line, " - "); found {
				title = after
			}
			current = &story.Subchapter{
				Chapter:    atoi(m[1]),
				Index:      atoi(m[2]),
				PathKey:    pathKey,
				Title:      strings.TrimSpace(title),
				BridgeText: pendingBridge,
				Previously: pendingPreviously,
			}
			pendingBridge = nil
			pendingPreviously = nil
			continue
		}

		if line == decisionMarker || line == decisionMarkerAlt {
			if current != nil {
				subchapters = append(subchapters, current)
				current = nil
			}
			decision = &story.Decision{}
			currentOption = nil
			continue
		}

		if decision != nil && hasOptionMarker(line) {
			if currentOption != nil {
				decision.Options = append(decision.Options, currentOption)
			}
			m := optionRe.FindStringSubmatch(normalizeOptionLine(line))
			if m == nil {
				return nil, &StructureError{Doc: docName, Line: line, Msg: "malformed option line"}
			}
			currentOption = &story.DecisionOption{
				Key:   strings.TrimSpace(m[1]),
				Title: stripQuotes(strings.TrimSpace(m[2])),
			}
			continue
		}

		if decision != nil {
			// Chapter-end and next-path brackets are authoring scaffolding.
			if strings.HasPrefix(line, "END CHAPTER") || strings.HasPrefix(line, "[PATH") {
				continue
			}
			if currentOption == nil {
				decision.Intro = append(decision.Intro, line)
				continue
			}
			switch {
			case strings.HasPrefix(line, "Consequence:"):
				currentOption.Consequence = fieldValue(line, "Consequence:")
			case strings.HasPrefix(line, "Focus:"):
				currentOption.Focus = fieldValue(line, "Focus:")
			case strings.HasPrefix(line, "Stats:"):
				currentOption.Stats = fieldValue(line, "Stats:")
			case strings.HasPrefix(line, "Outcome:"):
				currentOption.Outcome = fieldValue(line, "Outcome:")
				if chapter, target, ok := ExtractTarget(line); ok {
					currentOption.SetTarget(chapter, target)
				}
			default:
				if chapter, target, ok := ExtractTarget(line); ok && !currentOption.HasTarget() {
					currentOption.SetTarget(chapter, target)
				} else {
					currentOption.Details = append(currentOption.Details, line)
				}
			}
			continue
		}

		// Narrative prose.
		if current != nil {
			current.Paragraphs = append(current.Paragraphs, line)
		}
	}

	if currentOption != nil && decision != nil {
		decision.Options = append(decision.Options, currentOption)
	}
	if current != nil {
		subchapters = append(subchapters, current)
	}
	if decision != nil {
		if len(subchapters) == 0 {
			return nil, &StructureError{Doc: docName, Msg: "decision block with no subchapter to attach to"}
		}
		subchapters[len(subchapters)-1].Decision = decision
	}

	if chapterNumber == nil {
		return nil, &StructureError{Doc: docName, Msg: "failed to determine chapter number"}
	}

	// A malformed subchapter header may have parsed a stray number; the
	// document-level chapter is authoritative.
	for _, sub := range subchapters {
		sub.Chapter = *chapterNumber
	}

	return subchapters, nil
}

// previouslyFragment returns the recap text carried by a "PREVIOUSLY: ..."
// line, or "" when the line is not a recap (or carries no text, in which
// case it falls through to the other rules).
func previouslyFragment(line string) string {
	if !strings.Contains(strings.ToUpper(line), "PREVIOUSLY") {
		return ""
	}
	loc := previouslyRe.FindStringIndex(line)
	if loc == nil {
		return ""
	}
	remainder := strings.TrimSpace(line[loc[1]:])
	if remainder == "" {
		return ""
	}
	// Multi-line recaps are cut at the first paragraph break.
	if before, _, found := strings.Cut(remainder, "\n\n"); found {
		remainder = strings.TrimSpace(before)
	}
	var normalized []string
	for _, seg := range strings.Split(remainder, "\n") {
		seg = stripQuotes(strings.TrimSpace(seg))
		if seg != "" {
			normalized = append(normalized, seg)
		}
	}
	return strings.TrimSpace(strings.Join(normalized, "\n"))
}

func hasOptionMarker(line string) bool {
	return strings.HasPrefix(line, optionMarker) || strings.HasPrefix(line, optionMarkerAlt)
}

func normalizeOptionLine(line string) string {
	if strings.HasPrefix(line, optionMarkerAlt) {
		return optionMarker + strings.TrimPrefix(line, optionMarkerAlt)
	}
	return line
}

func fieldValue(line, prefix string) *string {
	v := strings.TrimSpace(strings.TrimPrefix(line, prefix))
	return &v
}

func stripQuotes(s string) string {
	return strings.Trim(s, "\"“”")
}

// atoi is only called on regex-captured digit runs.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
