// Package story holds the domain types for the branching narrative:
// subchapters, decision points, and the key formats (PathKey, CaseNumber)
// that identify nodes in the story graph.
package story

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// RootPathKey is the sentinel path for the unbranched trunk of the story.
const RootPathKey = "ROOT"

// caseLetters maps a subchapter index to its case letter.
var caseLetters = map[int]string{1: "A", 2: "B", 3: "C"}

// Subchapter is one authored narrative unit. It maps 1:1 to a CaseNumber
// within a single document.
type Subchapter struct {
	Chapter    int
	Index      int
	PathKey    string
	Title      string
	BridgeText *string
	Paragraphs []string
	Previously *string
	Decision   *Decision
}

// Decision is the branch point structure at the end of a subchapter.
type Decision struct {
	Intro   []string
	Options []*DecisionOption
}

// DecisionOption is one selectable choice within a decision point.
type DecisionOption struct {
	Key         string
	Title       string
	Consequence *string
	Focus       *string
	Stats       *string
	Outcome     *string
	NextChapter *int
	NextPathKey *string
	Details     []string
}

// HasTarget reports whether the option's branch target has been resolved.
func (o *DecisionOption) HasTarget() bool {
	return o.NextChapter != nil && o.NextPathKey != nil
}

// SetTarget records the branch target. The first resolved target wins;
// later calls are no-ops.
func (o *DecisionOption) SetTarget(chapter int, pathKey string) {
	if o.HasTarget() {
		return
	}
	o.NextChapter = &chapter
	o.NextPathKey = &pathKey
}

// CaseNumber formats a chapter number and subchapter index into the
// three-digit-plus-letter node identifier, e.g. (5, 3) -> "005C".
func CaseNumber(chapter, index int) (string, error) {
	letter, ok := caseLetters[index]
	if !ok {
		return "", fmt.Errorf("no case letter for subchapter index %d in chapter %d", index, chapter)
	}
	return fmt.Sprintf("%03d%s", chapter, letter), nil
}

// CaseNumber returns the subchapter's graph key.
func (s *Subchapter) CaseNumber() (string, error) {
	return CaseNumber(s.Chapter, s.Index)
}

var (
	hyphenCodeRe = regexp.MustCompile(`^[A-Za-z0-9\-]+$`)
	nonAlnumRe   = regexp.MustCompile(`[^A-Za-z0-9]`)
	decoratorRe  = regexp.MustCompile(`(?i)super-path|path`)
)

// NormalizePathKey reduces a free-text path token to its canonical key:
// decorator words removed, hyphenated letter codes collapsed ("A-F-L" ->
// "AFL"), first whitespace segment only, uppercased, non-alphanumerics
// stripped. An empty result collapses to ROOT.
func NormalizePathKey(token string) string {
	token = decoratorRe.ReplaceAllString(strings.TrimSpace(token), "")
	token = strings.TrimSpace(token)
	if token == "" {
		return RootPathKey
	}
	if hyphenCodeRe.MatchString(token) {
		token = strings.ReplaceAll(token, "-", "")
	}
	if fields := strings.Fields(token); len(fields) > 0 {
		token = fields[0]
	}
	cleaned := strings.ToUpper(nonAlnumRe.ReplaceAllString(token, ""))
	if cleaned == "" {
		return RootPathKey
	}
	return cleaned
}

// PathKeyFromFilename derives the document's default path key from its
// filename stem, e.g. "Chapter 5 A-F.docx" -> "AF". Stems with two or
// fewer tokens belong to the trunk.
func PathKeyFromFilename(name string) string {
	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	parts := strings.Fields(stem)
	if len(parts) <= 2 {
		return RootPathKey
	}
	return NormalizePathKey(strings.Join(parts[2:], " "))
}
