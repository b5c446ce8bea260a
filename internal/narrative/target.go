package narrative

import (
	"regexp"
	"strconv"

	"storybuild/internal/story"
)

// Branch targets are written as free text ("Outcome: go to Chapter 4,
// Path FOO"), so extraction is a fixed-priority list of named rules.
// Each rule is tried in order and the first hit wins; a later rule never
// overrides an earlier one.
var (
	// targetChapterRule finds the destination chapter ("Chapter 4", "Ch 4").
	targetChapterRule = regexp.MustCompile(`(?i)Ch(?:apter)?\s*(\d+)`)

	// Path fragment rules, in priority order.
	targetPathRule    = regexp.MustCompile(`(?i)Path\s+([A-Za-z0-9\-]+)`)
	targetCodeRule    = regexp.MustCompile(`(?i)Chapter\s+\d+\s*:\s*([A-Za-z0-9\-]+)`)
	targetQuotedRule  = regexp.MustCompile(`"([^"]+)"`)
	pathFragmentRules = []*regexp.Regexp{targetPathRule, targetCodeRule, targetQuotedRule}
)

// ExtractTarget attempts to resolve the (chapter, pathKey) branch target
// named in a line of text. ok is false when no chapter number appears
// anywhere in the line; a chapter with no path fragment targets ROOT.
func ExtractTarget(line string) (chapter int, pathKey string, ok bool) {
	m := targetChapterRule.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	chapter, err := strconv.Atoi(m[1])
	if err != nil || chapter == 0 {
		return 0, "", false
	}

	for _, rule := range pathFragmentRules {
		if fm := rule.FindStringSubmatch(line); fm != nil {
			return chapter, story.NormalizePathKey(fm[1]), true
		}
	}
	return chapter, story.RootPathKey, true
}
