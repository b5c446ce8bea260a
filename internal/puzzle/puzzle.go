// Package puzzle derives the word-finding minigame boards from narrative
// text: four "outlier" keywords hidden among twelve filler words in a
// shuffled 4x4 grid, plus a short thematic label.
package puzzle

import (
	"hash/fnv"
	"math/rand"
	"regexp"
	"sort"
	"strings"
)

const (
	// GridSize is the total word count of a board.
	GridSize = 16
	// OutlierCount is the number of hidden keywords per board.
	OutlierCount = 4

	themeIcon        = "🔎"
	defaultThemeName = "INVESTIGATION"
	defaultSummary   = "Find the words that don't belong."
	maxThemeNameLen  = 15
	maxSummaryLen    = 100
)

// defaultOutliers is used when the source text yields no keywords at all.
var defaultOutliers = []string{"CLUE", "LEAD", "PROOF", "TRUTH"}

// Theme is the short label shown alongside a board.
type Theme struct {
	Name    string `json:"name"`
	Icon    string `json:"icon"`
	Summary string `json:"summary"`
}

// Board is one derived word puzzle.
type Board struct {
	OutlierWords []string   `json:"outlierWords"`
	Grid         [][]string `json:"grid"`
	OutlierTheme Theme      `json:"outlierTheme"`
}

var nonLetterRe = regexp.MustCompile(`[^a-zA-Z\s]`)

// ExtractKeywords mines up to count salient keywords from text: words of
// three or more letters that are not stopwords, first occurrence winning,
// longest first (stable, so equal-length words keep text order). Results
// are uppercased.
func ExtractKeywords(text string, count int) []string {
	if text == "" {
		return nil
	}
	normalized := strings.ToLower(nonLetterRe.ReplaceAllString(text, " "))

	var candidates []string
	seen := make(map[string]bool)
	for _, token := range strings.Fields(normalized) {
		if len(token) < 3 || stopwords[token] || seen[token] {
			continue
		}
		candidates = append(candidates, strings.ToUpper(token))
		seen[token] = true
	}

	// Longer words tend to be the distinctive ones.
	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i]) > len(candidates[j])
	})

	if len(candidates) > count {
		candidates = candidates[:count]
	}
	return candidates
}

// Generate derives a board for one story entry. The bridge text is the
// preferred keyword source; narrative text is the fallback. seedKey (the
// entry's CaseNumber|PathKey) fixes the RNG so boards are reproducible
// across builds.
func Generate(bridge, narrative, seedKey string) *Board {
	rng := rand.New(rand.NewSource(seed(seedKey)))

	source := bridge
	if source == "" {
		source = narrative
	}

	outliers := ExtractKeywords(source, OutlierCount)
	if len(outliers) == 0 {
		outliers = append([]string(nil), defaultOutliers...)
	} else {
		outliers = backfill(outliers, OutlierCount, rng)
	}

	grid := backfill(append([]string(nil), outliers...), GridSize, rng)
	rng.Shuffle(len(grid), func(i, j int) {
		grid[i], grid[j] = grid[j], grid[i]
	})

	rows := make([][]string, 0, GridSize/OutlierCount)
	for i := 0; i < GridSize; i += OutlierCount {
		rows = append(rows, grid[i:i+OutlierCount])
	}

	return &Board{
		OutlierWords: outliers,
		Grid:         rows,
		OutlierTheme: synthesizeTheme(bridge),
	}
}

// backfill draws random filler words, skipping any already held, until
// words reaches size.
func backfill(words []string, size int, rng *rand.Rand) []string {
	held := make(map[string]bool, len(words))
	for _, w := range words {
		held[w] = true
	}
	for len(words) < size {
		w := fillerWords[rng.Intn(len(fillerWords))]
		if held[w] {
			continue
		}
		words = append(words, w)
		held[w] = true
	}
	return words
}

var nonThemeCharRe = regexp.MustCompile(`[^A-Z\s]`)

func synthesizeTheme(bridge string) Theme {
	name := defaultThemeName
	summary := defaultSummary

	if bridge != "" {
		words := strings.Fields(bridge)
		if len(words) > 3 {
			name = strings.ToUpper(strings.Join(words[:2], " "))
		} else {
			name = strings.ToUpper(bridge)
		}
		name = strings.TrimSpace(nonThemeCharRe.ReplaceAllString(name, ""))
		if runes := []rune(name); len(runes) > maxThemeNameLen {
			name = string(runes[:maxThemeNameLen])
		}

		summary = bridge
		if runes := []rune(bridge); len(runes) > maxSummaryLen {
			summary = string(runes[:maxSummaryLen]) + "..."
		}
	}

	return Theme{Name: name, Icon: themeIcon, Summary: summary}
}

func seed(key string) int64 {
	h := fnv.New64a()
	h.Write([]byte(key))
	return int64(h.Sum64())
}
