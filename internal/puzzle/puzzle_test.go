package puzzle

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	got := ExtractKeywords("The Grange ledger proves everything.", 4)
	want := []string{"EVERYTHING", "GRANGE", "LEDGER", "PROVES"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractKeywords = %v, want %v", got, want)
	}
}

func TestExtractKeywords_FiltersAndDedups(t *testing.T) {
	// "the"/"and" are stopwords, "of" is too short and a stopword,
	// repeats are dropped at first occurrence.
	got := ExtractKeywords("The warehouse and the warehouse of SECRETS", 4)
	want := []string{"WAREHOUSE", "SECRETS"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractKeywords = %v, want %v", got, want)
	}
}

func TestExtractKeywords_StableLengthOrder(t *testing.T) {
	// Equal-length words keep their text order.
	got := ExtractKeywords("crate wharf skiff", 3)
	want := []string{"CRATE", "WHARF", "SKIFF"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractKeywords = %v, want %v", got, want)
	}
}

func TestExtractKeywords_Empty(t *testing.T) {
	if got := ExtractKeywords("", 4); got != nil {
		t.Errorf("expected nil for empty text, got %v", got)
	}
}

func TestGenerate_BoardInvariants(t *testing.T) {
	board := Generate("The Grange ledger proves everything", "", "005C|ROOT")

	if len(board.OutlierWords) != OutlierCount {
		t.Fatalf("expected %d outliers, got %d", OutlierCount, len(board.OutlierWords))
	}
	if len(board.Grid) != 4 {
		t.Fatalf("expected 4 grid rows, got %d", len(board.Grid))
	}

	seen := make(map[string]bool)
	total := 0
	for _, row := range board.Grid {
		if len(row) != 4 {
			t.Fatalf("expected rows of 4, got %d", len(row))
		}
		for _, w := range row {
			if seen[w] {
				t.Errorf("duplicate grid word %q", w)
			}
			seen[w] = true
			total++
		}
	}
	if total != GridSize {
		t.Errorf("expected %d grid words, got %d", GridSize, total)
	}
	for _, outlier := range board.OutlierWords {
		if !seen[outlier] {
			t.Errorf("outlier %q missing from grid", outlier)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate("The Grange ledger proves everything", "", "005C|ROOT")
	b := Generate("The Grange ledger proves everything", "", "005C|ROOT")
	if !reflect.DeepEqual(a, b) {
		t.Error("same inputs and seed key should produce identical boards")
	}

	c := Generate("The Grange ledger proves everything", "", "006A|ROOT")
	if reflect.DeepEqual(a.Grid, c.Grid) {
		t.Error("different seed keys should shuffle differently")
	}
}

func TestGenerate_BackfillsShortSources(t *testing.T) {
	// One usable keyword; the rest are drawn from the filler vocabulary.
	board := Generate("warehouse", "", "001A|ROOT")
	if len(board.OutlierWords) != OutlierCount {
		t.Fatalf("expected backfill to %d outliers, got %d", OutlierCount, len(board.OutlierWords))
	}
	if board.OutlierWords[0] != "WAREHOUSE" {
		t.Errorf("extracted keyword should come first, got %v", board.OutlierWords)
	}
}

func TestGenerate_DefaultOutliersWhenNoSource(t *testing.T) {
	board := Generate("", "", "001A|ROOT")
	want := []string{"CLUE", "LEAD", "PROOF", "TRUTH"}
	if !reflect.DeepEqual(board.OutlierWords, want) {
		t.Errorf("expected default outliers %v, got %v", want, board.OutlierWords)
	}
}

func TestGenerate_NarrativeFallback(t *testing.T) {
	board := Generate("", "The smuggler hid the manifest inside the lighthouse", "002B|ROOT")
	found := false
	for _, w := range board.OutlierWords {
		if w == "LIGHTHOUSE" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected narrative-sourced keyword, got %v", board.OutlierWords)
	}
}

func TestThemeSynthesis(t *testing.T) {
	board := Generate("Back at the docks before dawn", "", "003A|ROOT")
	theme := board.OutlierTheme
	if theme.Name != "BACK AT" {
		t.Errorf("expected theme name from first two words, got %q", theme.Name)
	}
	if theme.Summary != "Back at the docks before dawn" {
		t.Errorf("short bridge should be the summary verbatim, got %q", theme.Summary)
	}
	if theme.Icon == "" {
		t.Error("icon should be the fixed constant")
	}
}

func TestThemeSynthesis_ShortBridgeAndTruncation(t *testing.T) {
	board := Generate("Cold case", "", "004A|ROOT")
	if board.OutlierTheme.Name != "COLD CASE" {
		t.Errorf("three-or-fewer-token bridge should become the whole name, got %q", board.OutlierTheme.Name)
	}

	long := strings.Repeat("midnight stakeout ", 10)
	board = Generate(long, "", "004B|ROOT")
	if len([]rune(board.OutlierTheme.Name)) > 15 {
		t.Errorf("theme name should truncate to 15 chars, got %q", board.OutlierTheme.Name)
	}
	if !strings.HasSuffix(board.OutlierTheme.Summary, "...") {
		t.Errorf("long bridge summary should be ellipsized, got %q", board.OutlierTheme.Summary)
	}
	if len([]rune(board.OutlierTheme.Summary)) != maxSummaryLen+3 {
		t.Errorf("summary should be %d chars plus ellipsis, got %d", maxSummaryLen, len([]rune(board.OutlierTheme.Summary)))
	}
}

func TestThemeSynthesis_Defaults(t *testing.T) {
	board := Generate("", "some narrative text here", "005A|ROOT")
	if board.OutlierTheme.Name != defaultThemeName {
		t.Errorf("expected default theme name, got %q", board.OutlierTheme.Name)
	}
	if board.OutlierTheme.Summary != defaultSummary {
		t.Errorf("expected placeholder summary, got %q", board.OutlierTheme.Summary)
	}
}
