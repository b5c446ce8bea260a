// Package graph aggregates parsed story documents into the keyed story
// graph and reads/writes the JSON artifact the game consumes.
package graph

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"storybuild/internal/ingest"
	"storybuild/internal/narrative"
	"storybuild/internal/puzzle"
	"storybuild/internal/story"
)

// Graph maps CaseNumber -> PathKey -> Entry.
type Graph map[string]map[string]*Entry

// Artifact is the on-disk shape of a built graph.
type Artifact struct {
	CaseContent Graph `json:"caseContent"`
}

// Summary reports what a build run did.
type Summary struct {
	DocsParsed  int
	DocsSkipped int
	Entries     int
	Errors      []string
}

// Builder turns a directory of story documents into a Graph.
type Builder struct {
	Log *slog.Logger

	// Strict aborts the build on the first document structure error.
	// Otherwise the document is skipped and recorded in the summary.
	Strict bool

	// PDFFallback enables the pdftotext fallback for .pdf documents.
	PDFFallback bool
}

// BuildDir scans dir for supported story documents (filename-sorted,
// legacy revisions excluded), parses each, and inserts every subchapter
// at its (CaseNumber, PathKey) slot. Duplicate slots are overwritten,
// last write wins, with a warning so authors notice accidental
// duplication.
func (b *Builder) BuildDir(dir string) (Graph, *Summary, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read docs dir: %w", err)
	}

	var names []string
	for _, de := range entries {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		if !ingest.IsSupportedExtension(name) || isLegacyName(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	g := make(Graph)
	summary := &Summary{}

	for _, name := range names {
		if err := b.buildDocument(g, filepath.Join(dir, name)); err != nil {
			if b.Strict {
				return nil, nil, err
			}
			b.Log.Error("skipping document", "doc", name, "error", err)
			summary.DocsSkipped++
			summary.Errors = append(summary.Errors, err.Error())
			continue
		}
		summary.DocsParsed++
	}

	for _, bucket := range g {
		summary.Entries += len(bucket)
	}
	return g, summary, nil
}

// buildDocument opens, extracts, parses, and inserts one document. The
// file is closed before returning so a failed document never holds its
// handle into the next iteration.
func (b *Builder) buildDocument(g Graph, path string) error {
	name := filepath.Base(path)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	extractor, err := ingest.ForFile(name)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if pe, ok := extractor.(*ingest.PDFExtractor); ok {
		pe.FallbackPdftotext = b.PDFFallback
	}
	lines, err := extractor.Extract(f, name)
	if err != nil {
		return fmt.Errorf("extract %s: %w", name, err)
	}

	subchapters, err := narrative.ParseDocument(lines, name, story.PathKeyFromFilename(name))
	if err != nil {
		return err
	}

	for _, sub := range subchapters {
		caseNumber, err := sub.CaseNumber()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		bucket, ok := g[caseNumber]
		if !ok {
			bucket = make(map[string]*Entry)
			g[caseNumber] = bucket
		}
		if _, exists := bucket[sub.PathKey]; exists {
			b.Log.Warn("duplicate entry overwritten",
				"case", caseNumber, "path", sub.PathKey, "doc", name)
		}
		bucket[sub.PathKey] = EntryFromSubchapter(sub)
	}
	return nil
}

// AttachBoards derives a puzzle board for every entry that lacks one.
// The seed key is the entry's graph address, so a board only changes
// when its source text does.
func AttachBoards(g Graph) {
	for caseNumber, bucket := range g {
		for pathKey, entry := range bucket {
			if entry.Board != nil {
				continue
			}
			bridge := ""
			if entry.BridgeText != nil {
				bridge = *entry.BridgeText
			}
			entry.Board = puzzle.Generate(bridge, entry.Narrative, caseNumber+"|"+pathKey)
		}
	}
}

// WriteFile serializes the artifact with two-space indentation and
// returns the byte count written.
func WriteFile(path string, g Graph) (int, error) {
	data, err := json.MarshalIndent(Artifact{CaseContent: g}, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("marshal artifact: %w", err)
	}
	data = append(data, '\n')
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("write artifact: %w", err)
	}
	return len(data), nil
}

// ReadFile loads a previously built artifact.
func ReadFile(path string) (Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("parse artifact: %w", err)
	}
	if artifact.CaseContent == nil {
		artifact.CaseContent = make(Graph)
	}
	return artifact.CaseContent, nil
}

func isLegacyName(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "old-story") || strings.Contains(lower, "legacy")
}
