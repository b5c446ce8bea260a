// Package patch applies hand-authored content fixes to a built graph.
// Patches are data, not code: a YAML list of (case, path) targets with
// partial entry fields to merge, applied after the build. This replaces
// one-off fix scripts keyed to literal case IDs.
package patch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"storybuild/internal/graph"
)

// Patch is one targeted content fix.
type Patch struct {
	Case    string                  `yaml:"case"`
	Path    string                  `yaml:"path"`
	Set     *FieldSet               `yaml:"set,omitempty"`
	Options map[string]OptionFields `yaml:"options,omitempty"`
}

// FieldSet holds entry fields to overwrite. Nil fields are untouched.
type FieldSet struct {
	Title      *string `yaml:"title,omitempty"`
	BridgeText *string `yaml:"bridgeText,omitempty"`
	Previously *string `yaml:"previously,omitempty"`
	Narrative  *string `yaml:"narrative,omitempty"`
}

// OptionFields holds decision-option fields to overwrite, keyed by the
// option's letter in the patch file.
type OptionFields struct {
	Title       *string `yaml:"title,omitempty"`
	Consequence *string `yaml:"consequence,omitempty"`
	Outcome     *string `yaml:"outcome,omitempty"`
	NextChapter *int    `yaml:"nextChapter,omitempty"`
	NextPathKey *string `yaml:"nextPathKey,omitempty"`
}

// Report lists what a patch application did and could not do.
type Report struct {
	Applied        int
	MissingEntries []string
	MissingOptions []string
	Invalid        []string
}

// Load reads a YAML patch list.
func Load(path string) ([]Patch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read patch file: %w", err)
	}
	var patches []Patch
	if err := yaml.Unmarshal(data, &patches); err != nil {
		return nil, fmt.Errorf("parse patch file: %w", err)
	}
	return patches, nil
}

// Apply merges patches into the graph. Missing targets are reported, not
// fatal, so a patch list can be shared across partially built corpora.
func Apply(g graph.Graph, patches []Patch) *Report {
	report := &Report{}

	for _, p := range patches {
		entry, ok := g[p.Case][p.Path]
		if !ok {
			report.MissingEntries = append(report.MissingEntries,
				fmt.Sprintf("%s/%s", p.Case, p.Path))
			continue
		}

		if p.Set != nil {
			applyFields(entry, p.Set)
		}
		for key, fields := range p.Options {
			if err := applyOption(entry, key, fields); err != nil {
				switch {
				case err == errNoSuchOption:
					report.MissingOptions = append(report.MissingOptions,
						fmt.Sprintf("%s/%s option %s", p.Case, p.Path, key))
				default:
					report.Invalid = append(report.Invalid,
						fmt.Sprintf("%s/%s option %s: %v", p.Case, p.Path, key, err))
				}
			}
		}
		report.Applied++
	}
	return report
}

var errNoSuchOption = fmt.Errorf("no such option")

func applyFields(entry *graph.Entry, set *FieldSet) {
	if set.Title != nil {
		entry.Title = *set.Title
	}
	if set.BridgeText != nil {
		entry.BridgeText = set.BridgeText
	}
	if set.Previously != nil {
		entry.Previously = set.Previously
	}
	if set.Narrative != nil {
		entry.Narrative = *set.Narrative
	}
}

func applyOption(entry *graph.Entry, key string, fields OptionFields) error {
	// Branch targets are both-or-neither.
	if (fields.NextChapter == nil) != (fields.NextPathKey == nil) {
		return fmt.Errorf("nextChapter and nextPathKey must be set together")
	}
	if entry.Decision == nil {
		return errNoSuchOption
	}
	for _, opt := range entry.Decision.Options {
		if opt.Key != key {
			continue
		}
		if fields.Title != nil {
			opt.Title = *fields.Title
		}
		if fields.Consequence != nil {
			opt.Consequence = fields.Consequence
		}
		if fields.Outcome != nil {
			opt.Outcome = fields.Outcome
		}
		if fields.NextChapter != nil {
			opt.NextChapter = fields.NextChapter
			opt.NextPathKey = fields.NextPathKey
		}
		return nil
	}
	return errNoSuchOption
}
