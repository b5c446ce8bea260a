package graph

import (
	"strings"

	"storybuild/internal/puzzle"
	"storybuild/internal/story"
)

// Entry is the serialized form of one subchapter in the artifact.
// Optional fields are omitted entirely when absent — downstream consumers
// branch on key presence, so absent and empty must stay distinguishable.
type Entry struct {
	Chapter    int           `json:"chapter"`
	Subchapter int           `json:"subchapter"`
	Title      string        `json:"title"`
	BridgeText *string       `json:"bridgeText,omitempty"`
	Narrative  string        `json:"narrative"`
	Decision   *Decision     `json:"decision,omitempty"`
	Previously *string       `json:"previously,omitempty"`
	Board      *puzzle.Board `json:"board,omitempty"`
}

// Decision is the serialized branch point.
type Decision struct {
	Intro   []string  `json:"intro"`
	Options []*Option `json:"options"`
}

// Option is one serialized branch choice. nextChapter and nextPathKey are
// either both present or both absent.
type Option struct {
	Key         string   `json:"key"`
	Title       string   `json:"title"`
	Consequence *string  `json:"consequence,omitempty"`
	Focus       *string  `json:"focus,omitempty"`
	Stats       *string  `json:"stats,omitempty"`
	Outcome     *string  `json:"outcome,omitempty"`
	NextChapter *int     `json:"nextChapter,omitempty"`
	NextPathKey *string  `json:"nextPathKey,omitempty"`
	Details     []string `json:"details"`
}

// EntryFromSubchapter converts a parsed subchapter into its artifact form.
func EntryFromSubchapter(sub *story.Subchapter) *Entry {
	entry := &Entry{
		Chapter:    sub.Chapter,
		Subchapter: sub.Index,
		Title:      sub.Title,
		BridgeText: sub.BridgeText,
		Narrative:  strings.TrimSpace(strings.Join(sub.Paragraphs, "\n\n")),
		Previously: sub.Previously,
	}
	if sub.Decision != nil {
		d := &Decision{
			Intro:   make([]string, 0, len(sub.Decision.Intro)),
			Options: make([]*Option, 0, len(sub.Decision.Options)),
		}
		d.Intro = append(d.Intro, sub.Decision.Intro...)
		for _, opt := range sub.Decision.Options {
			details := opt.Details
			if details == nil {
				details = []string{}
			}
			d.Options = append(d.Options, &Option{
				Key:         opt.Key,
				Title:       opt.Title,
				Consequence: opt.Consequence,
				Focus:       opt.Focus,
				Stats:       opt.Stats,
				Outcome:     opt.Outcome,
				NextChapter: opt.NextChapter,
				NextPathKey: opt.NextPathKey,
				Details:     details,
			})
		}
		entry.Decision = d
	}
	return entry
}
