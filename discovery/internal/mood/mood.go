// Package mood decides which films are relevant for a mood tag. Relevance is
// a vote share: the tag's votes over the film's own total mood votes, never a
// global constant.
package mood

import (
	"sort"

	"github.com/okovalenko/filmfortoday/discovery/pkg/model"
)

// RelevanceThreshold is the inclusive minimum vote share a tag must hold
// among a film's mood votes for the film to qualify.
const RelevanceThreshold = 0.20

// TopLimit caps the global most-popular-for-a-mood list.
const TopLimit = 10

// Relevant returns the film ids whose tag vote share meets the threshold,
// ordered by absolute tag count descending. Films with no mood votes at all
// never qualify. Ties on tag count break by film id ascending so the order is
// stable across stores.
func Relevant(counts []model.MoodTagCount) []model.FilmID {
	qualified := make([]model.MoodTagCount, 0, len(counts))
	for _, c := range counts {
		if c.Total <= 0 {
			continue
		}
		if float64(c.TagCount)/float64(c.Total) >= RelevanceThreshold {
			qualified = append(qualified, c)
		}
	}
	sort.Slice(qualified, func(i, j int) bool {
		if qualified[i].TagCount != qualified[j].TagCount {
			return qualified[i].TagCount > qualified[j].TagCount
		}
		return qualified[i].FilmID < qualified[j].FilmID
	})
	ids := make([]model.FilmID, len(qualified))
	for i, c := range qualified {
		ids[i] = c.FilmID
	}
	return ids
}

// Top applies the same relevance computation and caps the result at TopLimit
// entries. Used for the global "most popular for this mood" fallback.
func Top(counts []model.MoodTagCount) []model.FilmID {
	ids := Relevant(counts)
	if len(ids) > TopLimit {
		ids = ids[:TopLimit]
	}
	return ids
}
