package stats

import (
	"github.com/vmunix/catstat/internal/extract"
)

// defaultStopwords are common English words dropped from the title cloud.
var defaultStopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "at": {}, "by": {}, "de": {}, "el": {},
	"for": {}, "from": {}, "in": {}, "is": {}, "it": {}, "la": {}, "le": {},
	"my": {}, "no": {}, "not": {}, "of": {}, "on": {}, "or": {}, "the": {},
	"to": {}, "with": {}, "you": {},
}

// WordOptions controls title-word counting.
type WordOptions struct {
	// MinLength drops words shorter than this many runes.
	MinLength int
	// KeepStopwords keeps common words that are dropped by default.
	KeepStopwords bool
}

// TitleWordCounts counts normalized title words across all rows,
// descending with stable first-encounter tie-break.
func TitleWordCounts(rows []extract.Row, opts WordOptions) []RankEntry {
	c := newCounter()
	for _, row := range rows {
		for _, word := range extract.TitleWords(row.Title) {
			if len([]rune(word)) < opts.MinLength {
				continue
			}
			if !opts.KeepStopwords {
				if _, ok := defaultStopwords[word]; ok {
					continue
				}
			}
			c.add(word)
		}
	}
	return c.ranked(0)
}
