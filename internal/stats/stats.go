// Package stats computes descriptive aggregations over extracted rows.
// Every function here is a pure function of its input; none mutates the
// rows or depends on another aggregation's output.
package stats

import (
	"sort"

	"github.com/vmunix/catstat/internal/catalog"
	"github.com/vmunix/catstat/internal/extract"
)

// TypeCount is one slice of the type distribution.
type TypeCount struct {
	Type       catalog.ContentType `json:"type"`
	Count      int                 `json:"count"`
	Proportion float64             `json:"proportion"`
}

// RankEntry is one entry of a frequency ranking.
type RankEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TypeDistribution counts movies and shows and their share of the total.
func TypeDistribution(rows []extract.Row) []TypeCount {
	counts := map[catalog.ContentType]int{}
	for _, row := range rows {
		counts[row.Type]++
	}

	out := make([]TypeCount, 0, 2)
	for _, t := range []catalog.ContentType{catalog.TypeMovie, catalog.TypeTVShow} {
		tc := TypeCount{Type: t, Count: counts[t]}
		if len(rows) > 0 {
			tc.Proportion = float64(tc.Count) / float64(len(rows))
		}
		out = append(out, tc)
	}
	return out
}

// counter accumulates token frequencies preserving first-encounter order,
// so ranking ties break deterministically by input order.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: map[string]int{}}
}

func (c *counter) add(token string) {
	if _, seen := c.counts[token]; !seen {
		c.order = append(c.order, token)
	}
	c.counts[token]++
}

// ranked returns entries sorted by count descending; ties keep
// first-encounter order. n <= 0 means no limit.
func (c *counter) ranked(n int) []RankEntry {
	entries := make([]RankEntry, 0, len(c.order))
	for _, token := range c.order {
		entries = append(entries, RankEntry{Name: token, Count: c.counts[token]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// TopCountries ranks country tokens, excluding the sentinel.
func TopCountries(rows []extract.Row, n int) []RankEntry {
	c := newCounter()
	for _, row := range rows {
		if row.Country == catalog.NoData {
			continue
		}
		for _, country := range extract.SplitList(row.Country) {
			c.add(country)
		}
	}
	return c.ranked(n)
}

// UniqueCountries counts distinct country tokens, excluding the sentinel.
func UniqueCountries(rows []extract.Row) int {
	seen := map[string]struct{}{}
	for _, row := range rows {
		if row.Country == catalog.NoData {
			continue
		}
		for _, country := range extract.SplitList(row.Country) {
			seen[country] = struct{}{}
		}
	}
	return len(seen)
}

// TopGenres ranks exploded genre tokens. A title listing a genre twice
// contributes two occurrences.
func TopGenres(rows []extract.Row, n int) []RankEntry {
	c := newCounter()
	for _, row := range rows {
		for _, genre := range row.Genres {
			c.add(genre)
		}
	}
	return c.ranked(n)
}

// TopActors ranks exploded cast tokens; sentinel rows contribute nothing.
func TopActors(rows []extract.Row, n int) []RankEntry {
	c := newCounter()
	for _, row := range rows {
		for _, actor := range row.CastList {
			c.add(actor)
		}
	}
	return c.ranked(n)
}
