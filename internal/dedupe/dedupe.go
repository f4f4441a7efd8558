// Package dedupe finds near-duplicate titles in the catalog.
package dedupe

import (
	"sort"

	"github.com/hbollon/go-edlib"

	"github.com/vmunix/catstat/internal/extract"
)

// DefaultThreshold is the minimum similarity reported as a near-duplicate.
const DefaultThreshold = 0.93

// Pair is one near-duplicate title pair.
type Pair struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Score float64 `json:"score"`
}

// Find reports title pairs whose normalized Jaro-Winkler similarity
// meets the threshold. Titles identical after normalization score 1.
// Candidates are bucketed by first rune to keep the comparison set
// small; Jaro-Winkler favors prefixes, so cross-bucket pairs would
// score low anyway.
func Find(rows []extract.Row, threshold float64) []Pair {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}

	type title struct {
		raw  string
		norm string
	}

	seen := map[string]struct{}{}
	buckets := map[rune][]title{}
	for _, row := range rows {
		norm := extract.NormalizeTitle(row.Title)
		if norm == "" {
			continue
		}
		// The same title can appear for a movie and a show; compare once.
		if _, dup := seen[row.Title]; dup {
			continue
		}
		seen[row.Title] = struct{}{}
		buckets[[]rune(norm)[0]] = append(buckets[[]rune(norm)[0]], title{raw: row.Title, norm: norm})
	}

	var pairs []Pair
	for _, bucket := range buckets {
		for i := 0; i < len(bucket); i++ {
			for j := i + 1; j < len(bucket); j++ {
				score := float64(edlib.JaroWinklerSimilarity(bucket[i].norm, bucket[j].norm))
				if score >= threshold {
					pairs = append(pairs, Pair{A: bucket[i].raw, B: bucket[j].raw, Score: score})
				}
			}
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].Score != pairs[j].Score {
			return pairs[i].Score > pairs[j].Score
		}
		return pairs[i].A < pairs[j].A
	})
	return pairs
}
