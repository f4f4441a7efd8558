package stats

import (
	"sort"

	"github.com/vmunix/catstat/internal/extract"
)

// YearCount is the number of records added in one year.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// MonthCount is the number of records added in one calendar month,
// across all years.
type MonthCount struct {
	Month int `json:"month"`
	Count int `json:"count"`
}

// SeasonCount is the number of shows with a given season count.
type SeasonCount struct {
	Seasons int `json:"seasons"`
	Count   int `json:"count"`
}

// HistBin is one fixed-width histogram bin, [Lo, Hi).
type HistBin struct {
	Lo    int `json:"lo"`
	Hi    int `json:"hi"`
	Count int `json:"count"`
}

// ByYear counts records per added year, chronological.
func ByYear(rows []extract.Row) []YearCount {
	counts := map[int]int{}
	for _, row := range rows {
		counts[row.AddedYear]++
	}

	out := make([]YearCount, 0, len(counts))
	for year, n := range counts {
		out = append(out, YearCount{Year: year, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// ByMonth counts records per added calendar month, always 12 entries
// in calendar order.
func ByMonth(rows []extract.Row) []MonthCount {
	counts := map[int]int{}
	for _, row := range rows {
		counts[row.AddedMonth]++
	}

	out := make([]MonthCount, 0, 12)
	for m := 1; m <= 12; m++ {
		out = append(out, MonthCount{Month: m, Count: counts[m]})
	}
	return out
}

// SeasonCounts counts shows per distinct season count, ascending.
// Rows without a parsed season count are excluded.
func SeasonCounts(rows []extract.Row) []SeasonCount {
	counts := map[int]int{}
	for _, row := range rows {
		if row.Seasons == extract.NoValue {
			continue
		}
		counts[row.Seasons]++
	}

	out := make([]SeasonCount, 0, len(counts))
	for seasons, n := range counts {
		out = append(out, SeasonCount{Seasons: seasons, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seasons < out[j].Seasons })
	return out
}

// MinutesHistogram bins movie runtimes into fixed-width bins covering
// zero through the longest runtime. Rows without a parsed runtime are
// excluded.
func MinutesHistogram(rows []extract.Row, binWidth int) []HistBin {
	if binWidth <= 0 {
		binWidth = 20
	}

	maxMinutes := 0
	var minutes []int
	for _, row := range rows {
		if row.Minutes == extract.NoValue {
			continue
		}
		minutes = append(minutes, row.Minutes)
		if row.Minutes > maxMinutes {
			maxMinutes = row.Minutes
		}
	}
	if len(minutes) == 0 {
		return nil
	}

	bins := make([]HistBin, maxMinutes/binWidth+1)
	for i := range bins {
		bins[i].Lo = i * binWidth
		bins[i].Hi = (i + 1) * binWidth
	}
	for _, m := range minutes {
		bins[m/binWidth].Count++
	}
	return bins
}
