// Package extract derives date, duration, and token features from cleaned
// catalog records.
package extract

import (
	"strconv"
	"strings"
	"time"

	"github.com/vmunix/catstat/internal/catalog"
)

// dateLayout matches the export's date_added format, e.g. "September 24, 2021".
const dateLayout = "January 2, 2006"

// NoValue marks a duration that did not parse for the record's type.
// Rows carrying it stay in the dataset but are excluded from the one
// aggregation that needs the number.
const NoValue = -1

// Row is a catalog record with derived features.
type Row struct {
	catalog.Record

	Added      time.Time
	AddedYear  int
	AddedMonth int
	AddedDay   int

	// Minutes is the movie runtime, NoValue for shows and unparsable durations.
	Minutes int
	// Seasons is the show season count, NoValue for movies and unparsable durations.
	Seasons int

	Genres   []string
	CastList []string
}

// Report counts extraction failures.
type Report struct {
	Input       int `json:"input"`
	FailedDates int `json:"failed_dates"`
}

// Apply parses dates and durations and explodes multi-value fields.
// Records whose date_added does not parse are counted and dropped;
// duration parse failures only mark the row with NoValue.
func Apply(records []catalog.Record) ([]Row, Report) {
	report := Report{Input: len(records)}

	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		added, err := time.Parse(dateLayout, strings.TrimSpace(rec.DateAdded))
		if err != nil {
			report.FailedDates++
			continue
		}

		row := Row{
			Record:     rec,
			Added:      added,
			AddedYear:  added.Year(),
			AddedMonth: int(added.Month()),
			AddedDay:   added.Day(),
			Minutes:    NoValue,
			Seasons:    NoValue,
			Genres:     SplitList(rec.ListedIn),
		}

		switch rec.Type {
		case catalog.TypeMovie:
			row.Minutes = parseMinutes(rec.Duration)
		case catalog.TypeTVShow:
			row.Seasons = parseSeasons(rec.Duration)
		}

		if rec.Cast != catalog.NoData {
			row.CastList = SplitList(rec.Cast)
		}

		rows = append(rows, row)
	}
	return rows, report
}

// parseMinutes extracts the runtime from a "<N> min" duration.
func parseMinutes(duration string) int {
	fields := strings.Fields(duration)
	if len(fields) != 2 || fields[1] != "min" {
		return NoValue
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return NoValue
	}
	return n
}

// parseSeasons extracts the season count from a show duration. Matching
// is deliberately loose: any string whose first token is an integer and
// which mentions "Season" counts, singular or plural.
func parseSeasons(duration string) int {
	if !strings.Contains(duration, "Season") {
		return NoValue
	}
	fields := strings.Fields(duration)
	if len(fields) == 0 {
		return NoValue
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n <= 0 {
		return NoValue
	}
	return n
}

// SplitList splits a comma-separated field into trimmed tokens,
// dropping empties. A value listed twice yields two tokens.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
