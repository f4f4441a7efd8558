// Package clean drops records missing required fields and fills optional
// fields with the catalog sentinel.
package clean

import (
	"github.com/vmunix/catstat/internal/catalog"
)

// Report summarizes what the cleaner saw and did. It is informational
// only and never feeds back into cleaning decisions.
type Report struct {
	Input            int `json:"input"`
	MissingRating    int `json:"missing_rating"`
	MissingDuration  int `json:"missing_duration"`
	MissingDateAdded int `json:"missing_date_added"`
	Dropped          int `json:"dropped"`
}

// DroppedFraction returns the share of input records dropped.
func (r Report) DroppedFraction() float64 {
	if r.Input == 0 {
		return 0
	}
	return float64(r.Dropped) / float64(r.Input)
}

// Apply removes records missing rating, duration, or date_added and
// substitutes catalog.NoData for absent country, cast, and director.
// Survivors always have non-empty values in every required and optional
// column.
func Apply(records []catalog.Record) ([]catalog.Record, Report) {
	report := Report{Input: len(records)}

	cleaned := make([]catalog.Record, 0, len(records))
	for _, rec := range records {
		missing := false
		if rec.Rating == "" {
			report.MissingRating++
			missing = true
		}
		if rec.Duration == "" {
			report.MissingDuration++
			missing = true
		}
		if rec.DateAdded == "" {
			report.MissingDateAdded++
			missing = true
		}
		if missing {
			report.Dropped++
			continue
		}

		if rec.Country == "" {
			rec.Country = catalog.NoData
		}
		if rec.Cast == "" {
			rec.Cast = catalog.NoData
		}
		if rec.Director == "" {
			rec.Director = catalog.NoData
		}
		cleaned = append(cleaned, rec)
	}
	return cleaned, report
}
