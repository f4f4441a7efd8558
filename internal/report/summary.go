// Package report renders the analysis as console text, JSON, or HTML charts.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/vmunix/catstat/internal/clean"
	"github.com/vmunix/catstat/internal/extract"
	"github.com/vmunix/catstat/internal/stats"
)

// Options controls aggregation parameters.
type Options struct {
	TopN       int
	BinMinutes int
	Words      stats.WordOptions
}

// Summary is the full descriptive report over one dataset.
type Summary struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`

	Cleaning   clean.Report   `json:"cleaning"`
	Extraction extract.Report `json:"extraction"`

	Types            []stats.TypeCount   `json:"types"`
	Countries        []stats.RankEntry   `json:"top_countries"`
	UniqueCountries  int                 `json:"unique_countries"`
	Genres           []stats.RankEntry   `json:"top_genres"`
	Actors           []stats.RankEntry   `json:"top_actors"`
	Years            []stats.YearCount   `json:"by_year"`
	Months           []stats.MonthCount  `json:"by_month"`
	Seasons          []stats.SeasonCount `json:"seasons"`
	MinutesHistogram []stats.HistBin     `json:"minutes_histogram"`
	TitleWords       []stats.RankEntry   `json:"-"`
}

// columnCount is the number of columns the loader maps.
const columnCount = 9

// Build computes every aggregation over the extracted rows.
func Build(rows []extract.Row, cr clean.Report, er extract.Report, opts Options) Summary {
	if opts.TopN <= 0 {
		opts.TopN = 10
	}
	return Summary{
		Rows:             len(rows),
		Columns:          columnCount,
		Cleaning:         cr,
		Extraction:       er,
		Types:            stats.TypeDistribution(rows),
		Countries:        stats.TopCountries(rows, opts.TopN),
		UniqueCountries:  stats.UniqueCountries(rows),
		Genres:           stats.TopGenres(rows, opts.TopN),
		Actors:           stats.TopActors(rows, opts.TopN),
		Years:            stats.ByYear(rows),
		Months:           stats.ByMonth(rows),
		Seasons:          stats.SeasonCounts(rows),
		MinutesHistogram: stats.MinutesHistogram(rows, opts.BinMinutes),
		TitleWords:       stats.TitleWordCounts(rows, opts.Words),
	}
}

// WriteText prints the human-readable summary.
func (s Summary) WriteText(w io.Writer) {
	fmt.Fprintf(w, "Dataset:          %d rows, %d columns\n", s.Rows, s.Columns)
	fmt.Fprintf(w, "Missing rating:   %d\n", s.Cleaning.MissingRating)
	fmt.Fprintf(w, "Missing duration: %d\n", s.Cleaning.MissingDuration)
	fmt.Fprintf(w, "Missing dates:    %d\n", s.Cleaning.MissingDateAdded)
	fmt.Fprintf(w, "Dropped (clean):  %d of %d (%.1f%%)\n",
		s.Cleaning.Dropped, s.Cleaning.Input, 100*s.Cleaning.DroppedFraction())
	fmt.Fprintf(w, "Unparsable dates: %d (dropped)\n", s.Extraction.FailedDates)
	fmt.Fprintf(w, "Unique countries: %d\n", s.UniqueCountries)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Content types:")
	for _, tc := range s.Types {
		fmt.Fprintf(w, "  %-10s %6d  (%.1f%%)\n", tc.Type, tc.Count, 100*tc.Proportion)
	}

	writeRanking(w, "Top countries", s.Countries)
	writeRanking(w, "Top genres", s.Genres)
	writeRanking(w, "Top actors", s.Actors)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Added per year:")
	for _, yc := range s.Years {
		fmt.Fprintf(w, "  %d  %6d\n", yc.Year, yc.Count)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Added per month:")
	for _, mc := range s.Months {
		fmt.Fprintf(w, "  %-9s %6d\n", time.Month(mc.Month), mc.Count)
	}

	if len(s.Seasons) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Season counts:")
		for _, sc := range s.Seasons {
			fmt.Fprintf(w, "  %2d season(s)  %6d\n", sc.Seasons, sc.Count)
		}
	}

	if len(s.MinutesHistogram) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Movie runtimes:")
		for _, bin := range s.MinutesHistogram {
			fmt.Fprintf(w, "  %3d-%3d min  %6d\n", bin.Lo, bin.Hi, bin.Count)
		}
	}
}

func writeRanking(w io.Writer, title string, entries []stats.RankEntry) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", title)
	for i, e := range entries {
		fmt.Fprintf(w, "  %2d. %-40s %6d\n", i+1, e.Name, e.Count)
	}
}

// WriteJSON prints the summary as indented JSON.
func (s Summary) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}
	return nil
}
