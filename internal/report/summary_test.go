package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/catstat/internal/catalog"
	"github.com/vmunix/catstat/internal/clean"
	"github.com/vmunix/catstat/internal/extract"
)

// sampleRows runs the real cleaner and extractor over a small fixture so
// the summary reflects end-to-end pipeline behavior.
func sampleRows(t *testing.T) ([]extract.Row, clean.Report, extract.Report) {
	t.Helper()
	records := []catalog.Record{
		{Title: "Film One", Type: catalog.TypeMovie, Country: "France",
			DateAdded: "January 1, 2020", Rating: "PG", Duration: "90 min",
			ListedIn: "Drama, Comedy", Cast: "X, Y", Director: "D"},
		{Title: "Show One", Type: catalog.TypeTVShow,
			DateAdded: "May 5, 2021", Rating: "TV-MA", Duration: "2 Seasons",
			ListedIn: "Drama"},
		{Title: "Dropped", Type: catalog.TypeMovie,
			DateAdded: "", Rating: "PG", Duration: "80 min", ListedIn: "Drama"},
	}
	cleaned, cr := clean.Apply(records)
	rows, er := extract.Apply(cleaned)
	return rows, cr, er
}

func TestBuild(t *testing.T) {
	rows, cr, er := sampleRows(t)
	s := Build(rows, cr, er, Options{TopN: 10, BinMinutes: 20})

	assert.Equal(t, 2, s.Rows)
	assert.Equal(t, 1, s.Cleaning.Dropped)
	assert.Equal(t, 0, s.Extraction.FailedDates)
	assert.Equal(t, 1, s.UniqueCountries)

	require.Len(t, s.Types, 2)
	assert.Equal(t, 1, s.Types[0].Count)
	assert.InDelta(t, 0.5, s.Types[0].Proportion, 1e-9)

	require.NotEmpty(t, s.Genres)
	assert.Equal(t, "Drama", s.Genres[0].Name)
	assert.Equal(t, 2, s.Genres[0].Count)

	assert.Len(t, s.Months, 12)
	require.Len(t, s.Seasons, 1)
	assert.Equal(t, 2, s.Seasons[0].Seasons)
}

func TestBuild_DefaultTopN(t *testing.T) {
	rows, cr, er := sampleRows(t)
	s := Build(rows, cr, er, Options{})
	assert.LessOrEqual(t, len(s.Countries), 10)
}

func TestWriteText(t *testing.T) {
	rows, cr, er := sampleRows(t)
	s := Build(rows, cr, er, Options{TopN: 10, BinMinutes: 20})

	var buf bytes.Buffer
	s.WriteText(&buf)
	out := buf.String()

	assert.Contains(t, out, "2 rows")
	assert.Contains(t, out, "Top genres:")
	assert.Contains(t, out, "Drama")
	assert.Contains(t, out, "Movie")
	assert.Contains(t, out, "Added per year:")
	assert.Contains(t, out, "Unique countries: 1")
}

func TestWriteJSON(t *testing.T) {
	rows, cr, er := sampleRows(t)
	s := Build(rows, cr, er, Options{TopN: 10, BinMinutes: 20})

	var buf bytes.Buffer
	require.NoError(t, s.WriteJSON(&buf))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.EqualValues(t, 2, decoded["rows"])
	assert.Contains(t, decoded, "top_genres")
	assert.Contains(t, decoded, "cleaning")
	assert.NotContains(t, decoded, "TitleWords", "word list is chart-only")
}
