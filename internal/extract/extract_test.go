package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/catstat/internal/catalog"
)

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		duration string
		want     int
	}{
		{"90 min", 90},
		{"148 min", 148},
		{"1 min", 1},
		{"3 Seasons", NoValue},
		{"min", NoValue},
		{"ninety min", NoValue},
		{"90", NoValue},
		{"", NoValue},
	}

	for _, tt := range tests {
		t.Run(tt.duration, func(t *testing.T) {
			assert.Equal(t, tt.want, parseMinutes(tt.duration))
		})
	}
}

func TestParseSeasons(t *testing.T) {
	tests := []struct {
		duration string
		want     int
	}{
		{"1 Season", 1},
		{"3 Seasons", 3},
		{"12 Seasons", 12},
		// First-token matching is loose on purpose: singular/plural and
		// trailing text are irrelevant as long as "Season" appears.
		{"2 Season s", 2},
		{"90 min", NoValue},
		{"Season 3", NoValue},
		{"0 Seasons", NoValue},
		{"", NoValue},
	}

	for _, tt := range tests {
		t.Run(tt.duration, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSeasons(tt.duration))
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple", "Drama, Comedy", []string{"Drama", "Comedy"}},
		{"untrimmed", " Drama ,  Comedy ", []string{"Drama", "Comedy"}},
		{"duplicates kept", "Drama, Comedy, Drama", []string{"Drama", "Comedy", "Drama"}},
		{"single", "Drama", []string{"Drama"}},
		{"trailing comma", "Drama,", []string{"Drama"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.input))
		})
	}
}

func TestApply_MovieRow(t *testing.T) {
	rows, report := Apply([]catalog.Record{{
		Title:     "Some Film",
		Type:      catalog.TypeMovie,
		Director:  "Someone",
		Cast:      catalog.NoData,
		Country:   catalog.NoData,
		DateAdded: "January 1, 2020",
		Rating:    "PG",
		Duration:  "90 min",
		ListedIn:  "Drama, Comedy",
	}})

	require.Len(t, rows, 1)
	assert.Equal(t, 0, report.FailedDates)

	row := rows[0]
	assert.Equal(t, 2020, row.AddedYear)
	assert.Equal(t, 1, row.AddedMonth)
	assert.Equal(t, 1, row.AddedDay)
	assert.Equal(t, 90, row.Minutes)
	assert.Equal(t, NoValue, row.Seasons)
	assert.Equal(t, []string{"Drama", "Comedy"}, row.Genres)
	assert.Empty(t, row.CastList, "sentinel cast contributes no tokens")
}

func TestApply_ShowRow(t *testing.T) {
	rows, _ := Apply([]catalog.Record{{
		Title:     "Some Show",
		Type:      catalog.TypeTVShow,
		Cast:      "A Person, B Person",
		DateAdded: "September 24, 2021",
		Rating:    "TV-MA",
		Duration:  "3 Seasons",
		ListedIn:  "Drama",
	}})

	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, 2021, row.AddedYear)
	assert.Equal(t, 9, row.AddedMonth)
	assert.Equal(t, 24, row.AddedDay)
	assert.Equal(t, 3, row.Seasons)
	assert.Equal(t, NoValue, row.Minutes)
	assert.Equal(t, []string{"A Person", "B Person"}, row.CastList)
}

func TestApply_BadDateDropped(t *testing.T) {
	rows, report := Apply([]catalog.Record{
		{Title: "Bad", Type: catalog.TypeMovie, DateAdded: "not a date", Duration: "90 min"},
		{Title: "Good", Type: catalog.TypeMovie, DateAdded: "March 3, 2019", Duration: "90 min"},
	})

	require.Len(t, rows, 1)
	assert.Equal(t, "Good", rows[0].Title)
	assert.Equal(t, 1, report.FailedDates)
	assert.Equal(t, 2, report.Input)
}

func TestApply_BadDurationRetained(t *testing.T) {
	rows, report := Apply([]catalog.Record{
		{Title: "Odd Movie", Type: catalog.TypeMovie, DateAdded: "March 3, 2019", Duration: "Part 2", ListedIn: "Drama"},
		{Title: "Odd Show", Type: catalog.TypeTVShow, DateAdded: "March 3, 2019", Duration: "Special", ListedIn: "Drama"},
	})

	require.Len(t, rows, 2, "duration failures never drop rows")
	assert.Equal(t, 0, report.FailedDates)
	assert.Equal(t, NoValue, rows[0].Minutes)
	assert.Equal(t, NoValue, rows[1].Seasons)
	assert.Equal(t, []string{"Drama"}, rows[0].Genres, "other features still extracted")
}

func TestApply_ExplodedTokenArithmetic(t *testing.T) {
	records := []catalog.Record{
		{Title: "A", Type: catalog.TypeMovie, DateAdded: "March 3, 2019", Duration: "90 min",
			ListedIn: "Drama, Comedy, Drama", Cast: "X, Y"},
		{Title: "B", Type: catalog.TypeMovie, DateAdded: "March 4, 2019", Duration: "80 min",
			ListedIn: "Horror", Cast: catalog.NoData},
	}

	rows, _ := Apply(records)
	require.Len(t, rows, 2)

	genreTokens := 0
	castTokens := 0
	for i, row := range rows {
		genreTokens += len(row.Genres)
		castTokens += len(row.CastList)

		// Token count equals comma count plus one in the source field.
		wantGenres := strings.Count(records[i].ListedIn, ",") + 1
		assert.Len(t, row.Genres, wantGenres)
	}
	assert.Equal(t, 4, genreTokens)
	assert.Equal(t, 2, castTokens, "sentinel cast rows excluded from the fan-out")
}

func TestApply_DateTrimmed(t *testing.T) {
	rows, report := Apply([]catalog.Record{
		{Title: "Padded", Type: catalog.TypeMovie, DateAdded: " August 4, 2017 ", Duration: "90 min"},
	})
	require.Len(t, rows, 1)
	assert.Equal(t, 0, report.FailedDates)
	assert.Equal(t, 2017, rows[0].AddedYear)
	assert.Equal(t, 8, rows[0].AddedMonth)
}
