package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/catstat/internal/catalog"
	"github.com/vmunix/catstat/internal/config"
	"github.com/vmunix/catstat/internal/report"
	"github.com/vmunix/catstat/internal/stats"
)

const testCSV = `show_id,type,title,director,cast,country,date_added,release_year,rating,duration,listed_in
s1,Movie,Film One,D,"X, Y",France,"January 1, 2020",2019,PG,90 min,"Drama, Comedy"
s2,TV Show,Show One,,,,"May 5, 2021",2021,TV-MA,2 Seasons,Drama
s3,Movie,No Date,D,Z,Spain,,2018,PG,100 min,Drama
s4,Movie,Bad Date,D,Z,Spain,"not a date",2018,PG,100 min,Drama
`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestRunPipeline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCSV), 0o644))

	cfg := config.Default()
	rows, cleanReport, extractReport, err := runPipeline(context.Background(), cfg, testLogger(), path)
	require.NoError(t, err)

	// s3 dropped by cleaning (empty date), s4 by date parsing.
	require.Len(t, rows, 2)
	assert.Equal(t, 1, cleanReport.Dropped)
	assert.Equal(t, 1, extractReport.FailedDates)

	assert.Equal(t, "Film One", rows[0].Title)
	assert.Equal(t, 90, rows[0].Minutes)
	assert.Equal(t, 2, rows[1].Seasons)
	assert.Equal(t, catalog.NoData, rows[1].Country, "sentinel filled before extraction")
}

func TestRunPipeline_EndToEndAggregation(t *testing.T) {
	csv := `show_id,type,title,director,cast,country,date_added,release_year,rating,duration,listed_in
s1,Movie,Film One,,,,"January 1, 2020",2019,PG,90 min,"Drama, Comedy, Drama"
s2,TV Show,Show One,D,"A Person",Spain,"May 5, 2021",2021,TV-MA,2 Seasons,Drama
s3,Movie,Bad Date,D,Z,Spain,"not a date",2018,PG,100 min,Drama
`
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	rows, cleanReport, extractReport, err := runPipeline(context.Background(), config.Default(), testLogger(), path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 0, cleanReport.Dropped)
	assert.Equal(t, 1, extractReport.FailedDates, "bad-date row dropped and counted")

	// Null optional fields become the sentinel; the date and duration
	// features come out of the raw strings.
	assert.Equal(t, catalog.NoData, rows[0].Country)
	assert.Equal(t, catalog.NoData, rows[0].Cast)
	assert.Equal(t, 2020, rows[0].AddedYear)
	assert.Equal(t, 1, rows[0].AddedMonth)
	assert.Equal(t, 90, rows[0].Minutes)

	summary := report.Build(rows, cleanReport, extractReport, report.Options{TopN: 10, BinMinutes: 20})

	// Sentinel rows contribute to type and duration aggregations but
	// never to country or actor rankings.
	require.Len(t, summary.Countries, 1)
	assert.Equal(t, "Spain", summary.Countries[0].Name)
	require.Len(t, summary.Actors, 1)
	assert.Equal(t, "A Person", summary.Actors[0].Name)
	assert.Equal(t, 1, summary.Types[0].Count)
	require.NotEmpty(t, summary.MinutesHistogram)

	// A genre listed twice counts twice.
	require.NotEmpty(t, summary.Genres)
	assert.Equal(t, stats.RankEntry{Name: "Drama", Count: 3}, summary.Genres[0])
	assert.Equal(t, stats.RankEntry{Name: "Comedy", Count: 1}, summary.Genres[1])
}

func TestRunPipeline_MissingDataset(t *testing.T) {
	cfg := config.Default()
	cfg.Dataset.Path = filepath.Join(t.TempDir(), "nope.csv")

	_, _, _, err := runPipeline(context.Background(), cfg, testLogger(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrMissingFile)
}
