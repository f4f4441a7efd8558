package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"golang.org/x/sync/errgroup"

	"github.com/vmunix/catstat/internal/stats"
)

// maxCloudWords caps how many words the cloud renders.
const maxCloudWords = 150

// ChartWriter renders the summary's charts as HTML files in a directory.
type ChartWriter struct {
	dir    string
	logger *slog.Logger
}

// NewChartWriter creates a chart writer. A nil logger falls back to
// slog.Default().
func NewChartWriter(dir string, logger *slog.Logger) *ChartWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChartWriter{dir: dir, logger: logger}
}

// renderable is the piece of the chart API we need; every go-echarts
// chart type satisfies it.
type renderable interface {
	Render(w io.Writer) error
}

// WriteAll renders every chart. The charts are independent of each
// other, so they render concurrently. A word-cloud failure is logged
// and skipped; any other failure aborts with an error.
func (c *ChartWriter) WriteAll(ctx context.Context, s Summary) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return c.write(ctx, "types.html", typePie(s.Types)) })
	g.Go(func() error { return c.write(ctx, "countries.html", rankingBar("Top countries", s.Countries)) })
	g.Go(func() error { return c.write(ctx, "genres.html", rankingBar("Top genres", s.Genres)) })
	g.Go(func() error { return c.write(ctx, "actors.html", rankingBar("Top actors", s.Actors)) })
	g.Go(func() error { return c.write(ctx, "years.html", yearBar(s.Years)) })
	g.Go(func() error { return c.write(ctx, "months.html", monthBar(s.Months)) })
	g.Go(func() error { return c.write(ctx, "seasons.html", seasonBar(s.Seasons)) })
	g.Go(func() error { return c.write(ctx, "runtime.html", runtimeBar(s.MinutesHistogram)) })
	g.Go(func() error {
		if err := c.write(ctx, "wordcloud.html", titleCloud(s.TitleWords)); err != nil {
			c.logger.Warn("word cloud skipped", "error", err)
		}
		return nil
	})

	return g.Wait()
}

func (c *ChartWriter) write(ctx context.Context, name string, chart renderable) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := filepath.Join(c.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	if err := chart.Render(f); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	c.logger.Debug("chart written", "path", path)
	return nil
}

func typePie(types []stats.TypeCount) renderable {
	pie := charts.NewPie()
	pie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Content types"}))

	data := make([]opts.PieData, 0, len(types))
	for _, tc := range types {
		data = append(data, opts.PieData{Name: string(tc.Type), Value: tc.Count})
	}
	pie.AddSeries("types", data)
	return pie
}

func rankingBar(title string, entries []stats.RankEntry) renderable {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))

	names := make([]string, 0, len(entries))
	data := make([]opts.BarData, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
		data = append(data, opts.BarData{Value: e.Count})
	}
	bar.SetXAxis(names).AddSeries("count", data)
	return bar
}

func yearBar(years []stats.YearCount) renderable {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Titles added per year"}))

	labels := make([]string, 0, len(years))
	data := make([]opts.BarData, 0, len(years))
	for _, yc := range years {
		labels = append(labels, fmt.Sprintf("%d", yc.Year))
		data = append(data, opts.BarData{Value: yc.Count})
	}
	bar.SetXAxis(labels).AddSeries("count", data)
	return bar
}

func monthBar(months []stats.MonthCount) renderable {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Titles added per month"}))

	labels := make([]string, 0, len(months))
	data := make([]opts.BarData, 0, len(months))
	for _, mc := range months {
		labels = append(labels, time.Month(mc.Month).String()[:3])
		data = append(data, opts.BarData{Value: mc.Count})
	}
	bar.SetXAxis(labels).AddSeries("count", data)
	return bar
}

func seasonBar(seasons []stats.SeasonCount) renderable {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Season counts"}))

	labels := make([]string, 0, len(seasons))
	data := make([]opts.BarData, 0, len(seasons))
	for _, sc := range seasons {
		labels = append(labels, fmt.Sprintf("%d", sc.Seasons))
		data = append(data, opts.BarData{Value: sc.Count})
	}
	bar.SetXAxis(labels).AddSeries("shows", data)
	return bar
}

func runtimeBar(bins []stats.HistBin) renderable {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Movie runtimes (minutes)"}))

	labels := make([]string, 0, len(bins))
	data := make([]opts.BarData, 0, len(bins))
	for _, bin := range bins {
		labels = append(labels, fmt.Sprintf("%d-%d", bin.Lo, bin.Hi))
		data = append(data, opts.BarData{Value: bin.Count})
	}
	bar.SetXAxis(labels).AddSeries("movies", data)
	return bar
}

func titleCloud(words []stats.RankEntry) renderable {
	wc := charts.NewWordCloud()
	wc.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Title words"}))

	if len(words) > maxCloudWords {
		words = words[:maxCloudWords]
	}
	data := make([]opts.WordCloudData, 0, len(words))
	for _, e := range words {
		data = append(data, opts.WordCloudData{Name: e.Name, Value: e.Count})
	}
	// The library exports the option with its own "World" spelling.
	wc.AddSeries("titles", data,
		charts.WithWorldCloudChartOpts(opts.WordCloudChart{SizeRange: []float32{14, 70}}))
	return wc
}
