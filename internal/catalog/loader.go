package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMissingFile is returned when the dataset file does not exist.
var ErrMissingFile = errors.New("dataset file not found")

// requiredColumns are the header names the loader maps by position.
var requiredColumns = []string{
	"title", "type", "director", "cast", "country",
	"date_added", "rating", "duration", "listed_in",
}

// Load reads a catalog CSV export with a header row.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrMissingFile)
		}
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer func() { _ = f.Close() }()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Read parses catalog records from r. The first row must be a header
// containing every required column; extra columns are ignored.
func Read(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows, column map guards access

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := mapHeader(header)
	if err != nil {
		return nil, err
	}

	var records []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		records = append(records, Record{
			Title:     field(row, cols["title"]),
			Type:      ContentType(field(row, cols["type"])),
			Director:  field(row, cols["director"]),
			Cast:      field(row, cols["cast"]),
			Country:   field(row, cols["country"]),
			DateAdded: field(row, cols["date_added"]),
			Rating:    field(row, cols["rating"]),
			Duration:  field(row, cols["duration"]),
			ListedIn:  field(row, cols["listed_in"]),
		})
	}
	return records, nil
}

// mapHeader maps required column names to their positions.
func mapHeader(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("header missing columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
