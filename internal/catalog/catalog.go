// Package catalog defines the content record model and loads catalog CSV exports.
package catalog

// ContentType distinguishes movies from TV shows.
type ContentType string

const (
	TypeMovie  ContentType = "Movie"
	TypeTVShow ContentType = "TV Show"
)

// NoData is substituted for absent optional fields so downstream code
// can treat them as always present.
const NoData = "No Data"

// Record is one content item as loaded from the export, all fields raw strings.
type Record struct {
	Title     string
	Type      ContentType
	Director  string
	Cast      string
	Country   string
	DateAdded string
	Rating    string
	Duration  string
	ListedIn  string
}
