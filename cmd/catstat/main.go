// Command catstat analyzes a streaming-catalog CSV export: it cleans the
// data, derives date and duration features, and reports descriptive
// statistics as console output and HTML charts.
package main

func main() {
	Execute()
}
