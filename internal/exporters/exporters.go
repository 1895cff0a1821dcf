// Package exporters defines the built-in report formats. An Exporter here is
// a named handle; rendering a report is the job of an external collaborator.
package exporters

// Exporter identifies one report format.
type Exporter struct {
	// ID is the stable display name of the format.
	ID string

	// FileExtension is used when the report is written to disk.
	FileExtension string
}

var (
	CSV      = &Exporter{ID: "CSV", FileExtension: "csv"}
	JSON     = &Exporter{ID: "JSON", FileExtension: "json"}
	Markdown = &Exporter{ID: "Markdown", FileExtension: "md"}
	HTML     = &Exporter{ID: "HTML", FileExtension: "html"}
	Plain    = &Exporter{ID: "Plain", FileExtension: "txt"}
)
