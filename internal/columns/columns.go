// Package columns defines the statistic columns a summary table can show.
package columns

// Column describes one summary-table column. Instances are immutable
// package-level singletons; the statistics that fill a column in are
// computed outside this repository.
type Column struct {
	// Title is the column header.
	Title string

	// Legend explains the column in the summary footer.
	Legend string
}

var (
	Mean   = &Column{Title: "Mean", Legend: "Arithmetic mean of all measurements"}
	StdErr = &Column{Title: "StdErr", Legend: "Standard error of all measurements"}
	StdDev = &Column{Title: "StdDev", Legend: "Standard deviation of all measurements"}
	Min    = &Column{Title: "Min", Legend: "Minimum measurement"}
	Q1     = &Column{Title: "Q1", Legend: "Quartile 1 (25th percentile)"}
	Median = &Column{Title: "Median", Legend: "Value separating the higher half of all measurements (50th percentile)"}
	Q3     = &Column{Title: "Q3", Legend: "Quartile 3 (75th percentile)"}
	Max    = &Column{Title: "Max", Legend: "Maximum measurement"}
	P90    = &Column{Title: "P90", Legend: "90th percentile"}
	P95    = &Column{Title: "P95", Legend: "95th percentile"}

	// OpsPerSecond is the throughput column.
	OpsPerSecond = &Column{Title: "Op/s", Legend: "Operations per second"}
)
