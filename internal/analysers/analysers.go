// Package analysers defines the built-in result analysers. Analysis itself
// happens outside this repository; the catalog only carries identity.
package analysers

// Analyser identifies one post-run analysis pass over the measurements.
type Analyser struct {
	ID string
}

var (
	// Outliers flags runs whose measurements contain upper outliers.
	Outliers = &Analyser{ID: "Outliers"}

	// Multimodal flags measurement distributions with more than one mode.
	Multimodal = &Analyser{ID: "Multimodal"}

	// ZeroMeasurement flags measurements too close to the timer resolution.
	ZeroMeasurement = &Analyser{ID: "ZeroMeasurement"}
)
