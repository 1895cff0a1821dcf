// Package jobs defines the built-in measurement plans a run can select.
// A Job fixes how many launches, warmups and measured iterations the
// execution engine performs. Only the catalog lives here; the engine that
// interprets a plan is an external collaborator.
package jobs

// Job is an immutable measurement plan. Selections hand out the
// package-level singletons by pointer; nothing mutates a Job after init.
type Job struct {
	// ID is the stable display name of the plan.
	ID string

	// Launches is the number of fresh process launches.
	Launches int

	// Warmups is the number of unmeasured warmup iterations per launch.
	Warmups int

	// Iterations is the number of measured iterations per launch.
	Iterations int
}

var (
	// Default is the plan a run gets when nothing is selected explicitly.
	Default = &Job{ID: "Default", Launches: 1, Warmups: 6, Iterations: 15}

	// Dry runs a single iteration of everything. Useful for smoke-testing a
	// benchmark definition without waiting for statistics.
	Dry = &Job{ID: "Dry", Launches: 1, Warmups: 1, Iterations: 1}

	Short  = &Job{ID: "Short", Launches: 1, Warmups: 3, Iterations: 3}
	Medium = &Job{ID: "Medium", Launches: 2, Warmups: 6, Iterations: 15}
	Long   = &Job{ID: "Long", Launches: 3, Warmups: 12, Iterations: 100}
)
