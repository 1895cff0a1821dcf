// Package validators defines the built-in run-definition validators. The
// checks themselves run outside this repository; the catalog carries
// identity and severity.
package validators

// Validator identifies one pre-run check over the benchmark definition.
type Validator struct {
	ID string

	// FailOnError marks findings as fatal rather than warnings.
	FailOnError bool
}

var (
	// Baseline checks that at most one case per group is marked as baseline.
	Baseline = &Validator{ID: "Baseline", FailOnError: true}

	// Duplicates warns about benchmark cases that share an identity.
	Duplicates = &Validator{ID: "Duplicates", FailOnError: false}

	// RunMode checks that every case is runnable under the selected plan.
	RunMode = &Validator{ID: "RunMode", FailOnError: true}
)
