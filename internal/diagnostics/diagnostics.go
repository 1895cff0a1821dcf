// Package diagnostics provides the run diagnosers and their discovery.
//
// Unlike the other option catalogs, diagnosers are not listed in a static
// table. Available walks the compiled-in probe set once, on first use, and
// DisplayName derives the user-facing name from the probe's type identity,
// so a probe becomes selectable by mere existence.
package diagnostics

import (
	"reflect"
	"strings"
	"sync"
)

// typeSuffix is stripped from a probe's type name to form its display name.
const typeSuffix = "Diagnoser"

// Diagnoser is a probe attached to a run to collect extra runtime data.
// Attaching and sampling happen outside this repository.
type Diagnoser interface {
	Describe() string
}

// DisplayName derives the selectable name of a diagnoser from its type:
// the type name with the Diagnoser suffix removed, lower-cased. A
// *MemoryDiagnoser resolves as "memory".
func DisplayName(d Diagnoser) string {
	t := reflect.TypeOf(d)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return strings.ToLower(strings.TrimSuffix(t.Name(), typeSuffix))
}

// Available returns the discovered probes in a stable order. Discovery runs
// at most once; concurrent first calls observe the same slice.
var Available = sync.OnceValue(func() []Diagnoser {
	return []Diagnoser{
		&MemoryDiagnoser{},
		&MutexDiagnoser{Fraction: 5},
		&BlockDiagnoser{Rate: 100},
	}
})
