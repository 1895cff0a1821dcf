package diagnostics

// MemoryDiagnoser samples heap allocation statistics around each launch.
type MemoryDiagnoser struct{}

func (d *MemoryDiagnoser) Describe() string {
	return "Samples heap allocations and GC activity per launch"
}

// MutexDiagnoser records mutex contention at the configured fraction.
type MutexDiagnoser struct {
	Fraction int
}

func (d *MutexDiagnoser) Describe() string {
	return "Records mutex contention events during measured iterations"
}

// BlockDiagnoser records goroutine blocking at the configured rate.
type BlockDiagnoser struct {
	Rate int
}

func (d *BlockDiagnoser) Describe() string {
	return "Records goroutine blocking events during measured iterations"
}
