package core

// ExecutorStats is a point-in-time snapshot of an executor's runtime
// state, for dashboards and pollers.
type ExecutorStats struct {
	Name     string
	State    ExecutorState
	Workers  int
	Queued   int
	Active   int
	Rejected int64
}

// StatsSource is implemented by executors that expose stats snapshots.
type StatsSource interface {
	Stats() ExecutorStats
}
