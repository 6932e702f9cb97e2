package tracer

import "time"

type WorkerStat struct {
	// The worker id.
	Id int

	// Number of frame rows rendered by this worker.
	Rows int

	// Time spent tracing assigned rows.
	RenderTime time.Duration
}

type FrameStats struct {
	// Individual worker stats.
	Workers []WorkerStat

	// Total render time for entire frame.
	RenderTime time.Duration
}
