package model

import "time"

// EnrichmentResult is the envelope returned by the pipeline: a success flag,
// a human-readable message used verbatim for user notification, and a label
// per input row in original order.
type EnrichmentResult struct {
	RunID         string        `json:"run_id"`
	Success       bool          `json:"success"`
	Message       string        `json:"message"`
	Labels        []Label       `json:"labels"`
	Rows          []ResultRow   `json:"-"`
	TotalBatches  int           `json:"total_batches"`
	FailedBatches int           `json:"failed_batches"`
	Usage         TokenUsage    `json:"usage"`
	Elapsed       time.Duration `json:"-"`
}

// ProgressEvent reports one settled batch. In sequential mode events arrive
// in batch order; in parallel mode they arrive in completion order but the
// counters are always cumulative.
type ProgressEvent struct {
	Batch        int
	TotalBatches int
	RowsDone     int
	TotalRows    int
}

// ProgressFunc receives progress events as batches settle. Implementations
// must be fast; the dispatcher serializes invocations.
type ProgressFunc func(ProgressEvent)
