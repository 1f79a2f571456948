package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/factor-cli/internal/model"
)

// Run dispatches batches one at a time, in order. A batch failure degrades
// that batch's rows to sentinel labels and the job continues; the envelope's
// success flag reports whether any batch failed. The result always carries
// exactly one label per input row, in input order.
func (p *Pipeline) Run(ctx context.Context, in Input) (*model.EnrichmentResult, error) {
	runID := newRunID()
	start := time.Now()

	batches := ChunkRows(in.Rows, p.batchSize(in))
	if len(batches) == 0 {
		return emptyResult(runID), nil
	}

	log := zap.L().With(zap.String("run_id", runID))
	log.Info("pipeline: sequential dispatch",
		zap.Int("rows", len(in.Rows)),
		zap.Int("batches", len(batches)),
	)

	outcomes := make([]model.BatchOutcome, len(batches))
	var usage model.TokenUsage
	failed := 0
	rowsDone := 0

	for i, batch := range batches {
		outcome, u := p.classifyBatch(ctx, in, batch, len(batches))
		outcomes[i] = outcome
		usage.Add(u)
		if outcome.Failed() {
			failed++
			log.Warn("pipeline: batch failed",
				zap.Int("batch", batch.Number),
				zap.String("reason", outcome.FailureMsg),
			)
		}

		rowsDone += len(batch.Rows)
		p.emit(model.ProgressEvent{
			Batch:        batch.Number,
			TotalBatches: len(batches),
			RowsDone:     rowsDone,
			TotalRows:    len(in.Rows),
		})
	}

	return p.assemble(runID, in, batches, outcomes, usage, failed, time.Since(start)), nil
}

// RunParallel dispatches all batches concurrently, bounded by the configured
// max in-flight count. Completion order is irrelevant: outcomes are keyed by
// batch index and reassembled in original order. Unlike sequential dispatch,
// any batch failure fails the whole job; the dispatcher still waits for every
// batch before returning the aggregate error.
func (p *Pipeline) RunParallel(ctx context.Context, in Input) (*model.EnrichmentResult, error) {
	runID := newRunID()
	start := time.Now()

	batches := ChunkRows(in.Rows, p.batchSize(in))
	if len(batches) == 0 {
		return emptyResult(runID), nil
	}

	log := zap.L().With(zap.String("run_id", runID))
	log.Info("pipeline: parallel dispatch",
		zap.Int("rows", len(in.Rows)),
		zap.Int("batches", len(batches)),
		zap.Int("max_in_flight", p.maxInFlight()),
	)

	outcomes := make([]model.BatchOutcome, len(batches))
	usages := make([]model.TokenUsage, len(batches))
	var rowsDone atomic.Int64

	// A plain Group, not WithContext: a failed batch must not cancel its
	// siblings, every batch runs to completion.
	var g errgroup.Group
	g.SetLimit(p.maxInFlight())

	for i, batch := range batches {
		g.Go(func() error {
			outcomes[i], usages[i] = p.classifyBatch(ctx, in, batch, len(batches))

			done := rowsDone.Add(int64(len(batch.Rows)))
			p.emit(model.ProgressEvent{
				Batch:        batch.Number,
				TotalBatches: len(batches),
				RowsDone:     int(done),
				TotalRows:    len(in.Rows),
			})
			return nil
		})
	}
	_ = g.Wait()

	var usage model.TokenUsage
	for _, u := range usages {
		usage.Add(u)
	}

	var failures []string
	for _, o := range outcomes {
		if o.Failed() {
			failures = append(failures, fmt.Sprintf("batch %d: %s", o.BatchNumber, o.FailureMsg))
		}
	}
	if len(failures) > 0 {
		log.Error("pipeline: parallel run failed",
			zap.Int("failed_batches", len(failures)),
			zap.Int("total_batches", len(batches)),
		)
		return nil, eris.Errorf("parallel classification failed (%d of %d batches): %s",
			len(failures), len(batches), strings.Join(failures, "; "))
	}

	return p.assemble(runID, in, batches, outcomes, usage, 0, time.Since(start)), nil
}

// assemble merges outcomes into the final envelope.
func (p *Pipeline) assemble(runID string, in Input, batches []model.Batch, outcomes []model.BatchOutcome, usage model.TokenUsage, failed int, elapsed time.Duration) *model.EnrichmentResult {
	labels := MergeOutcomes(batches, outcomes)

	message := fmt.Sprintf("Classified %d rows in %d batches", len(in.Rows), len(batches))
	if failed > 0 {
		message = fmt.Sprintf("Classified %d rows in %d batches; %d batches failed", len(in.Rows), len(batches), failed)
	}

	zap.L().Info("pipeline: run complete",
		zap.String("run_id", runID),
		zap.Int("rows", len(in.Rows)),
		zap.Int("batches", len(batches)),
		zap.Int("failed_batches", failed),
		zap.Int("input_tokens", usage.InputTokens),
		zap.Int("output_tokens", usage.OutputTokens),
		zap.Duration("elapsed", elapsed),
	)

	return &model.EnrichmentResult{
		RunID:         runID,
		Success:       failed == 0,
		Message:       message,
		Labels:        labels,
		Rows:          AttachLabels(in.Rows, labels),
		TotalBatches:  len(batches),
		FailedBatches: failed,
		Usage:         usage,
		Elapsed:       elapsed,
	}
}
