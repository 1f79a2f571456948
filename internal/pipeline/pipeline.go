// Package pipeline implements the batch orchestration and response
// reconciliation core: chunking rows into bounded batches, dispatching them
// to the classifier sequentially or in parallel, normalizing the replies, and
// reassembling a full-length, order-preserving result.
package pipeline

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/sells-group/factor-cli/internal/classifier"
	"github.com/sells-group/factor-cli/internal/config"
	"github.com/sells-group/factor-cli/internal/model"
)

// defaultBatchSize applies when neither the config nor the input specify one.
const defaultBatchSize = 25

// defaultMaxInFlight bounds parallel fan-out when the config leaves it unset.
const defaultMaxInFlight = 8

// Classifier issues one remote classification call per batch.
type Classifier interface {
	ClassifyBatch(ctx context.Context, req classifier.BatchPrompt) (*classifier.Result, error)
}

// Input is one enrichment request. HeaderDescriptions must cover every
// header; the caller enforces that before invoking the pipeline.
type Input struct {
	Headers            []string
	HeaderDescriptions map[string]string
	Rows               []model.Row
	Examples           []model.ExampleMatch

	// BatchSize overrides the configured batch size for this run when > 0.
	BatchSize int
}

// Pipeline runs the chunk → classify → normalize → reconcile sequence.
type Pipeline struct {
	classifier Classifier
	cfg        config.PipelineConfig

	progress   model.ProgressFunc
	progressMu sync.Mutex
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithProgress registers a callback invoked after each batch settles.
// Invocations are serialized; the callback never runs concurrently.
func WithProgress(fn model.ProgressFunc) Option {
	return func(p *Pipeline) {
		p.progress = fn
	}
}

// New creates a Pipeline.
func New(c Classifier, cfg config.PipelineConfig, opts ...Option) *Pipeline {
	p := &Pipeline{classifier: c, cfg: cfg}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Pipeline) batchSize(in Input) int {
	if in.BatchSize > 0 {
		return in.BatchSize
	}
	if p.cfg.BatchSize > 0 {
		return p.cfg.BatchSize
	}
	return defaultBatchSize
}

func (p *Pipeline) maxInFlight() int {
	if p.cfg.MaxInFlight > 0 {
		return p.cfg.MaxInFlight
	}
	return defaultMaxInFlight
}

func (p *Pipeline) emit(ev model.ProgressEvent) {
	if p.progress == nil {
		return
	}
	p.progressMu.Lock()
	defer p.progressMu.Unlock()
	p.progress(ev)
}

// classifyBatch runs one batch through prompt building, the remote call, and
// normalization. Every failure mode is caught here and converted into a
// batch-local outcome; nothing escapes to abort sibling batches.
func (p *Pipeline) classifyBatch(ctx context.Context, in Input, batch model.Batch, totalBatches int) (model.BatchOutcome, model.TokenUsage) {
	outcome := model.BatchOutcome{BatchNumber: batch.Number}

	user, err := BuildUserPrompt(in.Headers, in.HeaderDescriptions, batch, in.Examples)
	if err != nil {
		outcome.FailureMsg = failureReason(err)
		return outcome, model.TokenUsage{}
	}

	res, err := p.classifier.ClassifyBatch(ctx, classifier.BatchPrompt{
		System:       BuildSystemPrompt(),
		User:         user,
		BatchNumber:  batch.Number,
		TotalBatches: totalBatches,
		RowCount:     len(batch.Rows),
	})
	if err != nil {
		outcome.FailureMsg = failureReason(err)
		return outcome, model.TokenUsage{}
	}

	labels, err := NormalizeResponse(res.Text, len(batch.Rows))
	if err != nil {
		outcome.FailureMsg = failureReason(err)
		return outcome, res.Usage
	}

	outcome.Labels = labels
	return outcome, res.Usage
}

// failureReason extracts the root cause message so the sentinel label carries
// the distinct reason, not the whole wrap chain.
func failureReason(err error) string {
	if cause := eris.Cause(err); cause != nil {
		return cause.Error()
	}
	return err.Error()
}

func emptyResult(runID string) *model.EnrichmentResult {
	return &model.EnrichmentResult{
		RunID:   runID,
		Success: true,
		Message: "no rows to classify",
		Labels:  []model.Label{},
		Rows:    []model.ResultRow{},
	}
}

func newRunID() string {
	return uuid.NewString()
}
