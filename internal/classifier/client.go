// Package classifier wraps the Anthropic Messages API as a batch
// classification call with a strict output contract. Model-level failure
// modes (refusal, truncation, content filtering) surface as distinct errors
// so callers can report a precise reason per batch; only transport-level
// failures are retried.
package classifier

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/factor-cli/internal/config"
	"github.com/sells-group/factor-cli/internal/model"
	"github.com/sells-group/factor-cli/internal/resilience"
	"github.com/sells-group/factor-cli/pkg/anthropic"
)

// Terminal model-side failures. Each maps to a distinct user-facing reason
// string; none of them is ever retried.
var (
	ErrRefused         = eris.New("the model refused to classify this batch")
	ErrTruncated       = eris.New("response was truncated by the output token limit")
	ErrContentFiltered = eris.New("response was blocked by content filtering")
)

// BatchPrompt is one classification request: a prompt pair plus the batch
// coordinates used for logging and error attribution.
type BatchPrompt struct {
	System       string
	User         string
	BatchNumber  int
	TotalBatches int
	RowCount     int
}

// Result is a successful classification reply.
type Result struct {
	Text  string
	Usage model.TokenUsage
}

// Client issues one rate-limited, retried Messages call per batch.
type Client struct {
	ai      anthropic.Client
	cfg     config.AnthropicConfig
	limiter *rate.Limiter
	retry   resilience.RetryConfig
}

// New creates a classifier client. The rate limiter is shared across all
// batches of a run, so parallel dispatch cannot exceed the configured
// request rate regardless of fan-out.
func New(ai anthropic.Client, cfg config.AnthropicConfig) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 2
	}
	retry := resilience.DefaultRetryConfig()
	if cfg.MaxAttempts > 0 {
		retry.MaxAttempts = cfg.MaxAttempts
	}
	retry.OnRetry = resilience.RetryLogger("anthropic", "classify_batch")

	return &Client{
		ai:      ai,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		retry:   retry,
	}
}

// ClassifyBatch sends one request carrying a batch's rows and returns the raw
// reply text. The reply is expected to be a JSON object; parsing it is the
// normalizer's job, not the client's.
func (c *Client) ClassifyBatch(ctx context.Context, req BatchPrompt) (*Result, error) {
	log := zap.L().With(
		zap.Int("batch", req.BatchNumber),
		zap.Int("total_batches", req.TotalBatches),
		zap.Int("rows", req.RowCount),
	)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "classifier: rate limit wait")
	}

	start := time.Now()
	resp, err := resilience.Do(ctx, c.retry, func(ctx context.Context) (*anthropic.MessageResponse, error) {
		return c.ai.CreateMessage(ctx, anthropic.MessageRequest{
			Model:     c.cfg.Model,
			MaxTokens: c.cfg.MaxTokens,
			System:    anthropic.BuildCachedSystemBlocks(req.System),
			Messages: []anthropic.Message{
				{Role: "user", Content: req.User},
			},
		})
	})
	elapsed := time.Since(start)

	if err != nil {
		log.Warn("classifier: request failed",
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return nil, eris.Wrap(err, "classifier: create message")
	}

	if err := outcomeFromResponse(resp); err != nil {
		log.Warn("classifier: model-level failure",
			zap.Duration("elapsed", elapsed),
			zap.String("stop_reason", resp.StopReason),
			zap.Error(err),
		)
		return nil, err
	}

	log.Info("classifier: batch classified",
		zap.Duration("elapsed", elapsed),
		zap.Int64("input_tokens", resp.Usage.InputTokens),
		zap.Int64("output_tokens", resp.Usage.OutputTokens),
		zap.Int64("cache_read_tokens", resp.Usage.CacheReadInputTokens),
	)

	return &Result{
		Text: resp.Text(),
		Usage: model.TokenUsage{
			InputTokens:         int(resp.Usage.InputTokens),
			OutputTokens:        int(resp.Usage.OutputTokens),
			CacheCreationTokens: int(resp.Usage.CacheCreationInputTokens),
			CacheReadTokens:     int(resp.Usage.CacheReadInputTokens),
		},
	}, nil
}

// outcomeFromResponse maps the stop reason onto the failure taxonomy. An
// end_turn reply with no text at all is indistinguishable from a filtered
// one, so it is reported as filtered.
func outcomeFromResponse(resp *anthropic.MessageResponse) error {
	switch resp.StopReason {
	case "refusal":
		return ErrRefused
	case "max_tokens":
		return ErrTruncated
	}
	if resp.Text() == "" {
		return ErrContentFiltered
	}
	return nil
}
