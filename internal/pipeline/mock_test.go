package pipeline

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sells-group/factor-cli/internal/classifier"
)

// mockClassifier stands in for the remote classifier client.
type mockClassifier struct {
	mock.Mock
}

func (m *mockClassifier) ClassifyBatch(ctx context.Context, req classifier.BatchPrompt) (*classifier.Result, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*classifier.Result), args.Error(1)
}

// fnClassifier routes each call through a plain function, for tests that key
// behavior off the batch number instead of testify expectations.
type fnClassifier struct {
	fn func(ctx context.Context, req classifier.BatchPrompt) (*classifier.Result, error)
}

func (f *fnClassifier) ClassifyBatch(ctx context.Context, req classifier.BatchPrompt) (*classifier.Result, error) {
	return f.fn(ctx, req)
}
