package pipeline

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/factor-cli/internal/model"
)

func makeRows(n int) []model.Row {
	rows := make([]model.Row, n)
	for i := range rows {
		rows[i] = model.Row{"id": fmt.Sprintf("row-%d", i)}
	}
	return rows
}

func TestChunkRows_Empty(t *testing.T) {
	assert.Empty(t, ChunkRows(nil, 10))
	assert.Empty(t, ChunkRows([]model.Row{}, 10))
}

func TestChunkRows_SingleBatchWhenSizeExceedsLength(t *testing.T) {
	rows := makeRows(3)
	batches := ChunkRows(rows, 10)
	require.Len(t, batches, 1)
	assert.Equal(t, 1, batches[0].Number)
	assert.Equal(t, 0, batches[0].Start)
	assert.Len(t, batches[0].Rows, 3)
}

func TestChunkRows_ExactDivision(t *testing.T) {
	batches := ChunkRows(makeRows(10), 5)
	require.Len(t, batches, 2)
	assert.Len(t, batches[0].Rows, 5)
	assert.Len(t, batches[1].Rows, 5)
}

func TestChunkRows_ShortFinalBatch(t *testing.T) {
	batches := ChunkRows(makeRows(11), 5)
	require.Len(t, batches, 3)
	assert.Len(t, batches[2].Rows, 1)
	assert.Equal(t, 10, batches[2].Start)
}

func TestChunkRows_ConcatenationReproducesInput(t *testing.T) {
	for _, tc := range []struct{ n, b int }{
		{0, 1}, {1, 1}, {7, 3}, {25, 25}, {100, 7}, {99, 100},
	} {
		t.Run(fmt.Sprintf("n=%d_b=%d", tc.n, tc.b), func(t *testing.T) {
			rows := makeRows(tc.n)
			batches := ChunkRows(rows, tc.b)

			expected := (tc.n + tc.b - 1) / tc.b
			assert.Len(t, batches, expected)

			var flat []model.Row
			for i, batch := range batches {
				assert.Equal(t, i+1, batch.Number)
				if i < len(batches)-1 {
					assert.Len(t, batch.Rows, tc.b)
				}
				flat = append(flat, batch.Rows...)
			}
			assert.Equal(t, rows, append([]model.Row{}, flat...))
		})
	}
}

func TestChunkRows_InvalidSizeDefaultsToOne(t *testing.T) {
	batches := ChunkRows(makeRows(3), 0)
	assert.Len(t, batches, 3)
}
