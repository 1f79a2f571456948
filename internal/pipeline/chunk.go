package pipeline

import "github.com/sells-group/factor-cli/internal/model"

// ChunkRows splits rows into contiguous batches of at most size rows. The
// concatenation of the returned batches reproduces the input exactly: no row
// is dropped, duplicated, or reordered. Zero rows yield zero batches; the
// final batch may be shorter than size. Batch numbers are 1-based.
func ChunkRows(rows []model.Row, size int) []model.Batch {
	if size < 1 {
		size = 1
	}

	batches := make([]model.Batch, 0, (len(rows)+size-1)/size)
	for start := 0; start < len(rows); start += size {
		end := start + size
		if end > len(rows) {
			end = len(rows)
		}
		batches = append(batches, model.Batch{
			Number: len(batches) + 1,
			Start:  start,
			Rows:   rows[start:end],
		})
	}
	return batches
}
