package pipeline

import (
	"github.com/sells-group/factor-cli/internal/model"
)

// labelsForOutcome returns exactly one label per row of the batch. Success
// zips the outcome's labels positionally; failure synthesizes a sentinel per
// row with the failure reason embedded in the name field, so failure stays
// row-local and visible in the output.
func labelsForOutcome(batch model.Batch, outcome model.BatchOutcome) []model.Label {
	if outcome.Failed() {
		labels := make([]model.Label, len(batch.Rows))
		for i := range labels {
			labels[i] = model.ErrorLabel(outcome.FailureMsg)
		}
		return labels
	}
	return outcome.Labels
}

// MergeOutcomes reassembles per-batch outcomes into the full-length label
// sequence, ordered by batch index, never by completion time. The result has
// exactly one label per input row regardless of how many batches failed.
func MergeOutcomes(batches []model.Batch, outcomes []model.BatchOutcome) []model.Label {
	total := 0
	for _, b := range batches {
		total += len(b.Rows)
	}

	labels := make([]model.Label, 0, total)
	for i, batch := range batches {
		labels = append(labels, labelsForOutcome(batch, outcomes[i])...)
	}
	return labels
}

// AttachLabels zips rows with their labels into the decorated result
// sequence. Both slices must have the same length.
func AttachLabels(rows []model.Row, labels []model.Label) []model.ResultRow {
	out := make([]model.ResultRow, len(rows))
	for i := range rows {
		out[i] = model.ResultRow{Row: rows[i], Label: labels[i]}
	}
	return out
}
