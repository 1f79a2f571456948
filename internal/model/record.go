package model

// Row is one parsed purchase record: a mapping from header name to a
// primitive cell value (string, number, bool, or nil). Column order lives in
// the header slice that accompanies the row set. A row's position in the
// original sequence is its only stable identifier; rows are never mutated
// after parsing.
type Row map[string]any

// ExampleMatch is a denormalized few-shot example injected into the
// classification prompt. The pipeline treats the example list as opaque.
type ExampleMatch struct {
	RowData            string `json:"rowData" yaml:"row_data"`
	EmissionFactorCode string `json:"EmissionFactorCode" yaml:"emission_factor_code"`
	EmissionFactorName string `json:"EmissionFactorName" yaml:"emission_factor_name"`
}

// Batch is a contiguous, order-preserving slice of rows processed as one
// remote call. Number is 1-based and is the unit of progress reporting and
// error attribution; Start is the index of the first row in the original
// sequence.
type Batch struct {
	Number int
	Start  int
	Rows   []Row
}

// BatchOutcome is the result of classifying one batch: either a label slice
// of exactly len(batch.Rows), or a failure message. Failure is batch-local;
// the reconciler converts it into per-row sentinel labels.
type BatchOutcome struct {
	BatchNumber int
	Labels      []Label
	FailureMsg  string
}

// Failed reports whether the batch produced no usable labels.
func (o BatchOutcome) Failed() bool {
	return o.FailureMsg != ""
}
