package model

import "fmt"

// Sentinel values substituted when a real label cannot be determined. The
// output schema is never partially absent: both label fields are always
// non-empty strings after normalization.
const (
	CodeUnknown = "UNKNOWN"
	NameUnknown = "Unknown emission factor"
	CodeMissing = "MISSING"
	NameMissing = "Match not provided"
	CodeError   = "ERROR"
)

// Label is the canonical classification result attached to one row.
type Label struct {
	EmissionFactorCode string `json:"EmissionFactorCode"`
	EmissionFactorName string `json:"EmissionFactorName"`
}

// MissingLabel fills positions the model under-produced.
func MissingLabel() Label {
	return Label{EmissionFactorCode: CodeMissing, EmissionFactorName: NameMissing}
}

// UnknownLabel fills elements whose fields could not be derived.
func UnknownLabel() Label {
	return Label{EmissionFactorCode: CodeUnknown, EmissionFactorName: NameUnknown}
}

// ErrorLabel carries a batch failure reason into the output, one per affected
// row, so failures are visible without aborting the job.
func ErrorLabel(msg string) Label {
	return Label{
		EmissionFactorCode: CodeError,
		EmissionFactorName: fmt.Sprintf("Failed: %s", msg),
	}
}

// ResultRow is a source row merged with exactly one label at the same
// positional index.
type ResultRow struct {
	Row   Row
	Label Label
}
