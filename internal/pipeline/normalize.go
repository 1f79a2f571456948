package pipeline

import (
	"encoding/json"
	"sort"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/factor-cli/internal/model"
)

// Normalization failure reasons. Each fails the whole batch; the reconciler
// degrades the batch to sentinel labels instead of aborting the job.
var (
	ErrNotJSON      = eris.New("response is not valid JSON")
	ErrNotObject    = eris.New("response is not a JSON object")
	ErrNoMatches    = eris.New("no matches found in response")
	ErrEmptyMatches = eris.New("matches array is empty")
)

// Alternate key spellings the model is known to produce, in priority order.
var (
	codeKeys = []string{"EmissionFactorCode", "code", "factorCode"}
	nameKeys = []string{"EmissionFactorName", "name", "factorName"}
)

// NormalizeResponse converts a raw classifier reply into a label slice of
// exactly expected length. Short arrays are right-padded with MISSING
// sentinels and long ones truncated: the model occasionally over- or
// under-produces and that is recovered, not failed. Per-element schema drift
// is tolerated by probing alternate key spellings.
func NormalizeResponse(raw string, expected int) ([]model.Label, error) {
	value, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	located, err := locateMatches(value)
	if err != nil {
		return nil, err
	}
	if len(located) == 0 {
		// An empty array is indistinguishable from a missing one.
		return nil, ErrEmptyMatches
	}

	if len(located) != expected {
		zap.L().Warn("normalize: match count differs from row count",
			zap.Int("matches", len(located)),
			zap.Int("expected", expected),
		)
	}
	if len(located) > expected {
		located = located[:expected]
	}

	labels := make([]model.Label, 0, expected)
	for _, el := range located {
		labels = append(labels, coerceLabel(el))
	}
	for len(labels) < expected {
		labels = append(labels, model.MissingLabel())
	}

	return labels, nil
}

// parseResponse strips markdown wrapping and parses the reply as JSON,
// attempting a structural repair pass before giving up.
func parseResponse(raw string) (any, error) {
	text := stripFences(raw)
	if text == "" {
		return nil, ErrNotJSON
	}

	var value any
	if err := json.Unmarshal([]byte(text), &value); err == nil {
		return value, nil
	}

	// Repair is only worth attempting when the text at least looks like a
	// JSON container; repairing plain prose yields a useless scalar.
	if !strings.ContainsAny(text, "{[") {
		return nil, ErrNotJSON
	}

	repaired, err := jsonrepair.RepairJSON(text)
	if err != nil {
		return nil, ErrNotJSON
	}
	if err := json.Unmarshal([]byte(repaired), &value); err != nil {
		return nil, ErrNotJSON
	}
	return value, nil
}

// locateMatches extracts the label array from a loosely-typed JSON value.
// Heuristics in priority order: a "matches" field, a "results" field, the
// value itself if it is already an array, then the first object field (in
// sorted key order, for determinism) holding a non-empty array.
func locateMatches(value any) ([]any, error) {
	switch v := value.(type) {
	case []any:
		return v, nil
	case map[string]any:
		if arr, ok := v["matches"].([]any); ok {
			return arr, nil
		}
		if arr, ok := v["results"].([]any); ok {
			return arr, nil
		}

		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if arr, ok := v[k].([]any); ok && len(arr) > 0 {
				return arr, nil
			}
		}
		return nil, ErrNoMatches
	default:
		return nil, ErrNotObject
	}
}

// coerceLabel derives the canonical two-field label from one array element,
// probing alternate key spellings independently per field.
func coerceLabel(el any) model.Label {
	obj, ok := el.(map[string]any)
	if !ok {
		return model.UnknownLabel()
	}
	return model.Label{
		EmissionFactorCode: stringField(obj, codeKeys, model.CodeUnknown),
		EmissionFactorName: stringField(obj, nameKeys, model.NameUnknown),
	}
}

func stringField(obj map[string]any, keys []string, fallback string) string {
	for _, k := range keys {
		if s, ok := obj[k].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return fallback
}

// stripFences removes markdown code fences and surrounding prose, keeping the
// outermost JSON object or array.
func stripFences(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	}
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	closer := "}"
	if arrStart := strings.Index(text, "["); start < 0 || (arrStart >= 0 && arrStart < start) {
		start = arrStart
		closer = "]"
	}
	if start >= 0 {
		if end := strings.LastIndex(text, closer); end > start {
			text = text[start : end+1]
		}
	}

	return strings.TrimSpace(text)
}
