package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/factor-cli/internal/model"
)

const classifySystemPrompt = `You are a sustainability analyst assigning supply-chain emission factors to purchase records. Each emission factor is identified by a NAICS-style code and a name. For every input row, pick the single best matching emission factor.

Respond with a valid JSON object of this exact shape, one match per input row, in input order:
{"matches": [{"EmissionFactorCode": "<code>", "EmissionFactorName": "<name>"}]}

Do not include explanations, markdown fences, or any other fields.`

// BuildSystemPrompt returns the system prompt for batch classification. It is
// constant across batches so the prompt cache stays warm for a whole run.
func BuildSystemPrompt() string {
	return classifySystemPrompt
}

// BuildUserPrompt renders one batch into the user message: column
// descriptions, optional few-shot examples, and the rows as a JSON array.
func BuildUserPrompt(headers []string, descriptions map[string]string, batch model.Batch, examples []model.ExampleMatch) (string, error) {
	var b strings.Builder

	b.WriteString("Columns:\n")
	for _, h := range headers {
		fmt.Fprintf(&b, "- %s: %s\n", h, descriptions[h])
	}

	if len(examples) > 0 {
		b.WriteString("\nExamples of correct classifications:\n")
		for _, ex := range examples {
			fmt.Fprintf(&b, "Row: %s -> {\"EmissionFactorCode\": %q, \"EmissionFactorName\": %q}\n",
				ex.RowData, ex.EmissionFactorCode, ex.EmissionFactorName)
		}
	}

	// Rows are serialized with the header order made explicit so the model
	// sees columns consistently even though JSON objects are unordered.
	rows := make([]map[string]any, len(batch.Rows))
	for i, row := range batch.Rows {
		ordered := make(map[string]any, len(headers))
		for _, h := range headers {
			ordered[h] = row[h]
		}
		rows[i] = ordered
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return "", eris.Wrap(err, "prompt: marshal rows")
	}

	fmt.Fprintf(&b, "\nClassify these %d rows:\n%s\n", len(batch.Rows), data)
	fmt.Fprintf(&b, "\nReturn exactly %d matches, in the same order as the rows.", len(batch.Rows))

	return b.String(), nil
}
