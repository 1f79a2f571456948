package main

import (
	"os"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/factor-cli/internal/classifier"
	"github.com/sells-group/factor-cli/internal/model"
	"github.com/sells-group/factor-cli/internal/pipeline"
	"github.com/sells-group/factor-cli/internal/table"
	anthropicpkg "github.com/sells-group/factor-cli/pkg/anthropic"
)

var (
	enrichInput        string
	enrichOutput       string
	enrichDescriptions string
	enrichExamples     string
	enrichBatchSize    int
	enrichParallel     bool
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Classify a purchase spreadsheet against the emission factor catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		tbl, err := table.Read(enrichInput)
		if err != nil {
			return err
		}

		descriptions, err := loadDescriptions(enrichDescriptions, tbl.Headers)
		if err != nil {
			return err
		}

		examples, err := loadExamples(enrichExamples)
		if err != nil {
			return err
		}

		ai := anthropicpkg.NewClient(cfg.Anthropic.Key)
		p := pipeline.New(classifier.New(ai, cfg.Anthropic), cfg.Pipeline,
			pipeline.WithProgress(func(ev model.ProgressEvent) {
				zap.L().Info("batch complete",
					zap.Int("batch", ev.Batch),
					zap.Int("total_batches", ev.TotalBatches),
					zap.Int("rows_done", ev.RowsDone),
					zap.Int("total_rows", ev.TotalRows),
				)
			}))

		in := pipeline.Input{
			Headers:            tbl.Headers,
			HeaderDescriptions: descriptions,
			Rows:               tbl.Rows,
			Examples:           examples,
			BatchSize:          enrichBatchSize,
		}

		var result *model.EnrichmentResult
		if enrichParallel {
			result, err = p.RunParallel(ctx, in)
		} else {
			result, err = p.Run(ctx, in)
		}
		if err != nil {
			return eris.Wrap(err, "enrich")
		}

		if err := table.Write(enrichOutput, tbl.Headers, result.Rows); err != nil {
			return err
		}

		usage := anthropicpkg.TokenUsage{
			InputTokens:              int64(result.Usage.InputTokens),
			OutputTokens:             int64(result.Usage.OutputTokens),
			CacheCreationInputTokens: int64(result.Usage.CacheCreationTokens),
			CacheReadInputTokens:     int64(result.Usage.CacheReadTokens),
		}
		usage.LogCost(cfg.Anthropic.Model, "enrich")

		zap.L().Info("enrichment complete",
			zap.String("run_id", result.RunID),
			zap.Bool("success", result.Success),
			zap.String("message", result.Message),
			zap.Int("rows", len(result.Rows)),
			zap.Int("failed_batches", result.FailedBatches),
			zap.Duration("elapsed", result.Elapsed),
			zap.String("output", enrichOutput),
		)

		if !result.Success {
			return eris.Errorf("enrichment finished with %d failed batches, see %s for sentinel rows", result.FailedBatches, enrichOutput)
		}
		return nil
	},
}

// loadDescriptions reads the header description YAML and checks it covers
// every input column, so the model never sees an unexplained field.
func loadDescriptions(path string, headers []string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "read descriptions file")
	}

	var descriptions map[string]string
	if err := yaml.Unmarshal(data, &descriptions); err != nil {
		return nil, eris.Wrap(err, "parse descriptions file")
	}

	var missing []string
	for _, h := range headers {
		if strings.TrimSpace(descriptions[h]) == "" {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, eris.Errorf("descriptions file is missing columns: %s", strings.Join(missing, ", "))
	}
	return descriptions, nil
}

func loadExamples(path string) ([]model.ExampleMatch, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "read examples file")
	}

	var examples []model.ExampleMatch
	if err := yaml.Unmarshal(data, &examples); err != nil {
		return nil, eris.Wrap(err, "parse examples file")
	}
	return examples, nil
}

func init() {
	enrichCmd.Flags().StringVar(&enrichInput, "input", "", "input CSV or XLSX file (required)")
	enrichCmd.Flags().StringVar(&enrichOutput, "output", "", "output CSV or XLSX file (required)")
	enrichCmd.Flags().StringVar(&enrichDescriptions, "descriptions", "", "YAML file mapping each column header to a description (required)")
	enrichCmd.Flags().StringVar(&enrichExamples, "examples", "", "YAML file of example classifications to include in the prompt")
	enrichCmd.Flags().IntVar(&enrichBatchSize, "batch-size", 0, "rows per classification call (default from config)")
	enrichCmd.Flags().BoolVar(&enrichParallel, "parallel", false, "dispatch batches concurrently; any batch failure fails the whole run")
	_ = enrichCmd.MarkFlagRequired("input")
	_ = enrichCmd.MarkFlagRequired("output")
	_ = enrichCmd.MarkFlagRequired("descriptions")
	rootCmd.AddCommand(enrichCmd)
}
