package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-analyzer/internal/batch"
	"github.com/spigell/resume-analyzer/internal/document"
)

var batchCmd = &cobra.Command{
	Use:   "batch RESUME...",
	Short: "Rank several resumes against one job description",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runBatch(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	addJobFlags(batchCmd)
	batchCmd.Flags().String("format", "", "output format: json or csv (default json)")
	batchCmd.Flags().Int("workers", 0, fmt.Sprintf("resumes analyzed in parallel (default %d)", batch.DefaultWorkers))

	viper.BindPFlag("batch.format", batchCmd.Flags().Lookup("format"))
	viper.BindPFlag("batch.workers", batchCmd.Flags().Lookup("workers"))
}

func runBatch(cmd *cobra.Command, files []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger, config, analyzer := prepare()

	jobText, err := readJob(cmd)
	if err != nil {
		logger.Fatal("reading the job description", zap.Error(err))
	}

	docs := readResumes(files)
	logger.Info("ranking resumes", zap.Int("count", len(docs)), zap.Int("workers", config.Batch.Workers))

	rows, err := batch.Rank(ctx, analyzer, docs, jobText, config.Batch.Workers)
	if err != nil {
		logger.Fatal("ranking resumes", zap.Error(err))
	}

	for _, row := range rows {
		if row.Error != "" {
			logger.Warn("resume skipped", zap.String("document", row.Name), zap.String("reason", row.Error))
		}
	}

	if err := writeRows(cmd.OutOrStdout(), config.Batch.Format, rows); err != nil {
		logger.Fatal("writing the ranking", zap.Error(err))
	}
}

// readResumes extracts the text of every file. Unreadable files keep their
// failure text and are ranked last.
func readResumes(files []string) []batch.Document {
	docs := make([]batch.Document, 0, len(files))
	for _, file := range files {
		src := document.Source{File: file}
		docs = append(docs, batch.Document{Name: src.DisplayName(), Text: document.Extract(src)})
	}
	return docs
}

func writeRows(w io.Writer, format string, rows []batch.Row) error {
	switch format {
	case "csv":
		return batch.WriteCSV(w, rows)
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Rows    []batch.Row   `json:"rows"`
			Summary batch.Summary `json:"summary"`
		}{rows, batch.Summarize(rows)})
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
