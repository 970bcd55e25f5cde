package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Print the detected role and required skills of a job description as JSON",
	Run: func(cmd *cobra.Command, _ []string) {
		logger, _, analyzer := prepare()

		text, err := readJob(cmd)
		if err != nil {
			logger.Fatal("reading the job description", zap.Error(err))
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(analyzer.AnalyzeJob(text)); err != nil {
			logger.Fatal("writing the job analysis", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(jobCmd)

	addJobFlags(jobCmd)
}
