package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-analyzer/internal/analysis"
	"github.com/spigell/resume-analyzer/internal/document"
)

const (
	PromptPrintReport      = "Print report"
	PromptSaveReport       = "Save report to file"
	PromptSkillGaps        = "Show skill gaps"
	PromptCertifications   = "Show certifications"
	PromptAnalysisToFile   = "Dump analysis to file"
	PromptExit             = "Exit"
	defaultReportFile      = "resume-report.txt"
	analysisTmpFilePattern = "resume-analysis-*.json"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptPrintReport, PromptSaveReport, PromptSkillGaps, PromptCertifications, PromptAnalysisToFile, PromptExit},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job description",
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("resume", "r", "", "resume file (.pdf, .docx or plain text)")
	addJobFlags(analyzeCmd)
	analyzeCmd.Flags().StringSlice("skills", nil, "extra candidate skills to look for, comma separated")
	analyzeCmd.Flags().String("industry", "", "industry for the salary estimate (default Tech)")
	analyzeCmd.Flags().Int("experience", 0, "years of experience, overrides the estimate from the resume")
	analyzeCmd.Flags().String("report", "", "file to save the text report to")
	analyzeCmd.Flags().BoolP("auto-approve", "y", false, "print the report and exit without the interactive menu")

	analyzeCmd.MarkFlagRequired("resume")

	viper.BindPFlag("skills", analyzeCmd.Flags().Lookup("skills"))
	viper.BindPFlag("industry", analyzeCmd.Flags().Lookup("industry"))
	viper.BindPFlag("report-file", analyzeCmd.Flags().Lookup("report"))
}

func addJobFlags(cmd *cobra.Command) {
	cmd.Flags().String("job", "", "job description file (.pdf, .docx or plain text)")
	cmd.Flags().String("job-text", "", "job description text, used when --job is not set")
	cmd.MarkFlagsOneRequired("job", "job-text")
}

func readJob(cmd *cobra.Command) (string, error) {
	file, _ := cmd.Flags().GetString("job")
	text, _ := cmd.Flags().GetString("job-text")

	return document.Read(document.Source{Name: "job description", File: file, Value: text})
}

// analyze is the main command for the cli.
func analyze(cmd *cobra.Command) {
	logger, config, analyzer := prepare()

	resumeFile, _ := cmd.Flags().GetString("resume")
	experience, _ := cmd.Flags().GetInt("experience")

	jobText, err := readJob(cmd)
	if err != nil {
		logger.Fatal("reading the job description", zap.Error(err))
	}

	src := document.Source{File: resumeFile}
	resumeText := document.Extract(src)

	var candidates []string
	if len(config.Skills) > 0 {
		candidates = config.Skills
	}

	result, err := analyzer.Analyze(analysis.Input{
		Name:       src.DisplayName(),
		ResumeText: resumeText,
		JobText:    jobText,
		Candidates: candidates,
		Industry:   config.Industry,
		Experience: experience,
	})
	if err != nil {
		logger.Fatal("analyzing the resume", zap.Error(err), zap.String("file", resumeFile))
	}

	s := &session{
		out:        cmd.OutOrStdout(),
		logger:     logger,
		result:     result,
		reportFile: config.ReportFile,
	}

	if auto, _ := cmd.Flags().GetBool("auto-approve"); auto {
		if err := s.handleAction(PromptPrintReport); err != nil {
			logger.Fatal("printing the report", zap.Error(err))
		}
		if s.reportFile != "" {
			if err := s.handleAction(PromptSaveReport); err != nil {
				logger.Fatal("saving the report", zap.Error(err))
			}
		}
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := s.handleAction(action); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

// session holds one analysis result for the interactive menu.
type session struct {
	out        io.Writer
	logger     *zap.Logger
	result     *analysis.Result
	reportFile string
	// askPath asks for the report file when none is configured.
	askPath func() (string, error)
}

func (s *session) handleAction(action string) error {
	switch action {
	case PromptPrintReport:
		_, err := fmt.Fprintln(s.out, s.result.Report)
		return err
	case PromptSaveReport:
		return s.saveReport()
	case PromptSkillGaps:
		return s.printSkillGaps()
	case PromptCertifications:
		return s.printCertifications()
	case PromptAnalysisToFile:
		filename, err := dumpToTmpFile(s.result)
		if err != nil {
			return fmt.Errorf("dump analysis to file: %w", err)
		}
		s.logger.Info("dumping analysis to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		s.logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func (s *session) saveReport() error {
	path := s.reportFile
	if path == "" {
		ask := s.askPath
		if ask == nil {
			ask = askReportPath
		}

		var err error
		if path, err = ask(); err != nil {
			return err
		}
	}

	if err := os.WriteFile(path, []byte(s.result.Report+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	s.reportFile = path
	s.logger.Info("report saved", zap.String("filename", path))
	return nil
}

func askReportPath() (string, error) {
	p := promptui.Prompt{
		Label:   "Report file",
		Default: defaultReportFile,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("file name is required")
			}
			return nil
		},
	}

	path, err := p.Run()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(path), nil
}

func (s *session) printSkillGaps() error {
	if len(s.result.SkillGaps) == 0 {
		_, err := fmt.Fprintln(s.out, "No skill gaps found.")
		return err
	}

	for _, gap := range s.result.SkillGaps {
		_, err := fmt.Fprintf(s.out, "%s [%s] %s, demand %s, growth %.0f%%, resources: %s\n",
			gap.Skill, gap.Priority, gap.Timeline, gap.Demand, gap.Growth, strings.Join(gap.Resources, ", "),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *session) printCertifications() error {
	if len(s.result.Certifications) == 0 {
		_, err := fmt.Fprintln(s.out, "No certifications to recommend.")
		return err
	}

	for _, c := range s.result.Certifications {
		_, err := fmt.Fprintf(s.out, "%s (%s, %s relevance, %s)\n", c.Name, c.Area, c.Relevance, c.Duration)
		if err != nil {
			return err
		}
	}

	return nil
}

// dumpToTmpFile writes the analysis as JSON to a new temporary file and
// returns its name.
func dumpToTmpFile(result *analysis.Result) (string, error) {
	f, err := os.CreateTemp("", analysisTmpFilePattern)
	if err != nil {
		return "", err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return "", err
	}

	return f.Name(), nil
}
