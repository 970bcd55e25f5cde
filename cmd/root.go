package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-analyzer/internal/analysis"
	"github.com/spigell/resume-analyzer/internal/batch"
	"github.com/spigell/resume-analyzer/internal/logger"
	"github.com/spigell/resume-analyzer/internal/roles"
	"github.com/spigell/resume-analyzer/internal/taxonomy"
)

const (
	app       = "resume-analyzer"
	envPrefix = "RESUME_ANALYZER"
)

type Config struct {
	// Industry selects the salary tables.
	Industry string `mapstructure:"industry"`
	// Skills are extra candidate skills to look for in resumes.
	Skills []string `mapstructure:"skills" validate:"dive,required"`
	// TaxonomyFile is a YAML overlay for the reference tables.
	TaxonomyFile string                  `mapstructure:"taxonomy-file"`
	ReportFile   string                  `mapstructure:"report-file"`
	Requirements roles.RequirementConfig `mapstructure:"requirements"`
	Batch        *BatchConfig            `mapstructure:"batch" validate:"required"`
}

type BatchConfig struct {
	Workers int    `mapstructure:"workers" validate:"gte=0,lte=64"`
	Format  string `mapstructure:"format" validate:"oneof=json csv"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-analyzer scores resumes against job descriptions and suggests improvements",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-analyzer.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	setDefaults(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	d := roles.DefaultRequirementConfig()

	v.SetDefault("industry", "Tech")
	v.SetDefault("skills", []string{})
	v.SetDefault("taxonomy-file", "")
	v.SetDefault("report-file", "")
	v.SetDefault("requirements.section-window", d.SectionWindow)
	v.SetDefault("requirements.indicator-window", d.IndicatorWindow)
	v.SetDefault("requirements.sparse-threshold", d.SparseThreshold)
	v.SetDefault("requirements.enrich-threshold", d.EnrichThreshold)
	v.SetDefault("batch.workers", batch.DefaultWorkers)
	v.SetDefault("batch.format", "json")
}

func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// The config file is optional unless it was given explicitly.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return config, err
	}

	if err := validateConfig(config); err != nil {
		return config, err
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config == nil {
		return errors.New("config is required")
	}

	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	return nil
}

// newLogger builds the command logger tagged with a fresh run id.
func newLogger() *zap.Logger {
	l, err := logger.New(logger.Options{
		JSON:  viper.GetBool("json"),
		Debug: viper.GetBool("debug"),
		RunID: uuid.NewString(),
	})
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	return l
}

// prepare returns the logger, config and analyzer shared by the commands.
func prepare() (*zap.Logger, *Config, *analysis.Analyzer) {
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Debug("starting the resume-analyzer",
		zap.String("version", version),
		zap.Any("config", config),
	)

	tables, err := loadTables(config.TaxonomyFile)
	if err != nil {
		logger.Fatal("loading reference tables", zap.Error(err))
	}

	return logger, config, analysis.New(tables, config.Requirements, logger)
}

// loadTables returns the embedded tables, with the overlay file merged on top
// when one is set.
func loadTables(file string) (*taxonomy.Tables, error) {
	if strings.TrimSpace(file) == "" {
		return taxonomy.Default(), nil
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("opening taxonomy file: %w", err)
	}
	defer f.Close()

	tables, err := taxonomy.Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading taxonomy file %q: %w", file, err)
	}

	return tables, nil
}
