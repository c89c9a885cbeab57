package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/appsdothingsiguess/portfoliosite/pkg/config"
	"github.com/appsdothingsiguess/portfoliosite/pkg/logging"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var contentDir string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Validate, export, and serve a mode-based portfolio site",
	Long: `portfolio manages a personal portfolio that presents the same person four ways:
research, ABA, business, and journalism.

Content lives as markdown, YAML, or JSON files grouped by collection. The validate
and export commands check that content against the collection schemas; serve hosts
the built static site with client-side route fallback.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is environment only)")
	rootCmd.PersistentFlags().StringVar(&contentDir, "content-dir", "", "content directory (default from config)")
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose
	return result
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}

// pick returns the flag value, or the config value when the flag is unset.
func pick(flagValue, configValue string) (result string) {
	result = flagValue
	if result == "" {
		result = configValue
	}
	return result
}

// setup loads the configuration and builds the logger for a command.
func setup() (cfg config.Config, logger *zap.Logger, err error) {
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return cfg, logger, err
	}

	level := cfg.Log.Level
	if getVerbose() {
		level = "debug"
	}

	logger, err = logging.New(level, cfg.Log.Format)
	if err != nil {
		return cfg, logger, err
	}

	return cfg, logger, err
}
