package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/querykit/internal/config"
	"github.com/aidanlsb/querykit/internal/dataset"
	"github.com/aidanlsb/querykit/internal/logger"
	"github.com/aidanlsb/querykit/internal/ui"
)

var (
	// Global flags
	configPath   string
	dataPathFlag string
	logLevelFlag string

	// Resolved values
	resolvedConfigPath string
	cfg                *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "qk",
	Short: "querykit - query operations over in-memory data",
	Long: `querykit runs query-style operations (projection, filtering, ordering,
aggregation, deduplication, range generation and grouping) over a small
dataset and prints the results.

Without --data the built-in sample of people and numbers is used.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for commands that don't need it
		switch cmd.Name() {
		case "completion", "help", "version":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}

		resolvedConfigPath = config.ResolveConfigPath(configPath)

		if logLevelFlag != "" && !logger.ValidLevel(logLevelFlag) {
			return handleErrorMsg(ErrInvalidArgument,
				fmt.Sprintf("unknown log level %q", logLevelFlag),
				"Use one of: "+strings.Join(logger.Levels, ", "))
		}
		ui.ApplyColorPreference()

		// The config subcommands that repair or locate the file must work
		// even when it does not validate.
		if isConfigRepairCmd(cmd) {
			cfg = &config.Config{}
			logger.Init(logger.Config{Level: logLevelFlag})
			return nil
		}

		var err error
		cfg, err = config.LoadOptional(resolvedConfigPath)
		if err != nil {
			return handleError(ErrConfigInvalid, err, "Fix the file or run 'qk config set KEY VALUE' to overwrite the bad value")
		}

		ui.ConfigureTheme(cfg.UI.Accent)

		level := cfg.Log.Level
		if logLevelFlag != "" {
			level = logLevelFlag
		}
		logger.Init(logger.Config{Level: level, Format: cfg.Log.Format})
		slog.Debug("config loaded", "path", resolvedConfigPath)

		return nil
	},
}

// isConfigRepairCmd reports whether cmd is 'config init', 'config path' or
// 'config set'. These load the file themselves, if at all.
func isConfigRepairCmd(cmd *cobra.Command) bool {
	if cmd.Parent() == nil || cmd.Parent().Name() != "config" {
		return false
	}
	switch cmd.Name() {
	case "init", "path", "set":
		return true
	}
	return false
}

// Execute runs the CLI.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errSilent) {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVarP(&dataPathFlag, "data", "d", "", "Dataset file (yaml, toml or json)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for script use)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level for stderr diagnostics (debug, info, warn, error)")
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	if cfg == nil {
		return &config.Config{}
	}
	return cfg
}

// loadDataset resolves the dataset for the current run.
func loadDataset() (*dataset.Dataset, error) {
	ds, err := dataset.Resolve(dataPathFlag, getConfig().ResolveDataFile(resolvedConfigPath))
	if err != nil {
		return nil, handleError(ErrDataLoadFailed, err, "Check the --data path or data_file in config.toml")
	}
	slog.Debug("dataset loaded", "source", ds.Source, "people", len(ds.People), "numbers", len(ds.Numbers))
	return ds, nil
}

// requirePeople fails when the dataset has no people.
func requirePeople(ds *dataset.Dataset) error {
	if len(ds.People) == 0 {
		return handleErrorMsg(ErrInvalidInput,
			fmt.Sprintf("dataset %s has no people", ds.Source),
			"Add a 'people' list to the dataset file")
	}
	return nil
}

// outputFormat returns the --format flag if set, else the configured default.
func outputFormat(cmd *cobra.Command) (string, error) {
	format := getConfig().OutputFormat()
	if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
		format = strings.ToLower(strings.TrimSpace(f.Value.String()))
	}
	for _, known := range config.Formats {
		if format == known {
			return format, nil
		}
	}
	return "", handleErrorMsg(ErrInvalidInput,
		fmt.Sprintf("unknown format %q", format),
		"Use one of: "+strings.Join(config.Formats, ", "))
}
