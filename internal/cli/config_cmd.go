package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/querykit/internal/config"
	"github.com/aidanlsb/querykit/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit the querykit config file",
	Long: `Manages config.toml.

The file is looked up at --config, then $QUERYKIT_CONFIG, then
~/.config/querykit/config.toml, then the OS config directory.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		exists := fileExists(resolvedConfigPath)
		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"config_path": resolvedConfigPath,
				"exists":      exists,
			}, nil)
			return nil
		}
		out(resolvedConfigPath)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a commented config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		created, err := config.CreateDefault(resolvedConfigPath)
		if err != nil {
			return handleError(ErrFileWriteError, err, "")
		}
		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"config_path": resolvedConfigPath,
				"created":     created,
			}, nil)
			return nil
		}
		if !created {
			out(ui.Infof("Config already exists: %s", resolvedConfigPath))
			return nil
		}
		out(ui.Successf("Created %s", resolvedConfigPath))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := getConfig()
		values := configValues(c)
		exists := fileExists(resolvedConfigPath)

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"config_path": resolvedConfigPath,
				"exists":      exists,
				"values":      values,
			}, nil)
			return nil
		}

		if !exists {
			out(ui.Hint(fmt.Sprintf("Config file does not exist: %s", resolvedConfigPath)))
			out(ui.Hint("Run 'qk config init' to create it."))
			return nil
		}

		out(ui.Muted.Render("config: ") + resolvedConfigPath)
		t := ui.NewTable(2)
		for _, key := range config.Keys {
			if v := values[key]; v != "" {
				t.AddRow(ui.Key(key), v)
			}
		}
		outf("%s", t.String())
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a config value (empty VALUE clears it)",
	Long: `Sets one key in config.toml, creating the file if needed.

Keys: data_file, seed, output.format, ui.accent, log.level, log.format

Examples:
  qk config set output.format markdown
  qk config set seed 42
  qk config set ui.accent ""`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return handleErrorMsg(ErrMissingArgument, "requires KEY and VALUE", "Usage: qk config set KEY VALUE")
		}
		c, err := config.LoadUnvalidated(resolvedConfigPath)
		if err != nil {
			return handleError(ErrConfigInvalid, err, "")
		}
		if err := c.Set(args[0], args[1]); err != nil {
			return handleError(ErrInvalidArgument, err, "Valid keys: "+strings.Join(config.Keys, ", "))
		}
		if err := config.SaveTo(resolvedConfigPath, c); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"config_path": resolvedConfigPath,
				"key":         args[0],
				"value":       configValues(c)[args[0]],
			}, nil)
			return nil
		}
		out(ui.Successf("Set %s in %s", args[0], resolvedConfigPath))
		return nil
	},
}

// configValues flattens c to its dotted keys. Unset values are empty.
func configValues(c *config.Config) map[string]string {
	seed := ""
	if c.Seed != 0 {
		seed = strconv.FormatUint(c.Seed, 10)
	}
	return map[string]string{
		"data_file":     strings.TrimSpace(c.DataFile),
		"seed":          seed,
		"output.format": strings.TrimSpace(c.Output.Format),
		"ui.accent":     strings.TrimSpace(c.UI.Accent),
		"log.level":     strings.TrimSpace(c.Log.Level),
		"log.format":    strings.TrimSpace(c.Log.Format),
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
