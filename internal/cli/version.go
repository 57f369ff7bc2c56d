package cli

import (
	"github.com/spf13/cobra"

	"github.com/aidanlsb/querykit/internal/buildinfo"
	"github.com/aidanlsb/querykit/internal/ui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show qk version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := buildinfo.Current()

		if isJSONOutput() {
			outputSuccess(info, nil)
			return nil
		}

		out(ui.Bold.Render("qk " + info.Version))
		t := ui.NewTable(2)
		t.SetPadding(1)
		t.AddRow("module:", info.ModulePath)
		if info.Commit != "" {
			t.AddRow("commit:", info.Commit)
		}
		if info.CommitTime != "" {
			t.AddRow("commit_time:", info.CommitTime)
		}
		t.AddRow("go:", info.GoVersion)
		t.AddRow("platform:", info.Platform)
		if info.Modified {
			t.AddRow("modified:", "true")
		}
		outf("%s", t.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
