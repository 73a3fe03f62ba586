package cmd

import (
	"sort"

	"github.com/Iron-Ham/logsmith"
	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Preview the built-in color themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()

		log, err := logsmith.Get("themes", logsmith.TRACE)
		if err != nil {
			return err
		}
		if err := log.AddConsole(logsmith.TRACE, nil); err != nil {
			return err
		}

		names := make([]string, 0, len(logsmith.BuiltinThemes))
		for name := range logsmith.BuiltinThemes {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			printHeader(name)
			logsmith.ApplyColorTheme(logsmith.BuiltinThemes[name])
			log.Trace("trace sample")
			log.Debug("debug sample")
			log.Info("info sample")
			log.Warning("warning sample")
			log.Error("error sample")
			log.Critical("critical sample")
		}

		logsmith.ApplyColorTheme(nil)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}
