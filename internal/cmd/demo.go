package cmd

import (
	"errors"
	"fmt"

	"github.com/Iron-Ham/logsmith"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("141"))

func printHeader(title string) {
	fmt.Println(headerStyle.Render("== " + title + " =="))
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Console formatting, hierarchy and structured fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()

		printHeader("basic logging")
		log, err := logsmith.Get("demo", logsmith.NOTSET)
		if err != nil {
			return err
		}
		if err := log.AddConsole(logsmith.TRACE, nil); err != nil {
			return err
		}
		log.Trace("tracing internals")
		log.Debug("debugging value %d", 42)
		log.Info("service started on port %d", 8080)
		log.Warning("disk usage at %d%%", 91)
		log.Error("request failed", logsmith.WithError(errors.New("connection refused")))
		log.Critical("shutting down")

		printHeader("structured fields")
		log.Info("user logged in",
			logsmith.WithFields(logsmith.Fields{"user": "ada", "attempts": 1}),
			logsmith.WithField("remote", "10.0.0.7"))

		printHeader("hierarchy")
		parent, err := logsmith.Get("app", logsmith.DEBUG)
		if err != nil {
			return err
		}
		child, err := logsmith.Get("app.api", logsmith.NOTSET)
		if err != nil {
			return err
		}
		if err := child.AddConsole(logsmith.TRACE, nil); err != nil {
			return err
		}
		child.Debug("inherited DEBUG from %q", parent.Name())

		printHeader("strict field ordering")
		details, err := logsmith.NewDetails(
			"%H:%M:%S.%3f", "|",
			&logsmith.OptionalFields{LoggerName: true, Lineno: true, FuncName: true},
			[]string{"level", "logger_name", "func_name", "lineno"},
			false,
		)
		if err != nil {
			return err
		}
		ordered, err := logsmith.Get("demo.ordered", logsmith.NOTSET)
		if err != nil {
			return err
		}
		if err := ordered.AddConsole(logsmith.TRACE, details); err != nil {
			return err
		}
		ordered.Info("every middle field in a declared order")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
