// Package main is the entry point for the epic-calc terminal calculator.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/zeeshanok/epic-calc/pkg/clipboard"
	"github.com/zeeshanok/epic-calc/pkg/render"
	"github.com/zeeshanok/epic-calc/pkg/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "epic-calc",
	Short: "Interactive terminal calculator with a live preview",
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	rootCmd.Version = version + " (commit=" + commit + ", built=" + date + ")"
	rootCmd.SetVersionTemplate("epic-calc version {{.Version}}\n")

	rootCmd.Flags().Bool("no-color", false, "Disable colored output (env EPIC_CALC_NO_COLOR)")
	rootCmd.Flags().String("log-file", "", "Write debug logs to this file (env EPIC_CALC_LOG)")

	rootCmd.AddCommand(evalCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logFile := os.Getenv("EPIC_CALC_LOG")
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		logFile = v
	}

	// Anything logged to the terminal would corrupt the live preview.
	if logFile != "" {
		f, err := tea.LogToFile(logFile, "epic-calc")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(
		tui.New(themeFor(cmd), clipboard.System{}),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running calculator: %w", err)
	}
	return nil
}

// themeFor picks the plain or colored theme from flags and environment.
func themeFor(cmd *cobra.Command) render.Theme {
	noColor := envOrDefault("EPIC_CALC_NO_COLOR", "") != ""
	if v, _ := cmd.Flags().GetBool("no-color"); v {
		noColor = true
	}
	if noColor {
		return render.PlainTheme()
	}
	return render.DefaultTheme()
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
