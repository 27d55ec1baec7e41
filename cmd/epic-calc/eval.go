package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zeeshanok/epic-calc/pkg/report"
	"gopkg.in/yaml.v3"
)

var evalCmd = &cobra.Command{
	Use:   "eval [expression...]",
	Short: "Evaluate expressions from arguments or stdin and print the answers",
	RunE:  runEval,
}

func init() {
	evalCmd.Flags().StringP("output", "o", "", "Output format: text, json or yaml (default text, env EPIC_CALC_OUTPUT)")
}

func runEval(cmd *cobra.Command, args []string) error {
	format := envOrDefault("EPIC_CALC_OUTPUT", "text")
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		format = v
	}

	exprs := args
	if len(exprs) == 0 {
		lines, err := readLines(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading expressions: %w", err)
		}
		exprs = lines
	}

	records := make([]report.Record, len(exprs))
	for i, e := range exprs {
		records[i] = report.New(e)
	}
	return writeRecords(cmd.OutOrStdout(), format, records)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	return lines, sc.Err()
}

// writeRecords prints records in the requested format.
func writeRecords(w io.Writer, format string, records []report.Record) error {
	switch format {
	case "text":
		for _, rec := range records {
			if _, err := fmt.Fprintln(w, rec.Answer); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}
