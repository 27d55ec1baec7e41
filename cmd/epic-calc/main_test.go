package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/zeeshanok/epic-calc/pkg/report"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestEvalText(t *testing.T) {
	got := execute(t, "", "eval", "-o", "text", "2+3*4", "5+", "10-3-2")
	if want := "14\n\n5\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEvalStdin(t *testing.T) {
	got := execute(t, "1+1\r\n2^3^2\n", "eval", "-o", "text")
	if want := "2\n64\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEvalJSON(t *testing.T) {
	out := execute(t, "", "eval", "-o", "json", "2+3*4")
	var records []report.Record
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(records) != 1 || records[0].Answer != "14" || records[0].State != "complete" {
		t.Errorf("got %+v", records)
	}
}

func TestEvalYAML(t *testing.T) {
	out := execute(t, "", "eval", "-o", "yaml", "7/2", "5+")
	var records []report.Record
	if err := yaml.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("invalid YAML %q: %v", out, err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records", len(records))
	}
	if records[0].Answer != "3.5" {
		t.Errorf("answer = %q, want 3.5", records[0].Answer)
	}
	if records[1].Answer != "" || records[1].State != "incomplete" {
		t.Errorf("got %+v", records[1])
	}
}

func TestWriteRecordsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := writeRecords(&buf, "xml", nil); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("EPIC_CALC_TEST_KEY", "")
	if got := envOrDefault("EPIC_CALC_TEST_KEY", "fallback"); got != "fallback" {
		t.Errorf("got %q", got)
	}
	t.Setenv("EPIC_CALC_TEST_KEY", "set")
	if got := envOrDefault("EPIC_CALC_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("got %q", got)
	}
}

func TestListenAddr(t *testing.T) {
	tests := []struct {
		name     string
		envHost  string
		envPort  string
		hostFlag string
		portFlag int
		want     string
	}{
		{"defaults", "", "", "", 0, "127.0.0.1:8790"},
		{"env", "0.0.0.0", "9000", "", 0, "0.0.0.0:9000"},
		{"flags", "", "", "localhost", 8081, "localhost:8081"},
		{"flags over env", "0.0.0.0", "9000", "localhost", 8081, "localhost:8081"},
		{"mixed", "0.0.0.0", "", "", 8081, "0.0.0.0:8081"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOST", tt.envHost)
			t.Setenv("PORT", tt.envPort)
			if got := listenAddr(tt.portFlag, tt.hostFlag); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
