package main

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/glbb/config"
	"github.com/lixenwraith/glbb/physics"
)

// runArgs runs the command tree with args in an isolated environment
func runArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	chdirTemp(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	// Flag values persist on the package-level commands between executions
	configPath, debugFlag = "", false
	for _, name := range []string{"velocity", "deceleration"} {
		traceCmd.Flags().Lookup(name).Changed = false
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := execute()
	return out.String(), err
}

func TestConfigShowDefaults(t *testing.T) {
	out, err := runArgs(t, "config", "show")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(out, "# source: defaults") {
		t.Errorf("Expected defaults source line, got %q", out)
	}
	if !strings.Contains(out, "[physics]") || !strings.Contains(out, "gravity = 800.0") {
		t.Errorf("Expected physics section, got %q", out)
	}
}

func TestConfigShowFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glbb.toml")
	if err := os.WriteFile(path, []byte("[physics]\nrestitution = 0.5\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	out, err := runArgs(t, "config", "show", "--config", path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(out, "# source: "+path) {
		t.Errorf("Expected source line for %s, got %q", path, out)
	}
	if !strings.Contains(out, "restitution = 0.5") {
		t.Errorf("Expected overridden restitution, got %q", out)
	}
}

func TestConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glbb.toml")
	if err := os.WriteFile(path, []byte("[ball]\nradiuss = 10\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	_, err := runArgs(t, "config", "show", "--config", path)
	if !errors.Is(err, config.ErrUnknownKeys) {
		t.Errorf("Expected ErrUnknownKeys, got %v", err)
	}
}

func TestTracePlots(t *testing.T) {
	out, err := runArgs(t, "trace", "--frames", "1500", "--height", "200", "--direction", "left", "--x", "400")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for _, want := range []string{"GLBB trace", "height (y)", "position (x)", "Bounces", "Reflections"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
}

func TestTraceRejectsDirection(t *testing.T) {
	_, err := runArgs(t, "trace", "--direction", "up")
	if err == nil || !strings.Contains(err.Error(), "unknown direction") {
		t.Errorf("Expected unknown direction error, got %v", err)
	}
}

func TestRunNeedsTerminal(t *testing.T) {
	// go test never attaches stdout to a terminal
	_, err := runArgs(t, "run")
	if !errors.Is(err, errNotTerminal) {
		t.Errorf("Expected errNotTerminal, got %v", err)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want physics.Sign
	}{
		{"left", physics.SignLeft},
		{"RIGHT", physics.SignRight},
		{"none", physics.SignNone},
		{"stopped", physics.SignNone},
	}
	for _, tt := range tests {
		got, err := parseDirection(tt.in)
		if err != nil {
			t.Errorf("parseDirection(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseDirection(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestDebugLogClosedOnError(t *testing.T) {
	_, err := runArgs(t, "trace", "--direction", "up", "--debug")
	if err == nil {
		t.Fatal("Expected the trace to fail")
	}
	if logFile != nil {
		t.Error("Expected the debug log closed after a failed command")
	}
	if log.Writer() != io.Discard {
		t.Error("Expected logging detached from the closed file")
	}

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Expected the debug log to exist, got %v", err)
	}
	if !strings.Contains(string(data), "config: defaults") {
		t.Errorf("Expected the config line in the log, got %q", string(data))
	}
}
