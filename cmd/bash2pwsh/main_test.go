package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestReadInputPrefersPositionalArg(t *testing.T) {
	got, err := readInput([]string{"echo hi"})
	if err != nil {
		t.Fatalf("readInput error: %v", err)
	}
	if got != "echo hi" {
		t.Fatalf("got %q", got)
	}
}

func TestLogPathForDefaultsToTempDir(t *testing.T) {
	got := logPathFor(nil)
	want := filepath.Join(filepath.Dir(got), "bash2pwsh.log")
	if !strings.HasSuffix(got, "bash2pwsh.log") || filepath.Dir(got) != filepath.Dir(want) {
		t.Fatalf("got %q", got)
	}
}

func TestLogPathForHonorsConfig(t *testing.T) {
	cfg := &Config{Debug: DebugConfig{LogFile: "/tmp/custom.log"}}
	if got := logPathFor(cfg); got != "/tmp/custom.log" {
		t.Fatalf("got %q", got)
	}
}
