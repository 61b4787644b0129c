package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"bash2pwsh/pkg/transpile"
)

// Version info set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Debug logger (nil when -debug is off).
var debugLog *log.Logger

// Exit codes. Translation never fails the process — a bad bash input
// still produces a Result (with the failure folded into its Warnings/
// Unsupported and an error comment in PowerShell) and exits 0.
// ExitConfigError is used for the failures around translation: loading
// the -config file, reading the input, and encoding the -json output.
const (
	ExitOK          = 0
	ExitConfigError = 1
)

func main() {
	configPath := flag.String("config", "", "path to TOML configuration file")
	debugMode := flag.Bool("debug", false, "enable debug logging to stderr and $TMPDIR/bash2pwsh.log")
	showVersion := flag.Bool("version", false, "print version and exit")
	jsonOutput := flag.Bool("json", false, "print the full Result as JSON instead of bare PowerShell text")
	flag.Parse()

	if *showVersion {
		fmt.Printf("bash2pwsh %s (commit: %s, built: %s)\n", version, commit, date)
		os.Exit(ExitOK)
	}

	var cfg *Config
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(ExitConfigError)
		}
		cfg = loaded
	}

	if *debugMode {
		initDebugLog(logPathFor(cfg))
	}

	bash, err := readInput(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(ExitConfigError)
	}
	logDebug("Input bash: %q", bash)

	opts := cfg.toTranspileOptions()
	logDebugOptions(opts)

	result := transpile.TranspileWithMeta(bash, opts)
	logDebugResult(result)

	if *jsonOutput {
		outputJSONResult(result)
	} else {
		outputPlainResult(result)
	}
	os.Exit(ExitOK)
}

// readInput reads bash from a trailing positional argument if present,
// otherwise from stdin.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func outputPlainResult(result transpile.Result) {
	fmt.Println(result.PowerShell)
	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
}

func outputJSONResult(result transpile.Result) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		os.Exit(ExitConfigError)
	}
}

// Debug logging helpers, ported from cmd/cc-allow/main.go's multiWriter/
// initDebugLog/logDebug trio.

type multiWriter struct {
	writers []io.Writer
}

func (mw *multiWriter) Write(p []byte) (n int, err error) {
	for _, w := range mw.writers {
		w.Write(p) // best-effort write to each
	}
	return len(p), nil
}

func initDebugLog(logPath string) {
	writers := []io.Writer{os.Stderr}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err == nil {
		writers = append(writers, f)
		fmt.Fprintf(os.Stderr, "[debug] Log file: %s\n", logPath)
	}

	debugLog = log.New(&multiWriter{writers}, "[bash2pwsh] ", log.Ltime)
}

func logPathFor(cfg *Config) string {
	if p := cfg.logFile(); p != "" {
		return p
	}
	return filepath.Join(os.TempDir(), "bash2pwsh.log")
}

func logDebug(format string, args ...interface{}) {
	if debugLog != nil {
		debugLog.Printf(format, args...)
	}
}

func logDebugOptions(opts transpile.Options) {
	if debugLog == nil {
		return
	}
	logDebug("Options: prefer_native_tools=%v ps_version=%s", opts.PreferNativeTools, opts.PSVersion)
	if opts.AvailableTools != nil {
		logDebug("Tools: rg=%v fd=%v curl=%v jq=%v", opts.AvailableTools.Rg, opts.AvailableTools.Fd, opts.AvailableTools.Curl, opts.AvailableTools.Jq)
	}
}

func logDebugResult(result transpile.Result) {
	if debugLog == nil {
		return
	}
	logDebug("Result: usedFallbacks=%v warnings=%d unsupported=%d", result.UsedFallbacks, len(result.Warnings), len(result.Unsupported))
	for _, w := range result.Warnings {
		logDebug("  warning: %s", w)
	}
	for _, u := range result.Unsupported {
		logDebug("  unsupported: %s", u)
	}
}
