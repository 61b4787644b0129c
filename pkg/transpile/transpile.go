// Package transpile wires the lexer, parser and transformer into the two
// functions spec.md §6 exposes: Transpile and TranspileWithMeta. It is
// the one place that recovers from a raised parse error (or any panic)
// into the two-line error comment spec.md §4.5/§7 mandates.
package transpile

import (
	"strings"

	"bash2pwsh/pkg/pwsh"
	"bash2pwsh/pkg/shast"
	"bash2pwsh/pkg/shlex"
	"bash2pwsh/pkg/toolprobe"
)

// ToolAvailability mirrors pkg/pwsh.ToolAvailability at the external API
// boundary spec.md §6 specifies.
type ToolAvailability = pwsh.ToolAvailability

// Options carries the caller-supplied overrides.
type Options struct {
	AvailableTools    *ToolAvailability
	PreferNativeTools bool
	PSVersion         string
}

// Result is TranspileWithMeta's return value.
type Result struct {
	PowerShell    string
	UsedFallbacks bool
	Warnings      []string
	Unsupported   []string
}

// Transpile returns only the PowerShell text; any failure is already
// folded into that text as an error comment.
func Transpile(bash string, opts ...Options) string {
	return TranspileWithMeta(bash, opts...).PowerShell
}

// TranspileWithMeta performs the full lex→parse→translate pipeline and
// always returns a well-formed Result — it never panics or returns an
// error to the caller (spec.md §7's contract).
func TranspileWithMeta(bash string, opts ...Options) (result Result) {
	if strings.TrimSpace(bash) == "" {
		return Result{}
	}

	resolved := resolveOptions(opts)

	defer func() {
		if r := recover(); r != nil {
			result = errorResult(bash, panicMessage(r))
		}
	}()

	ctx := pwsh.NewContext(pwsh.Options{
		AvailableTools:    resolved.AvailableTools,
		PreferNativeTools: resolved.PreferNativeTools,
		PSVersion:         resolved.PSVersion,
	})

	toks := shlex.Lex(bash)
	script, err := shast.Parse(toks)
	if err != nil {
		return errorResult(bash, err.Error())
	}

	ps := pwsh.TranslateScript(script, ctx)
	return Result{
		PowerShell:    ps,
		UsedFallbacks: ctx.UsedFallbacks,
		Warnings:      ctx.Warnings,
		Unsupported:   ctx.Unsupported,
	}
}

func resolveOptions(opts []Options) Options {
	o := Options{PreferNativeTools: true, PSVersion: "5.1"}
	if len(opts) == 0 {
		tools := toolprobe.Detect()
		o.AvailableTools = &tools
		return o
	}
	given := opts[0]
	o.PreferNativeTools = given.PreferNativeTools
	if given.PSVersion != "" {
		o.PSVersion = given.PSVersion
	}
	if given.AvailableTools != nil {
		o.AvailableTools = given.AvailableTools
	} else {
		tools := toolprobe.Detect()
		o.AvailableTools = &tools
	}
	return o
}

func panicMessage(r any) string {
	if err, ok := r.(error); ok {
		return err.Error()
	}
	if s, ok := r.(string); ok {
		return s
	}
	return "internal error"
}

// errorResult builds the "# TRANSPILE ERROR: ...\n# Original: ..." form
// spec.md §4.2/§6 specifies, with warnings/unsupported populated exactly
// as spec.md §7 category 2 describes.
func errorResult(bash, msg string) Result {
	return Result{
		PowerShell:  "# TRANSPILE ERROR: " + msg + "\n# Original: " + bash,
		Warnings:    []string{"Transpilation failed: " + msg},
		Unsupported: []string{bash},
	}
}

// DetectTools probes PATH for native tools, per spec.md §6.
func DetectTools() ToolAvailability {
	return toolprobe.Detect()
}

// ResetToolCache clears the process-wide tool-availability cache.
func ResetToolCache() {
	toolprobe.ResetCache()
}
