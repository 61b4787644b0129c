// Package pwsh walks a shast.Script and emits PowerShell text: the word
// quoting translator, the variable/path mapping tables, redirect lowering
// and the per-command translator registry all live here.
package pwsh

// ToolAvailability mirrors the four-flag record the tool probe returns.
type ToolAvailability struct {
	Rg   bool
	Fd   bool
	Curl bool
	Jq   bool
}

// Options carries the caller-supplied overrides from spec.md §6.
type Options struct {
	AvailableTools    *ToolAvailability
	PreferNativeTools bool
	PSVersion         string
}

// TransformContext is the mutable scratchpad threaded through one
// translateScript call. One instance per top-level transpile invocation;
// never reused across calls.
type TransformContext struct {
	Tools             ToolAvailability
	PreferNativeTools bool
	PSVersion         string

	Warnings      []string
	Unsupported   []string
	UsedFallbacks bool
}

// NewContext builds a TransformContext from a fully-resolved Options value.
// Callers (pkg/transpile) are responsible for applying the spec.md §4.5
// defaults — PreferNativeTools=true, PSVersion="5.1" — before calling this;
// NewContext itself performs no defaulting so it stays a pure copy.
func NewContext(opts Options) *TransformContext {
	ctx := &TransformContext{
		PreferNativeTools: opts.PreferNativeTools,
		PSVersion:         opts.PSVersion,
	}
	if opts.AvailableTools != nil {
		ctx.Tools = *opts.AvailableTools
	}
	return ctx
}

func (c *TransformContext) warn(msg string) {
	c.Warnings = append(c.Warnings, msg)
}

func (c *TransformContext) unsupported(raw string) {
	c.Unsupported = append(c.Unsupported, raw)
}

func (c *TransformContext) fellBack() {
	c.UsedFallbacks = true
}

// childContext builds the fresh context used to translate a command
// substitution's inner script. It starts with empty diagnostics and
// carries over only the parent's tool record and its read-only options
// (PreferNativeTools, PSVersion); the parent absorbs the child's warnings,
// unsupported list and fallback flag after translation completes so
// effects aggregate upward only and inner state cannot corrupt the
// outer walk.
func (c *TransformContext) childContext() *TransformContext {
	return &TransformContext{
		Tools:             c.Tools,
		PreferNativeTools: c.PreferNativeTools,
		PSVersion:         c.PSVersion,
	}
}

func (c *TransformContext) absorb(child *TransformContext) {
	c.Warnings = append(c.Warnings, child.Warnings...)
	c.Unsupported = append(c.Unsupported, child.Unsupported...)
	if child.UsedFallbacks {
		c.UsedFallbacks = true
	}
}
