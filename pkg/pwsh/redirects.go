package pwsh

import (
	"strconv"
	"strings"

	"bash2pwsh/pkg/shast"
)

// translateRedirects renders the trailing redirect clauses appended after
// a translated command, per spec.md §4.3's redirect lowering rules.
// Here-strings are handled separately by the caller since they prepend
// rather than append (see redirectPrefix).
func translateRedirects(redirects []*shast.Redirect, ctx *TransformContext) string {
	var b strings.Builder
	for _, r := range redirects {
		if r.Op == "<<<" {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(translateOneRedirect(r, ctx))
	}
	return b.String()
}

// redirectPrefix renders any here-string redirects as the "(target) |"
// prefix spec.md §4.3 calls for, applied before the command.
func redirectPrefix(redirects []*shast.Redirect, ctx *TransformContext) string {
	for _, r := range redirects {
		if r.Op == "<<<" {
			return TranslateWord(r.Target, ctx) + " | "
		}
	}
	return ""
}

func translateOneRedirect(r *shast.Redirect, ctx *TransformContext) string {
	if r.Op == ">&" {
		fdStr := strconv.Itoa(r.Fd)
		tgtStr := "1"
		if r.HasTargetFd {
			tgtStr = strconv.Itoa(r.TargetFd)
		}
		return fdStr + ">&" + tgtStr
	}

	if isDevNull(r.Target) {
		switch r.Op {
		case ">":
			return fdPrefix(r) + ">$null"
		case ">>":
			return fdPrefix(r) + ">>$null"
		}
	}
	if isDevConsole(r.Target) {
		return fdPrefix(r) + r.Op + " CON"
	}

	return fdPrefix(r) + r.Op + " " + TranslateWord(r.Target, ctx)
}

// fdPrefix renders "[FD]" only when the fd differs from the PowerShell
// default for that redirect direction (1 for >/>>' , 0 for <).
func fdPrefix(r *shast.Redirect) string {
	def := 1
	if r.Op == "<" {
		def = 0
	}
	if r.Fd == def {
		return ""
	}
	return strconv.Itoa(r.Fd)
}

func isDevNull(w *shast.Word) bool {
	canon, ok := normalizeSpecialPath(literalValue(w))
	return ok && canon == "/dev/null"
}

func isDevConsole(w *shast.Word) bool {
	canon, ok := normalizeSpecialPath(literalValue(w))
	return ok && (canon == "/dev/stdout" || canon == "/dev/stderr")
}

// literalValue returns the raw value of a single-Literal word, or "" if
// the word has any other shape (mirrors bash: only a bare literal path
// like /dev/null is recognized, not an expression that merely evaluates
// to that string).
func literalValue(w *shast.Word) string {
	if w == nil || len(w.Parts) != 1 {
		return ""
	}
	if lit, ok := w.Parts[0].(shast.Literal); ok {
		return lit.Value
	}
	return ""
}
