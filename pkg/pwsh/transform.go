package pwsh

import (
	"strings"

	"bash2pwsh/pkg/shast"
)

// TranslateScript is the transformer's entry point: spec.md §4.3's
// translateScript(script, ctx) → string. Per-statement outputs are joined
// with "; ", preserving left-to-right source order (spec.md §5's
// ordering guarantee).
func TranslateScript(script *shast.Script, ctx *TransformContext) string {
	parts := make([]string, 0, len(script.Statements))
	for _, stmt := range script.Statements {
		parts = append(parts, translateStatement(stmt, ctx))
	}
	return strings.Join(parts, "; ")
}

func translateStatement(stmt shast.Statement, ctx *TransformContext) string {
	switch s := stmt.(type) {
	case *shast.Pipeline:
		return translatePipeline(s, ctx)
	case *shast.LogicalExpr:
		return translateLogicalExpr(s, ctx)
	case *shast.AssignmentStatement:
		return translateAssignmentStatement(s, ctx)
	default:
		return ""
	}
}

func translateLogicalExpr(le *shast.LogicalExpr, ctx *TransformContext) string {
	left := translateStatement(le.Left, ctx)
	right := translateStatement(le.Right, ctx)
	switch le.Op {
	case "&&":
		return left + "; if ($?) { " + right + " }"
	case "||":
		return left + "; if (-not $?) { " + right + " }"
	default: // ";"
		return left + "; " + right
	}
}

func translateAssignmentStatement(as *shast.AssignmentStatement, ctx *TransformContext) string {
	parts := make([]string, 0, len(as.Assignments))
	for _, a := range as.Assignments {
		parts = append(parts, translateAssignment(a, ctx))
	}
	return strings.Join(parts, "; ")
}

// translateAssignment renders NAME=value as an $env: assignment. A bare
// word on the right of = would run as a command in PowerShell, so a value
// that word quoting leaves bare is single-quoted.
func translateAssignment(a shast.Assignment, ctx *TransformContext) string {
	val := TranslateWord(a.Value, ctx)
	if safeUnquoted.MatchString(val) {
		val = singleQuote(val)
	}
	return "$env:" + a.Name + " = " + val
}

// translatePipeline implements spec.md §4.3's Pipeline lowering: each
// command translated, joined with " | "; negation wraps in "!( … )";
// a trailing background "&" wraps the whole pipeline in Start-Job.
func translatePipeline(p *shast.Pipeline, ctx *TransformContext) string {
	segments := make([]string, 0, len(p.Commands))
	for _, cmd := range p.Commands {
		segments = append(segments, translateCommand(cmd, ctx))
	}
	out := strings.Join(segments, " | ")
	if p.Negated {
		out = "!( " + out + " )"
	}
	if p.Background {
		return "Start-Job -ScriptBlock { " + out + " }"
	}
	return out
}

func translateCommand(cmd shast.Command, ctx *TransformContext) string {
	switch c := cmd.(type) {
	case *shast.SimpleCommand:
		return translateSimpleCommand(c, ctx)
	case *shast.Subshell:
		return translateSubshell(c, ctx)
	default:
		return ""
	}
}

func translateSubshell(s *shast.Subshell, ctx *TransformContext) string {
	body := TranslateScript(s.Body, ctx)
	out := "& { " + body + " }"
	return out + translateRedirects(s.Redirects, ctx)
}

// translateSimpleCommand prepends inline env assignments, dispatches to
// the registered translator (or the unknown-command pass-through) for
// the command body, then appends lowered redirects — the transformer
// owns the assignment/redirect wrapping around whatever the translator
// returns, per spec.md §4.4.
func translateSimpleCommand(sc *shast.SimpleCommand, ctx *TransformContext) string {
	var b strings.Builder

	for _, a := range sc.Assignments {
		b.WriteString(translateAssignment(a, ctx))
		b.WriteString("; ")
	}

	prefix := redirectPrefix(sc.Redirects, ctx)
	b.WriteString(prefix)

	if sc.Name == nil {
		// Bare assignment-only simple command with redirects but no
		// command word; nothing further to translate.
		return strings.TrimRight(strings.TrimSuffix(b.String(), "; "), " ")
	}

	b.WriteString(translateCommandBody(sc, ctx))
	b.WriteString(translateRedirects(sc.Redirects, ctx))
	return b.String()
}

func translateCommandBody(sc *shast.SimpleCommand, ctx *TransformContext) string {
	name := literalCommandName(sc.Name)
	if tr, ok := registry[name]; ok {
		return tr(sc, ctx)
	}
	return passThrough(sc, ctx)
}

// literalCommandName extracts the command name as a plain string when
// possible (the overwhelmingly common case: an unquoted literal word).
// Any other shape yields "", which matches no registry entry, so dynamic
// command names go through the pass-through path.
func literalCommandName(w *shast.Word) string {
	if w == nil {
		return ""
	}
	if len(w.Parts) == 1 {
		if lit, ok := w.Parts[0].(shast.Literal); ok {
			return lit.Value
		}
	}
	return ""
}

// passThrough is the unknown-command pass-through default: spec.md §9
// calls this load-bearing, since agents emit git/npm/bun/tsc/python and
// countless other tools this registry will never enumerate. The name and
// every argument are word-translated and space-joined verbatim.
func passThrough(sc *shast.SimpleCommand, ctx *TransformContext) string {
	words := make([]string, 0, len(sc.Args))
	for _, a := range sc.Args {
		words = append(words, TranslateWord(a, ctx))
	}
	return strings.Join(words, " ")
}
