package pwsh

import (
	"regexp"
	"strings"

	"bash2pwsh/pkg/shast"
)

// safeUnquoted matches bash words that need no PowerShell quoting at all.
var safeUnquoted = regexp.MustCompile(`^[A-Za-z0-9_.\/:\-*?=@%]+$`)

// TranslateWord implements spec.md §4.3's word-quoting algorithm: the
// single most bug-prone subsystem in the transformer, hence its own file.
func TranslateWord(w *shast.Word, ctx *TransformContext) string {
	if w == nil || len(w.Parts) == 0 {
		return "''"
	}
	if rewritten, ok := translatePathShortcut(w); ok {
		return rewritten
	}
	if len(w.Parts) == 1 {
		return translatePart(w.Parts[0], ctx)
	}
	return translateMultiPart(w.Parts, ctx)
}

func translatePart(p shast.WordPart, ctx *TransformContext) string {
	switch v := p.(type) {
	case shast.Literal:
		return translateLiteral(v)
	case shast.Variable:
		return translateVariable(v)
	case shast.CommandSubstitution:
		return translateCommandSubstitution(v, ctx)
	case shast.Glob:
		return v.Pattern
	default:
		return "''"
	}
}

func translateLiteral(lit shast.Literal) string {
	switch lit.Quoting {
	case shast.Single:
		return singleQuote(lit.Value)
	case shast.Double:
		// A lone Literal part (no Variable/CommandSubstitution siblings,
		// since those are split into their own parts upstream) carries no
		// interpolation obligation, so single-quoting it is always safe
		// and matches bash's "error"/'error' being output-equivalent.
		// Only fall back to backtick-escaped double-quoting when the text
		// itself contains a literal backtick or dollar sign PowerShell
		// could otherwise misparse inside a wider double-quoted context.
		if strings.ContainsAny(lit.Value, "`$") {
			return doubleQuote(lit.Value)
		}
		return singleQuote(lit.Value)
	case shast.DollarSingle:
		if hasControlBytes(lit.Value) {
			return doubleQuoteWithControlEscapes(lit.Value)
		}
		return singleQuote(lit.Value)
	default: // Unquoted
		if lit.Value == "" {
			return "''"
		}
		if lit.Value == "$null" || lit.Value == "$true" || lit.Value == "$false" {
			return lit.Value
		}
		if safeUnquoted.MatchString(lit.Value) {
			return lit.Value
		}
		return singleQuote(lit.Value)
	}
}

func singleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// doubleQuote escapes the three characters PowerShell double-quoted
// strings treat specially, per spec.md §4.3.
func doubleQuote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '`', '$', '"':
			b.WriteByte('`')
			b.WriteByte(s[i])
		default:
			b.WriteByte(s[i])
		}
	}
	b.WriteByte('"')
	return b.String()
}

func hasControlBytes(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] == 0x7f {
			return true
		}
	}
	return false
}

// doubleQuoteWithControlEscapes renders a $'...'-sourced literal that
// contains control bytes as a PowerShell double-quoted string using
// backtick escapes, per spec.md §4.3 / §8's quoting round-trip property.
func doubleQuoteWithControlEscapes(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\n':
			b.WriteString("`n")
		case '\r':
			b.WriteString("`r")
		case '\t':
			b.WriteString("`t")
		case 0x00:
			b.WriteString("`0")
		case 0x07:
			b.WriteString("`a")
		case '\b':
			b.WriteString("`b")
		case 0x1b:
			b.WriteString("`e")
		case '`', '$', '"':
			b.WriteByte('`')
			b.WriteByte(c)
		default:
			if c < 0x20 || c == 0x7f {
				b.WriteString("`0")
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// NativeArg renders a word as an argument to a native executable (rg.exe,
// fd.exe, curl.exe): unlike a cmdlet parameter, there is no benefit to the
// "safe unquoted" shortcut spec.md's rule 3 allows for Unquoted literals,
// since PowerShell still globs/splits bare tokens before exec invocation.
// Native-tool translators quote every literal argument; variables and
// command substitutions are still emitted bare so they still expand.
func NativeArg(w *shast.Word, ctx *TransformContext) string {
	if w != nil && len(w.Parts) == 1 {
		if lit, ok := w.Parts[0].(shast.Literal); ok {
			switch lit.Quoting {
			case shast.DollarSingle:
				if hasControlBytes(lit.Value) {
					return doubleQuoteWithControlEscapes(lit.Value)
				}
			}
			return singleQuote(lit.Value)
		}
	}
	return TranslateWord(w, ctx)
}

// translateMultiPart handles a Word with more than one part: spec.md §4.3
// rule 4. A run of Literal/Variable/CommandSubstitution parts collapses
// into one PowerShell double-quoted string; any Glob part forces the
// fallback concatenation-expression rendering.
func translateMultiPart(parts []shast.WordPart, ctx *TransformContext) string {
	for _, p := range parts {
		if _, ok := p.(shast.Glob); ok {
			return concatRendering(parts, ctx)
		}
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, p := range parts {
		switch v := p.(type) {
		case shast.Literal:
			b.WriteString(escapeForInterpolation(v.Value))
		case shast.Variable:
			b.WriteString(variableInterpolationForm(v))
		case shast.CommandSubstitution:
			b.WriteString(translateCommandSubstitution(v, ctx))
		}
	}
	b.WriteByte('"')
	return b.String()
}

func escapeForInterpolation(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '`', '$', '"':
			b.WriteByte('`')
			b.WriteByte(s[i])
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// variableInterpolationForm renders a variable mapping suitable for
// embedding inside a surrounding double-quoted string, parenthesizing
// forms that are not bare $name references.
func variableInterpolationForm(v shast.Variable) string {
	mapped := translateVariable(v)
	if strings.HasPrefix(mapped, "$") && !strings.ContainsAny(mapped, "(){} ") {
		return mapped
	}
	return "$(" + strings.TrimPrefix(mapped, "$") + ")"
}

// concatRendering is the fallback used when a multi-part word cannot be
// expressed as one double-quoted string (e.g. an embedded Glob).
func concatRendering(parts []shast.WordPart, ctx *TransformContext) string {
	rendered := make([]string, len(parts))
	for i, p := range parts {
		rendered[i] = translatePart(p, ctx)
	}
	return "(" + strings.Join(rendered, " + ") + ")"
}
