package shast

import (
	"strings"

	"bash2pwsh/pkg/shlex"
)

// WordFromToken converts a lexer token into a Word, splitting its payload
// into quoting-tagged parts (spec.md §4.2: "Word parts are produced by
// scanning the Word token's string payload a second time").
func WordFromToken(tok shlex.Token) *Word {
	switch tok.Kind {
	case shlex.SingleQuoted:
		return &Word{Parts: []WordPart{Literal{Value: tok.Value, Quoting: Single}}}
	case shlex.DollarSingleQuoted:
		return &Word{Parts: []WordPart{Literal{Value: tok.Value, Quoting: DollarSingle}}}
	case shlex.DoubleQuoted:
		return &Word{Parts: splitExpansions(tok.Value, Double)}
	default:
		return &Word{Parts: splitWordRaw(tok.Value)}
	}
}

func isNameStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isNameByte(b byte) bool {
	return isNameStart(b) || (b >= '0' && b <= '9')
}

func isSpecialVar(b byte) bool {
	switch b {
	case '?', '#', '!', '$', '@', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	}
	return false
}

// splitExpansions scans already-unescaped text (no quote characters
// remain — it is the inside of a single pure quoted/unquoted segment)
// for $NAME, ${NAME}, $(...) and special-variable expansions, emitting
// interleaved Literal (tagged quoting) / Variable / CommandSubstitution
// parts.
func splitExpansions(s string, quoting Quoting) []WordPart {
	var parts []WordPart
	var lit strings.Builder
	flushLit := func() {
		if lit.Len() > 0 {
			parts = append(parts, Literal{Value: lit.String(), Quoting: quoting})
			lit.Reset()
		}
	}
	i := 0
	n := len(s)
	for i < n {
		c := s[i]
		if c != '$' {
			lit.WriteByte(c)
			i++
			continue
		}
		if i+1 >= n {
			lit.WriteByte('$')
			i++
			continue
		}
		next := s[i+1]
		switch {
		case next == '(':
			depth := 1
			j := i + 2
			for j < n && depth > 0 {
				switch s[j] {
				case '(':
					depth++
				case ')':
					depth--
				}
				j++
			}
			raw := s[i+2 : j]
			raw = strings.TrimSuffix(raw, ")")
			flushLit()
			parts = append(parts, CommandSubstitution{Raw: raw})
			i = j
		case next == '{':
			j := i + 2
			for j < n && s[j] != '}' {
				j++
			}
			name := s[i+2 : j]
			if j < n {
				j++
			}
			flushLit()
			parts = append(parts, Variable{Name: name, Braced: true})
			i = j
		case isNameStart(next):
			j := i + 1
			for j < n && isNameByte(s[j]) {
				j++
			}
			flushLit()
			parts = append(parts, Variable{Name: s[i+1 : j], Braced: false})
			i = j
		case isSpecialVar(next):
			flushLit()
			parts = append(parts, Variable{Name: string(next), Braced: false})
			i += 2
		default:
			lit.WriteByte('$')
			i++
		}
	}
	flushLit()
	if len(parts) == 0 {
		return []WordPart{Literal{Value: "", Quoting: quoting}}
	}
	return parts
}

// splitWordRaw scans the raw (unprocessed) payload of a Word-kind token —
// which may concatenate bare text with embedded quoted spans, e.g.
// foo'bar'"baz"$x — splitting it into parts. Quote delimiters are
// recognized here; their contents are decoded the same way the lexer
// decodes a pure quoted token.
func splitWordRaw(raw string) []WordPart {
	var parts []WordPart
	var lit strings.Builder
	flushLit := func() {
		if lit.Len() > 0 {
			parts = append(parts, Literal{Value: lit.String(), Quoting: Unquoted})
			lit.Reset()
		}
	}
	i := 0
	n := len(raw)
	for i < n {
		c := raw[i]
		switch {
		case c == '\'':
			j := i + 1
			for j < n && raw[j] != '\'' {
				j++
			}
			flushLit()
			parts = append(parts, Literal{Value: raw[i+1 : j], Quoting: Single})
			if j < n {
				j++
			}
			i = j
		case c == '"':
			j := i + 1
			for j < n && raw[j] != '"' {
				if raw[j] == '\\' && j+1 < n {
					j += 2
					continue
				}
				j++
			}
			content := unescapeDouble(raw[i+1 : minInt(j, n)])
			flushLit()
			parts = append(parts, splitExpansions(content, Double)...)
			if j < n {
				j++
			}
			i = j
		case c == '$' && i+1 < n && raw[i+1] == '\'':
			j := i + 2
			for j < n && raw[j] != '\'' {
				if raw[j] == '\\' && j+1 < n {
					j += 2
					continue
				}
				j++
			}
			decoded := unescapeDollarSingle(raw[i+2 : minInt(j, n)])
			flushLit()
			parts = append(parts, Literal{Value: decoded, Quoting: DollarSingle})
			if j < n {
				j++
			}
			i = j
		case c == '$':
			// Delegate to splitExpansions for a single expansion starting here.
			rest := raw[i:]
			consumed, got := splitOneExpansion(rest)
			flushLit()
			parts = append(parts, got)
			i += consumed
		case c == '\\' && i+1 < n:
			lit.WriteByte(raw[i+1])
			i += 2
		default:
			lit.WriteByte(c)
			i++
		}
	}
	flushLit()
	if len(parts) == 0 {
		return []WordPart{Literal{Value: "", Quoting: Unquoted}}
	}
	return parts
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// splitOneExpansion parses a single $... expansion at the start of s and
// returns how many bytes were consumed and the resulting part. Used when
// a bare (unquoted) $ expansion appears inside a concatenated Word.
func splitOneExpansion(s string) (int, WordPart) {
	if len(s) < 2 {
		return 1, Literal{Value: "$", Quoting: Unquoted}
	}
	switch {
	case s[1] == '(':
		depth := 1
		j := 2
		for j < len(s) && depth > 0 {
			switch s[j] {
			case '(':
				depth++
			case ')':
				depth--
			}
			j++
		}
		raw := s[2:j]
		raw = strings.TrimSuffix(raw, ")")
		return j, CommandSubstitution{Raw: raw}
	case s[1] == '{':
		j := 2
		for j < len(s) && s[j] != '}' {
			j++
		}
		name := s[2:j]
		if j < len(s) {
			j++
		}
		return j, Variable{Name: name, Braced: true}
	case isNameStart(s[1]):
		j := 1
		for j < len(s) && isNameByte(s[j]) {
			j++
		}
		return j, Variable{Name: s[1:j], Braced: false}
	case isSpecialVar(s[1]):
		return 2, Variable{Name: string(s[1]), Braced: false}
	default:
		return 1, Literal{Value: "$", Quoting: Unquoted}
	}
}

// unescapeDouble applies the same escape rules as shlex's double-quote
// reader: \" \\ \$ \` and line-continuation are honored, all other
// backslashes are literal.
func unescapeDouble(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '"', '\\', '$', '`':
				b.WriteByte(s[i+1])
				i += 2
				continue
			case '\n':
				i += 2
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// unescapeDollarSingle mirrors shlex's $'...' C-escape decoding.
func unescapeDollarSingle(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			i++
			continue
		}
		switch s[i+1] {
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case '\\':
			b.WriteByte('\\')
			i += 2
		case '\'':
			b.WriteByte('\'')
			i += 2
		case '"':
			b.WriteByte('"')
			i += 2
		case 'a':
			b.WriteByte('\a')
			i += 2
		case 'b':
			b.WriteByte('\b')
			i += 2
		case 'e', 'E':
			b.WriteByte(0x1b)
			i += 2
		default:
			b.WriteByte(s[i+1])
			i += 2
		}
	}
	return b.String()
}
