package pwsh

import (
	"strings"

	"bash2pwsh/pkg/shast"
)

// FlagSpec describes one recognized flag for the shared GNU-style parser,
// per spec.md §4.4 "Shared flag parser".
type FlagSpec struct {
	Short      byte   // 0 if no short form
	Long       string // "" if no long form
	TakesValue bool
}

// ParsedArgs is the result of running ParseArgs: recognized flags keyed by
// their canonical name (the Long name, or the short letter as a
// single-byte string if there is no Long form), plus the positional
// (non-flag) operands in order.
type ParsedArgs struct {
	Flags      map[string]string // value "" + present==true for boolean flags
	Positional []string
}

func (a *ParsedArgs) Has(name string) bool {
	_, ok := a.Flags[name]
	return ok
}

func (a *ParsedArgs) Value(name string) string {
	return a.Flags[name]
}

// ParseArgs implements spec.md §4.4's shared GNU-style parser: long flags
// (`--long`, `--long=value`, `--long value`), short flags (`-x`, combined
// `-xyz`, `-xVALUE` when x takes a value), and `--` as end-of-flags.
// Unknown long flags are captured under their raw name as booleans;
// unknown short letters are stored as boolean true under the letter.
func ParseArgs(args []string, specs []FlagSpec) *ParsedArgs {
	byLong := make(map[string]FlagSpec, len(specs))
	byShort := make(map[byte]FlagSpec, len(specs))
	for _, s := range specs {
		if s.Long != "" {
			byLong[s.Long] = s
		}
		if s.Short != 0 {
			byShort[s.Short] = s
		}
	}

	out := &ParsedArgs{Flags: map[string]string{}}
	endOfFlags := false

	for i := 0; i < len(args); i++ {
		a := args[i]
		if endOfFlags || a == "" || a[0] != '-' || a == "-" {
			out.Positional = append(out.Positional, a)
			continue
		}
		if a == "--" {
			endOfFlags = true
			continue
		}
		if strings.HasPrefix(a, "--") {
			body := a[2:]
			if eq := strings.IndexByte(body, '='); eq >= 0 {
				name, val := body[:eq], body[eq+1:]
				out.Flags[name] = val
				continue
			}
			if spec, ok := byLong[body]; ok && spec.TakesValue {
				if i+1 < len(args) {
					i++
					out.Flags[body] = args[i]
				} else {
					out.Flags[body] = ""
				}
				continue
			}
			out.Flags[body] = ""
			continue
		}
		// Short flag(s): -x, -xyz, -xVALUE.
		body := a[1:]
		j := 0
		for j < len(body) {
			letter := body[j]
			name := string(letter)
			spec, known := byShort[letter]
			if known && spec.TakesValue {
				rest := body[j+1:]
				if rest != "" {
					out.Flags[name] = rest
				} else if i+1 < len(args) {
					i++
					out.Flags[name] = args[i]
				} else {
					out.Flags[name] = ""
				}
				j = len(body)
				continue
			}
			out.Flags[name] = ""
			j++
		}
	}
	return out
}

// WordArgs mirrors ParseArgs but runs flag classification against each
// word's raw (unexpanded) textual form while keeping the original *Word
// for every positional operand, so translators can still quote/translate
// positionals through the normal Word-quoting path instead of a raw
// string.
type WordArgs struct {
	Flags      map[string]string
	Positional []*shast.Word
}

func (a *WordArgs) Has(name string) bool {
	_, ok := a.Flags[name]
	return ok
}

func (a *WordArgs) Value(name string) string {
	return a.Flags[name]
}

// ParseWordArgs runs the same GNU-style classification as ParseArgs but
// over a []*shast.Word, using each word's Raw() form to decide whether it
// is a flag or a positional operand.
func ParseWordArgs(words []*shast.Word, specs []FlagSpec) *WordArgs {
	raws := make([]string, len(words))
	for i, w := range words {
		raws[i] = w.Raw()
	}
	parsed := ParseArgs(raws, specs)

	out := &WordArgs{Flags: parsed.Flags}
	byLong := make(map[string]FlagSpec, len(specs))
	byShort := make(map[byte]FlagSpec, len(specs))
	for _, s := range specs {
		if s.Long != "" {
			byLong[s.Long] = s
		}
		if s.Short != 0 {
			byShort[s.Short] = s
		}
	}
	endOfFlags := false
	for i := 0; i < len(raws); i++ {
		a := raws[i]
		if endOfFlags || a == "" || a[0] != '-' || a == "-" {
			out.Positional = append(out.Positional, words[i])
			continue
		}
		if a == "--" {
			endOfFlags = true
			continue
		}
		if strings.HasPrefix(a, "--") {
			body := a[2:]
			if eq := strings.IndexByte(body, '='); eq >= 0 {
				continue
			}
			if spec, ok := byLong[body]; ok && spec.TakesValue {
				if i+1 < len(raws) {
					i++
				}
				continue
			}
			continue
		}
		body := a[1:]
		j := 0
		for j < len(body) {
			letter := body[j]
			spec, known := byShort[letter]
			if known && spec.TakesValue {
				rest := body[j+1:]
				if rest == "" && i+1 < len(raws) {
					i++
				}
				j = len(body)
				continue
			}
			j++
		}
	}
	return out
}
