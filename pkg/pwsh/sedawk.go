package pwsh

import (
	"regexp"
	"strconv"
	"strings"

	"bash2pwsh/pkg/shast"
)

func registerSedAwk() {
	register([]string{"sed"}, translateSed)
	register([]string{"awk"}, translateAwk)
}

var sedSubstRe = regexp.MustCompile(`^s(.)(.*)$`)
var sedDeleteLineRe = regexp.MustCompile(`^(\d+)d$`)
var sedPrintLineRe = regexp.MustCompile(`^(\d+)p$`)
var sedPrintRangeRe = regexp.MustCompile(`^(\d+),(\d+)p$`)

var sedSpecs = []FlagSpec{
	{Short: 'i', TakesValue: false},
	{Short: 'e', TakesValue: true},
	{Short: 'n'},
}

// translateSed implements spec.md §4.4's restricted sed contract:
// s/PAT/REPL/FLAGS (with alternate delimiters), /PAT/d, Nd, /PAT/p,
// N,Mp, Np; backrefs \1..\9 → $1..$9, & → $0; -i with optional backup
// suffix rewrites in place; -e accumulates expressions joined with |.
func translateSed(sc *shast.SimpleCommand, ctx *TransformContext) string {
	raws := rawArgs(sc)
	var exprs []string
	var inPlace bool
	var file string
	i := 0
	for i < len(raws) {
		a := raws[i]
		switch {
		case a == "-n":
			i++
		case a == "-i" || strings.HasPrefix(a, "-i"):
			inPlace = true
			i++
		case a == "-e":
			if i+1 < len(raws) {
				exprs = append(exprs, raws[i+1])
				i += 2
			} else {
				i++
			}
		default:
			if len(exprs) == 0 {
				exprs = append(exprs, stripQuotesRaw(a))
			} else {
				file = stripQuotesRaw(a)
			}
			i++
		}
	}
	if len(exprs) == 0 {
		return placeholder("sed called with no expression", ctx)
	}

	rendered := make([]string, 0, len(exprs))
	for _, e := range exprs {
		rendered = append(rendered, translateSedExpr(e, ctx))
	}
	pipeline := strings.Join(rendered, " | ")

	if inPlace && file != "" {
		return "Copy-Item " + singleQuote(file) + " " + singleQuote(file+".bak") + "; (Get-Content " + singleQuote(file) + ") | " + pipeline + " | Set-Content " + singleQuote(file)
	}
	if file != "" {
		return "Get-Content " + singleQuote(file) + " | " + pipeline
	}
	return pipeline
}

var sedBackrefRe = regexp.MustCompile(`\\([1-9&])`)

func translateSedExpr(e string, ctx *TransformContext) string {
	if m := sedSubstRe.FindStringSubmatch(e); m != nil {
		delim := m[1]
		rest := m[2]
		parts := strings.SplitN(rest, delim, 3)
		if len(parts) < 2 {
			return placeholder("sed: malformed s"+delim+"..."+delim+" expression", ctx)
		}
		pat, repl := parts[0], parts[1]
		flags := ""
		if len(parts) == 3 {
			flags = parts[2]
		}
		repl = sedBackrefRe.ReplaceAllStringFunc(repl, func(m string) string {
			if m == `\&` {
				return "$0"
			}
			return "$" + m[1:]
		})
		if strings.Contains(flags, "g") {
			return "ForEach-Object { $_ -replace '" + escapeForSingle(pat) + "', '" + escapeForSingle(repl) + "' }"
		}
		// sed without /g replaces only the first match per line;
		// -replace always replaces every match, so use the [regex]
		// instance Replace with an explicit replacement count of 1.
		return "ForEach-Object { ([regex]'" + escapeForSingle(pat) + "').Replace($_, '" + escapeForSingle(repl) + "', 1) }"
	}
	if m := sedDeleteLineRe.FindStringSubmatch(e); m != nil {
		idx := strconv.Itoa(mustAtoi(m[1]) - 1)
		return "ForEach-Object { $i = 0 } { if ($i -ne " + idx + ") { $_ }; $i++ }"
	}
	if strings.HasSuffix(e, "d") && strings.HasPrefix(e, "/") {
		pat := e[1 : strings.LastIndex(e, "/")]
		return "Where-Object { $_ -notmatch '" + escapeForSingle(pat) + "' }"
	}
	if m := sedPrintRangeRe.FindStringSubmatch(e); m != nil {
		from, to := mustAtoi(m[1])-1, mustAtoi(m[2])-1
		return "Select-Object -Index (" + strconv.Itoa(from) + ".." + strconv.Itoa(to) + ")"
	}
	if m := sedPrintLineRe.FindStringSubmatch(e); m != nil {
		return "Select-Object -Index " + strconv.Itoa(mustAtoi(m[1])-1)
	}
	if strings.HasSuffix(e, "p") && strings.HasPrefix(e, "/") {
		pat := e[1 : strings.LastIndex(e, "/")]
		return "Where-Object { $_ -match '" + escapeForSingle(pat) + "' }"
	}
	return placeholder("sed: unrecognized expression "+e, ctx)
}

func mustAtoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func escapeForSingle(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

var awkPrintFieldRe = regexp.MustCompile(`^\{\s*print\s+\$(\d+)\s*\}$`)
var awkPrintTwoFieldsRe = regexp.MustCompile(`^\{\s*print\s+\$(\d+)\s*,\s*\$(\d+)\s*\}$`)
var awkNRRe = regexp.MustCompile(`^NR==(\d+)\s*\{\s*print\s*\}$`)
var awkPatternRe = regexp.MustCompile(`^/(.*)/\s*\{\s*print\s*\}$`)

// translateAwk recognizes a restricted subset per spec.md §4.4;
// unrecognized programs emit a commented placeholder with a warning,
// never a silent wrong translation.
func translateAwk(sc *shast.SimpleCommand, ctx *TransformContext) string {
	words := ParseWordArgs(sc.Args[1:], nil)
	if len(words.Positional) == 0 {
		return placeholder("awk called with no program", ctx)
	}
	prog := strings.TrimSpace(stripQuotesRaw(words.Positional[0].Raw()))

	switch {
	case prog == "{print}" || prog == "{ print }" || prog == "{print $0}":
		return "ForEach-Object { $_ }"
	case prog == "{print NF}":
		return "ForEach-Object { ($_ -split '\\s+').Count }"
	default:
	}
	if m := awkPrintFieldRe.FindStringSubmatch(prog); m != nil {
		return "ForEach-Object { ($_ -split '\\s+')[" + strconv.Itoa(mustAtoi(m[1])-1) + "] }"
	}
	if m := awkPrintTwoFieldsRe.FindStringSubmatch(prog); m != nil {
		return "ForEach-Object { $f = $_ -split '\\s+'; \"$($f[" + strconv.Itoa(mustAtoi(m[1])-1) + "]) $($f[" + strconv.Itoa(mustAtoi(m[2])-1) + "])\" }"
	}
	if m := awkNRRe.FindStringSubmatch(prog); m != nil {
		return "Select-Object -Index " + strconv.Itoa(mustAtoi(m[1])-1)
	}
	if m := awkPatternRe.FindStringSubmatch(prog); m != nil {
		return "Where-Object { $_ -match '" + escapeForSingle(m[1]) + "' }"
	}
	ctx.warn("awk program not in the recognized subset: " + prog)
	return "# unsupported: awk '" + prog + "'"
}
