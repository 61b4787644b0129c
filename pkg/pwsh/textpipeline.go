package pwsh

import (
	"strings"

	"bash2pwsh/pkg/shast"
)

func registerTextPipeline() {
	register([]string{"cat"}, translateCat)
	register([]string{"head"}, translateHead)
	register([]string{"tail"}, translateTail)
	register([]string{"wc"}, translateWc)
	register([]string{"sort"}, translateSort)
	register([]string{"uniq"}, translateUniq)
	register([]string{"cut"}, translateCut)
	register([]string{"tr"}, translateTr)
	register([]string{"tee"}, translateTee)
	register([]string{"diff"}, translateDiff)
	register([]string{"xargs"}, translateXargs)
}

// translateCat: with files, Get-Content joins them; with no arguments it
// is a pure pipe-segment (pass-through), per spec.md §4.4's "when no file
// is given, emit the pure pipe-segment form so it composes".
func translateCat(sc *shast.SimpleCommand, ctx *TransformContext) string {
	words := argWords(sc, ctx)
	if len(words) == 0 {
		return "$input"
	}
	return "Get-Content " + strings.Join(words, ",")
}

var headTailSpecs = []FlagSpec{{Short: 'n', TakesValue: true}}

func translateHead(sc *shast.SimpleCommand, ctx *TransformContext) string {
	return headOrTail(sc, ctx, "-First", 10)
}

func translateTail(sc *shast.SimpleCommand, ctx *TransformContext) string {
	return headOrTail(sc, ctx, "-Last", 10)
}

func headOrTail(sc *shast.SimpleCommand, ctx *TransformContext, selector string, def int) string {
	parsed := ParseWordArgs(sc.Args[1:], headTailSpecs)
	count := parsed.Value("n")
	if count == "" {
		count = intToStr(def)
	}
	var prefix string
	if len(parsed.Positional) > 0 {
		prefix = "Get-Content " + TranslateWord(parsed.Positional[0], ctx) + " | "
	}
	return prefix + "Select-Object " + selector + " " + count
}

func intToStr(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}

var wcSpecs = []FlagSpec{{Short: 'l'}, {Short: 'w'}, {Short: 'c'}}

// translateWc maps to Measure-Object; -l/-w/-c select which count field
// the pipeline reduces to, matching the composed form the `cat | grep |
// wc -l` scenario requires (`Measure-Object -Line | ForEach-Object {
// $_.Lines }`, no intermediate `(expr).Prop`).
func translateWc(sc *shast.SimpleCommand, ctx *TransformContext) string {
	parsed := ParseWordArgs(sc.Args[1:], wcSpecs)
	var prefix string
	if len(parsed.Positional) > 0 {
		prefix = "Get-Content " + TranslateWord(parsed.Positional[0], ctx) + " | "
	}
	switch {
	case parsed.Has("l"):
		return prefix + "Measure-Object -Line | ForEach-Object { $_.Lines }"
	case parsed.Has("w"):
		return prefix + "Measure-Object -Word | ForEach-Object { $_.Words }"
	case parsed.Has("c"):
		return prefix + "Measure-Object -Character | ForEach-Object { $_.Characters }"
	default:
		return prefix + "Measure-Object -Line -Word -Character"
	}
}

var sortSpecs = []FlagSpec{{Short: 'r'}, {Short: 'n'}, {Short: 'u'}}

func translateSort(sc *shast.SimpleCommand, ctx *TransformContext) string {
	parsed := ParseWordArgs(sc.Args[1:], sortSpecs)
	var prefix string
	if len(parsed.Positional) > 0 {
		prefix = "Get-Content " + TranslateWord(parsed.Positional[0], ctx) + " | "
	}
	out := prefix + "Sort-Object"
	if parsed.Has("u") {
		out += " -Unique"
	}
	if parsed.Has("r") {
		out += " -Descending"
	}
	return out
}

func translateUniq(sc *shast.SimpleCommand, ctx *TransformContext) string {
	words := argWords(sc, ctx)
	var prefix string
	if len(words) > 0 {
		prefix = "Get-Content " + strings.Join(words, ",") + " | "
	}
	return prefix + "Get-Unique"
}

var cutSpecs = []FlagSpec{{Short: 'd', TakesValue: true}, {Short: 'f', TakesValue: true}}

// translateCut implements the delimiter-split-with-index form.
func translateCut(sc *shast.SimpleCommand, ctx *TransformContext) string {
	parsed := ParseWordArgs(sc.Args[1:], cutSpecs)
	delim := parsed.Value("d")
	if delim == "" {
		delim = "\t"
	}
	field := parsed.Value("f")
	if field == "" {
		field = "1"
	}
	return "ForEach-Object { ($_ -split " + singleQuote(regexQuoteDelim(delim)) + ")[" + field + " - 1] }"
}

func regexQuoteDelim(d string) string {
	special := "\\.^$|?*+()[]{}"
	var b strings.Builder
	for i := 0; i < len(d); i++ {
		if strings.IndexByte(special, d[i]) >= 0 {
			b.WriteByte('\\')
		}
		b.WriteByte(d[i])
	}
	return b.String()
}

var trSpecs = []FlagSpec{{Short: 'd'}, {Short: 's'}}

// translateTr maps tr onto -replace with a regex character class. With -d
// every character of the set is deleted. With two sets, every character
// of the first set is replaced by the whole second operand; characters
// are not paired position by position.
func translateTr(sc *shast.SimpleCommand, ctx *TransformContext) string {
	parsed := ParseWordArgs(sc.Args[1:], trSpecs)
	if parsed.Has("d") && len(parsed.Positional) >= 1 {
		set := stripQuotesRaw(parsed.Positional[0].Raw())
		return "ForEach-Object { $_ -replace '[" + regexQuoteDelim(set) + "]', '' }"
	}
	if len(parsed.Positional) >= 2 {
		from := stripQuotesRaw(parsed.Positional[0].Raw())
		to := stripQuotesRaw(parsed.Positional[1].Raw())
		return "ForEach-Object { $_ -replace '[" + regexQuoteDelim(from) + "]', '" + to + "' }"
	}
	return placeholder("tr: unsupported argument shape", ctx)
}

func translateTee(sc *shast.SimpleCommand, ctx *TransformContext) string {
	words := argWords(sc, ctx)
	if len(words) == 0 {
		return "Tee-Object"
	}
	return "Tee-Object -FilePath " + words[0]
}

func translateDiff(sc *shast.SimpleCommand, ctx *TransformContext) string {
	words := argWords(sc, ctx)
	if len(words) < 2 {
		return placeholder("diff requires two operands", ctx)
	}
	return "Compare-Object (Get-Content " + words[0] + ") (Get-Content " + words[1] + ")"
}

func translateXargs(sc *shast.SimpleCommand, ctx *TransformContext) string {
	words := argWords(sc, ctx)
	if len(words) == 0 {
		return "ForEach-Object { $_ }"
	}
	return "ForEach-Object { & " + words[0] + " " + strings.Join(words[1:], " ") + " $_ }"
}
