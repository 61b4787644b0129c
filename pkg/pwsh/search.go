package pwsh

import (
	"strings"

	"bash2pwsh/pkg/shast"
)

var grepSpecs = []FlagSpec{
	{Short: 'r'}, {Short: 'R'}, {Short: 'n'}, {Short: 'c'}, {Short: 'l'},
	{Short: 'o'}, {Short: 'q'}, {Short: 'i'}, {Short: 'v'},
	{Long: "include", TakesValue: true},
}

func registerSearch() {
	register([]string{"grep", "egrep", "fgrep"}, translateGrep)
	register([]string{"find"}, translateFind)
	register([]string{"ls"}, translateLs)
}

// translateGrep implements spec.md §4.4's grep contract: output
// formatting is mandated to match bash grep exactly because downstream
// agents parse it.
func translateGrep(sc *shast.SimpleCommand, ctx *TransformContext) string {
	parsed := ParseWordArgs(sc.Args[1:], grepSpecs)
	if len(parsed.Positional) == 0 {
		return placeholder("grep called with no pattern", ctx)
	}
	pattern := parsed.Positional[0]
	files := parsed.Positional[1:]
	recursive := parsed.Has("r") || parsed.Has("R")

	if ctx.PreferNativeTools && ctx.Tools.Rg {
		return grepNative(parsed, pattern, files, ctx)
	}
	ctx.fellBack()
	return grepFallback(parsed, pattern, files, recursive, ctx)
}

func grepNative(parsed *WordArgs, pattern *shast.Word, files []*shast.Word, ctx *TransformContext) string {
	var b strings.Builder
	b.WriteString("rg")
	if parsed.Has("n") {
		b.WriteString(" -n")
	}
	if parsed.Has("i") {
		b.WriteString(" -i")
	}
	if parsed.Has("v") {
		b.WriteString(" -v")
	}
	if parsed.Has("c") {
		b.WriteString(" -c")
	}
	if parsed.Has("l") {
		b.WriteString(" -l")
	}
	if parsed.Has("o") {
		b.WriteString(" -o")
	}
	if inc := parsed.Value("include"); inc != "" {
		b.WriteString(" --glob '" + inc + "'")
	}
	b.WriteByte(' ')
	b.WriteString(NativeArg(pattern, ctx))
	for _, f := range files {
		b.WriteByte(' ')
		b.WriteString(NativeArg(f, ctx))
	}
	out := b.String()
	if parsed.Has("q") {
		out += " | Out-Null"
	}
	return out
}

func grepFallback(parsed *WordArgs, pattern *shast.Word, files []*shast.Word, recursive bool, ctx *TransformContext) string {
	patPS := TranslateWord(pattern, ctx)
	var b strings.Builder

	switch {
	case recursive:
		dir := "."
		if len(files) > 0 {
			dir = TranslateWord(files[0], ctx)
		}
		b.WriteString("Get-ChildItem -Path " + dir + " -Recurse -File")
		if inc := parsed.Value("include"); inc != "" && IsGlobShaped(inc) {
			b.WriteString(" -Filter " + singleQuote(inc))
		}
		b.WriteString(" | Select-String -Pattern " + patPS)
	case len(files) > 1:
		b.WriteString("Select-String -Path ")
		paths := make([]string, len(files))
		for i, f := range files {
			paths[i] = TranslateWord(f, ctx)
		}
		b.WriteString(strings.Join(paths, ","))
		b.WriteString(" -Pattern " + patPS)
	case len(files) == 1:
		b.WriteString("Select-String -Path " + TranslateWord(files[0], ctx) + " -Pattern " + patPS)
	default:
		b.WriteString("Select-String -Pattern " + patPS)
	}
	if parsed.Has("i") {
		b.WriteString(" -CaseSensitive:$false")
	}
	if parsed.Has("o") {
		b.WriteString(" -AllMatches")
	}

	multi := recursive || len(files) > 1
	switch {
	case parsed.Has("q"):
		b.WriteString(" | Out-Null")
	case parsed.Has("l"):
		b.WriteString(" | ForEach-Object { $_.Path } | Get-Unique")
	case parsed.Has("c"):
		if multi {
			b.WriteString(" | Group-Object Path | ForEach-Object { \"$($_.Name):$($_.Count)\" }")
		} else {
			b.WriteString(" | Measure-Object | ForEach-Object { $_.Count }")
		}
	case parsed.Has("o"):
		b.WriteString(" | ForEach-Object { $_.Matches.Value }")
	case multi && parsed.Has("n"):
		b.WriteString(" | ForEach-Object { \"$($_.Path):$($_.LineNumber):$($_.Line)\" }")
	case multi:
		b.WriteString(" | ForEach-Object { \"$($_.Path):$($_.Line)\" }")
	case parsed.Has("n"):
		b.WriteString(" | ForEach-Object { \"$($_.LineNumber):$($_.Line)\" }")
	default:
		b.WriteString(" | ForEach-Object { $_.Line }")
	}
	return b.String()
}

var findSpecs = []FlagSpec{
	{Long: "name", TakesValue: true},
	{Long: "type", TakesValue: true},
	{Long: "delete"},
	{Long: "exec", TakesValue: true},
}

// translateFind implements spec.md §4.4's find contract: output is file
// paths, one per line, matching bash find; fallback uses Get-ChildItem
// unless -delete/-exec replace the tail pipe.
func translateFind(sc *shast.SimpleCommand, ctx *TransformContext) string {
	// find's flags are conventionally single-dash long words (-name,
	// -type); normalize them to the shared parser's --long form so
	// ParseWordArgs recognizes them.
	words := make([]*shast.Word, len(sc.Args)-1)
	copy(words, sc.Args[1:])
	parsed := parseFindArgs(words)

	root := "."
	if len(parsed.Positional) > 0 {
		root = TranslateWord(parsed.Positional[0], ctx)
	}

	if ctx.PreferNativeTools && ctx.Tools.Fd {
		var b strings.Builder
		b.WriteString("fd")
		if name := parsed.Value("name"); name != "" {
			b.WriteString(" -g " + singleQuote(stripQuotesRaw(name)))
		}
		b.WriteString(" . " + root)
		return b.String()
	}

	ctx.fellBack()
	var b strings.Builder
	b.WriteString("Get-ChildItem -Path " + root + " -Recurse")
	if name := parsed.Value("name"); name != "" {
		b.WriteString(" -Filter " + singleQuote(stripQuotesRaw(name)))
	}
	if t := parsed.Value("type"); t == "d" {
		b.WriteString(" -Directory")
	} else if t == "f" {
		b.WriteString(" -File")
	}
	switch {
	case parsed.Has("delete"):
		b.WriteString(" | Remove-Item -Force")
	case parsed.Value("exec") != "":
		b.WriteString(" | ForEach-Object { " + parsed.Value("exec") + " $_.FullName }")
	default:
		b.WriteString(" | Select-Object -ExpandProperty FullName")
	}
	return b.String()
}

// parseFindArgs handles find's traditional single-dash long options
// (-name PAT, -type d, -delete, -exec CMD) which don't fit the
// double-dash GNU convention the shared parser otherwise expects.
func parseFindArgs(words []*shast.Word) *WordArgs {
	out := &WordArgs{Flags: map[string]string{}}
	i := 0
	for i < len(words) {
		raw := words[i].Raw()
		switch raw {
		case "-name":
			if i+1 < len(words) {
				i++
				out.Flags["name"] = words[i].Raw()
			}
		case "-type":
			if i+1 < len(words) {
				i++
				out.Flags["type"] = words[i].Raw()
			}
		case "-delete":
			out.Flags["delete"] = ""
		case "-exec":
			if i+1 < len(words) {
				i++
				out.Flags["exec"] = words[i].Raw()
			}
		default:
			out.Positional = append(out.Positional, words[i])
		}
		i++
	}
	return out
}

func stripQuotesRaw(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

var lsSpecs = []FlagSpec{
	{Short: 'l'}, {Short: 'a'}, {Short: 'A'}, {Short: 'R'},
	{Short: 't'}, {Short: 'S'}, {Short: 'r'},
}

// translateLs implements spec.md §4.4's ls contract. A glob-shaped bare
// operand (e.g. "*.go", "**/*.go") is recognized via IsGlobShaped rather
// than passed through as a literal -Path, since Get-ChildItem's -Path
// wildcard matching doesn't walk "**" the way a shell glob does.
func translateLs(sc *shast.SimpleCommand, ctx *TransformContext) string {
	parsed := ParseWordArgs(sc.Args[1:], lsSpecs)
	path := "."
	filter := ""
	recurseForGlob := false
	if len(parsed.Positional) > 0 {
		raw := literalValue(parsed.Positional[0])
		switch {
		case raw != "" && IsGlobShaped(raw) && IsRecursiveGlob(raw):
			filter = raw[strings.LastIndex(raw, "/")+1:]
			recurseForGlob = true
		case raw != "" && IsGlobShaped(raw) && !strings.ContainsAny(raw, "/\\"):
			filter = raw
		default:
			path = TranslateWord(parsed.Positional[0], ctx)
		}
	}

	var b strings.Builder
	b.WriteString("Get-ChildItem -Path " + path)
	if parsed.Has("a") || parsed.Has("A") {
		b.WriteString(" -Force")
	}
	if parsed.Has("R") || recurseForGlob {
		b.WriteString(" -Recurse")
	}
	if filter != "" {
		b.WriteString(" -Filter " + singleQuote(filter))
	}

	switch {
	case parsed.Has("t"):
		b.WriteString(" | Sort-Object LastWriteTime")
	case parsed.Has("S"):
		b.WriteString(" | Sort-Object Length")
	}
	if (parsed.Has("t") || parsed.Has("S")) && !parsed.Has("r") {
		b.WriteString(" -Descending")
	}

	if parsed.Has("l") {
		b.WriteString(" | ForEach-Object { \"$($_.Mode) $($_.Length) $($_.LastWriteTime) $($_.Name)\" }")
	} else {
		b.WriteString(" | Select-Object -ExpandProperty Name")
	}
	return b.String()
}
