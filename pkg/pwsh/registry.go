package pwsh

import "bash2pwsh/pkg/shast"

// Translator maps one SimpleCommand (its name already matched) to its
// PowerShell rendering. It may append warnings to ctx and mark
// ctx.fellBack() when it takes the non-native path; the caller
// (translateSimpleCommand) wraps the result with inline assignments and
// lowered redirects.
type Translator func(sc *shast.SimpleCommand, ctx *TransformContext) string

// registry is the name-keyed map spec.md §4.4 calls for. Built once at
// package init from each command family's registration function.
var registry = map[string]Translator{}

func register(names []string, tr Translator) {
	for _, n := range names {
		registry[n] = tr
	}
}

func init() {
	registerSearch()
	registerTextPipeline()
	registerSedAwk()
	registerPredicate()
	registerFilesystem()
	registerProcEnv()
	registerNetwork()
}

// argWords returns the translated positional arguments of sc, excluding
// the command name itself (sc.Args[0]).
func argWords(sc *shast.SimpleCommand, ctx *TransformContext) []string {
	out := make([]string, 0, len(sc.Args))
	for _, a := range sc.Args[1:] {
		out = append(out, TranslateWord(a, ctx))
	}
	return out
}

// rawArgs returns the literal string value of each argument word after
// sc.Args[0] when it is a plain literal (used by flag-spec parsing, which
// operates on the source text rather than the translated PowerShell
// text). Non-literal words are rendered via Raw() as a best effort.
func rawArgs(sc *shast.SimpleCommand) []string {
	out := make([]string, 0, len(sc.Args))
	for _, a := range sc.Args[1:] {
		out = append(out, a.Raw())
	}
	return out
}

func placeholder(reason string, ctx *TransformContext) string {
	ctx.warn(reason)
	return "# unsupported: " + reason
}
