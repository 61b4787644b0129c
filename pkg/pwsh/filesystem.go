package pwsh

import (
	"strings"

	"bash2pwsh/pkg/shast"
)

func registerFilesystem() {
	register([]string{"rm"}, translateRm)
	register([]string{"mkdir"}, translateMkdir)
	register([]string{"cp"}, translateCp)
	register([]string{"mv"}, translateMv)
	register([]string{"touch"}, translateTouch)
	register([]string{"ln"}, translateLn)
	register([]string{"chmod"}, translateChmod)
	register([]string{"basename"}, translateBasename)
	register([]string{"dirname"}, translateDirname)
	register([]string{"realpath", "readlink"}, translateRealpath)
	register([]string{"zip"}, translateZip)
	register([]string{"unzip"}, translateUnzip)
}

var rmSpecs = []FlagSpec{{Short: 'r'}, {Short: 'R'}, {Short: 'f'}}

// translateRm implements spec.md §8 scenario 6's `rm -rf dist` contract.
func translateRm(sc *shast.SimpleCommand, ctx *TransformContext) string {
	parsed := ParseWordArgs(sc.Args[1:], rmSpecs)
	if len(parsed.Positional) == 0 {
		return placeholder("rm called with no operand", ctx)
	}
	var b strings.Builder
	b.WriteString("Remove-Item -Path ")
	b.WriteString(pathList(parsed.Positional, ctx))
	if parsed.Has("r") || parsed.Has("R") {
		b.WriteString(" -Recurse")
	}
	if parsed.Has("f") {
		b.WriteString(" -Force")
	}
	return b.String()
}

var mkdirSpecs = []FlagSpec{{Short: 'p'}}

// translateMkdir implements spec.md §8 scenario 6's `mkdir -p build`
// contract: New-Item -ItemType Directory -Force -Path 'build'.
func translateMkdir(sc *shast.SimpleCommand, ctx *TransformContext) string {
	parsed := ParseWordArgs(sc.Args[1:], mkdirSpecs)
	if len(parsed.Positional) == 0 {
		return placeholder("mkdir called with no operand", ctx)
	}
	out := "New-Item -ItemType Directory"
	if parsed.Has("p") {
		out += " -Force"
	}
	return out + " -Path " + pathList(parsed.Positional, ctx)
}

var cpSpecs = []FlagSpec{{Short: 'r'}, {Short: 'R'}}

func translateCp(sc *shast.SimpleCommand, ctx *TransformContext) string {
	parsed := ParseWordArgs(sc.Args[1:], cpSpecs)
	if len(parsed.Positional) < 2 {
		return placeholder("cp requires source and destination", ctx)
	}
	n := len(parsed.Positional)
	dst := parsed.Positional[n-1]
	srcs := parsed.Positional[:n-1]
	out := "Copy-Item -Path " + pathList(srcs, ctx) + " -Destination " + NativeArg(dst, ctx)
	if parsed.Has("r") || parsed.Has("R") {
		out += " -Recurse"
	}
	return out
}

func translateMv(sc *shast.SimpleCommand, ctx *TransformContext) string {
	words := ParseWordArgs(sc.Args[1:], nil)
	if len(words.Positional) < 2 {
		return placeholder("mv requires source and destination", ctx)
	}
	n := len(words.Positional)
	dst := words.Positional[n-1]
	srcs := words.Positional[:n-1]
	return "Move-Item -Path " + pathList(srcs, ctx) + " -Destination " + NativeArg(dst, ctx)
}

func translateTouch(sc *shast.SimpleCommand, ctx *TransformContext) string {
	words := ParseWordArgs(sc.Args[1:], nil)
	if len(words.Positional) == 0 {
		return placeholder("touch called with no operand", ctx)
	}
	return "New-Item -ItemType File -Force -Path " + pathList(words.Positional, ctx)
}

var lnSpecs = []FlagSpec{{Short: 's'}}

func translateLn(sc *shast.SimpleCommand, ctx *TransformContext) string {
	parsed := ParseWordArgs(sc.Args[1:], lnSpecs)
	if len(parsed.Positional) < 2 {
		return placeholder("ln requires target and link name", ctx)
	}
	target, link := parsed.Positional[0], parsed.Positional[1]
	itemType := "HardLink"
	if parsed.Has("s") {
		itemType = "SymbolicLink"
	}
	return "New-Item -ItemType " + itemType + " -Path " + NativeArg(link, ctx) + " -Target " + NativeArg(target, ctx)
}

// translateChmod is the documented Open Question decision (spec.md §9):
// numeric modes get a commented icacls placeholder with a warning; the
// common `+x` case maps to Unblock-File as a best-effort approximation.
func translateChmod(sc *shast.SimpleCommand, ctx *TransformContext) string {
	words := ParseWordArgs(sc.Args[1:], nil)
	if len(words.Positional) < 1 {
		return placeholder("chmod called with no operand", ctx)
	}
	mode := words.Positional[0].Raw()
	paths := words.Positional[1:]
	if mode == "+x" && len(paths) > 0 {
		return "Unblock-File -Path " + pathList(paths, ctx)
	}
	ctx.warn("chmod numeric/symbolic mode has no Windows file-mode equivalent")
	return "# unsupported: chmod " + mode + " — see icacls for ACL-based alternatives"
}

func translateBasename(sc *shast.SimpleCommand, ctx *TransformContext) string {
	words := argWords(sc, ctx)
	if len(words) == 0 {
		return placeholder("basename called with no operand", ctx)
	}
	return "Split-Path -Leaf " + words[0]
}

func translateDirname(sc *shast.SimpleCommand, ctx *TransformContext) string {
	words := argWords(sc, ctx)
	if len(words) == 0 {
		return placeholder("dirname called with no operand", ctx)
	}
	return "Split-Path -Parent " + words[0]
}

func translateRealpath(sc *shast.SimpleCommand, ctx *TransformContext) string {
	words := argWords(sc, ctx)
	if len(words) == 0 {
		return placeholder("realpath called with no operand", ctx)
	}
	return "Resolve-Path " + words[0] + " | ForEach-Object { $_.Path }"
}

func translateZip(sc *shast.SimpleCommand, ctx *TransformContext) string {
	words := ParseWordArgs(sc.Args[1:], nil)
	if len(words.Positional) < 2 {
		return placeholder("zip requires an archive name and at least one member", ctx)
	}
	archive := words.Positional[0]
	members := words.Positional[1:]
	return "Compress-Archive -Path " + pathList(members, ctx) + " -DestinationPath " + NativeArg(archive, ctx)
}

func translateUnzip(sc *shast.SimpleCommand, ctx *TransformContext) string {
	words := argWords(sc, ctx)
	if len(words) == 0 {
		return placeholder("unzip called with no operand", ctx)
	}
	out := "Expand-Archive -Path " + words[0]
	if len(words) > 1 {
		out += " -DestinationPath " + words[1]
	}
	return out
}

// pathList renders a list of path operands as comma-separated quoted
// arguments, matching -Path's array-accepting cmdlets.
func pathList(words []*shast.Word, ctx *TransformContext) string {
	rendered := make([]string, len(words))
	for i, w := range words {
		rendered[i] = NativeArg(w, ctx)
	}
	return strings.Join(rendered, ",")
}
