package pwsh

import (
	"strings"

	"bash2pwsh/pkg/shast"
)

func registerProcEnv() {
	register([]string{"cd"}, translateCd)
	register([]string{"pwd"}, translatePwd)
	register([]string{"echo"}, translateEcho)
	register([]string{"printf"}, translatePrintf)
	register([]string{"export"}, translateExport)
	register([]string{"unset"}, translateUnset)
	register([]string{"env"}, translateEnv)
	register([]string{"true"}, constTranslator("$true"))
	register([]string{"false"}, constTranslator("$false"))
	register([]string{"date"}, translateDate)
	register([]string{"sleep"}, translateSleep)
	register([]string{"whoami"}, constTranslator("$env:USERNAME"))
	register([]string{"uname"}, constTranslator("'Windows'"))
	register([]string{"du"}, translateDu)
	register([]string{"df"}, translateDf)
	register([]string{"history"}, constTranslator("Get-History"))
	register([]string{"exit"}, translateExit)
	register([]string{"source", "."}, translateSource)
	register([]string{"seq"}, translateSeq)
	register([]string{"mktemp"}, translateMktemp)
	register([]string{"nohup"}, translateNohup)
	register([]string{"sudo"}, translateSudo)
	register([]string{"ps"}, constTranslator("Get-Process"))
	register([]string{"kill"}, translateKill)
	register([]string{"pkill", "killall"}, translatePkill)
	register([]string{"pgrep"}, translatePgrep)
	register([]string{"lsof"}, translateLsof)
}

func constTranslator(out string) Translator {
	return func(sc *shast.SimpleCommand, ctx *TransformContext) string { return out }
}

func translateCd(sc *shast.SimpleCommand, ctx *TransformContext) string {
	words := argWords(sc, ctx)
	if len(words) == 0 {
		return "Set-Location $env:USERPROFILE"
	}
	return "Set-Location " + words[0]
}

func translatePwd(sc *shast.SimpleCommand, ctx *TransformContext) string {
	return "(Get-Location).Path"
}

var echoSpecs = []FlagSpec{{Short: 'n'}, {Short: 'e'}}

// translateEcho: -e's textual \n substitution inside an already-parsed
// $'...' literal is the documented Open Question (spec.md §9) — this
// implementation applies the \n, \t and \r substitution to the rendered
// PowerShell text of every word after word translation, whatever its
// original quoting, which is the chosen, documented semantics rather than
// GNU-echo's pre-expansion behavior. A word rendered in PowerShell single
// quotes keeps the resulting backtick sequence as literal text.
func translateEcho(sc *shast.SimpleCommand, ctx *TransformContext) string {
	parsed := ParseWordArgs(sc.Args[1:], echoSpecs)
	words := make([]string, len(parsed.Positional))
	for i, w := range parsed.Positional {
		rendered := TranslateWord(w, ctx)
		if parsed.Has("e") {
			rendered = applyEchoEscapes(rendered)
		}
		words[i] = rendered
	}
	out := "Write-Output " + strings.Join(words, ",")
	if parsed.Has("n") {
		out = "Write-Host -NoNewline " + strings.Join(words, ",")
	}
	return out
}

func applyEchoEscapes(s string) string {
	r := strings.NewReplacer(`\n`, "`n", `\t`, "`t", `\r`, "`r")
	return r.Replace(s)
}

func translatePrintf(sc *shast.SimpleCommand, ctx *TransformContext) string {
	words := argWords(sc, ctx)
	if len(words) == 0 {
		return placeholder("printf called with no format", ctx)
	}
	return "Write-Output (" + strings.Join(words, " -f ") + ")"
}

// translateExport handles both "export FOO=bar" (parsed as a plain
// NAME=VALUE argument, since assignment-prefix parsing only applies
// before the command name) and the rarer "FOO=bar export" prefix form.
func translateExport(sc *shast.SimpleCommand, ctx *TransformContext) string {
	parts := make([]string, 0, len(sc.Assignments))
	for _, a := range sc.Assignments {
		parts = append(parts, translateAssignment(a, ctx))
	}
	for _, raw := range sc.Args[1:] {
		text := raw.Raw()
		if eq := strings.IndexByte(text, '='); eq > 0 {
			name, value := text[:eq], text[eq+1:]
			parts = append(parts, "$env:"+name+" = "+singleQuote(value))
			continue
		}
		parts = append(parts, "$env:"+text)
	}
	if len(parts) == 0 {
		return "Get-ChildItem Env:"
	}
	return strings.Join(parts, "; ")
}

func translateUnset(sc *shast.SimpleCommand, ctx *TransformContext) string {
	raws := rawArgs(sc)
	parts := make([]string, 0, len(raws))
	for _, r := range raws {
		parts = append(parts, "Remove-Item Env:\\"+r+" -ErrorAction SilentlyContinue")
	}
	return strings.Join(parts, "; ")
}

func translateEnv(sc *shast.SimpleCommand, ctx *TransformContext) string {
	if len(sc.Args) <= 1 {
		return "Get-ChildItem Env:"
	}
	return passThrough(sc, ctx)
}

func translateDate(sc *shast.SimpleCommand, ctx *TransformContext) string {
	return "Get-Date"
}

func translateSleep(sc *shast.SimpleCommand, ctx *TransformContext) string {
	words := argWords(sc, ctx)
	if len(words) == 0 {
		return placeholder("sleep called with no duration", ctx)
	}
	return "Start-Sleep -Seconds " + words[0]
}

func translateDu(sc *shast.SimpleCommand, ctx *TransformContext) string {
	words := argWords(sc, ctx)
	path := "."
	if len(words) > 0 {
		path = words[0]
	}
	return "(Get-ChildItem -Path " + path + " -Recurse | Measure-Object -Property Length -Sum).Sum"
}

func translateDf(sc *shast.SimpleCommand, ctx *TransformContext) string {
	return "Get-PSDrive -PSProvider FileSystem"
}

func translateExit(sc *shast.SimpleCommand, ctx *TransformContext) string {
	words := argWords(sc, ctx)
	if len(words) == 0 {
		return "exit"
	}
	return "exit " + words[0]
}

func translateSource(sc *shast.SimpleCommand, ctx *TransformContext) string {
	words := argWords(sc, ctx)
	if len(words) == 0 {
		return placeholder("source called with no file", ctx)
	}
	return ". " + words[0]
}

func translateSeq(sc *shast.SimpleCommand, ctx *TransformContext) string {
	words := argWords(sc, ctx)
	switch len(words) {
	case 1:
		return "1.." + words[0]
	case 2:
		return words[0] + ".." + words[1]
	case 3:
		return "(" + words[0] + ".." + words[2] + " | Where-Object { ($_ - " + words[0] + ") % " + words[1] + " -eq 0 })"
	default:
		return placeholder("seq: unsupported argument count", ctx)
	}
}

var mktempSpecs = []FlagSpec{{Short: 'd'}}

func translateMktemp(sc *shast.SimpleCommand, ctx *TransformContext) string {
	parsed := ParseWordArgs(sc.Args[1:], mktempSpecs)
	if parsed.Has("d") {
		return "(New-Item -ItemType Directory -Path (Join-Path $env:TEMP ([System.IO.Path]::GetRandomFileName()))).FullName"
	}
	return "(New-TemporaryFile).FullName"
}

// translateNohup re-dispatches to the wrapped command's own translator,
// since "nohup cmd args..." and "cmd args..." translate identically in
// PowerShell (there is no terminal-hangup signal to detach from).
func translateNohup(sc *shast.SimpleCommand, ctx *TransformContext) string {
	if len(sc.Args) <= 1 {
		return placeholder("nohup called with no command", ctx)
	}
	// Redirects are intentionally omitted here: the outer translateSimpleCommand
	// call for this nohup SimpleCommand already applies sc.Redirects after
	// translateCommandBody returns, so inner must not apply them again.
	inner := &shast.SimpleCommand{Name: sc.Args[1], Args: sc.Args[1:]}
	return translateCommandBody(inner, ctx)
}

// translateSudo strips the elevation prefix with a warning, since
// Windows middleware invoking PowerShell already runs with whatever
// privilege level the host process has.
func translateSudo(sc *shast.SimpleCommand, ctx *TransformContext) string {
	ctx.warn("sudo has no Windows equivalent; stripped")
	if len(sc.Args) <= 1 {
		return ""
	}
	// Redirects omitted here too — the outer translateSimpleCommand call
	// for this sudo SimpleCommand applies sc.Redirects already.
	inner := &shast.SimpleCommand{Name: sc.Args[1], Args: sc.Args[1:]}
	return translateCommandBody(inner, ctx)
}

func translateKill(sc *shast.SimpleCommand, ctx *TransformContext) string {
	words := argWords(sc, ctx)
	if len(words) == 0 {
		return placeholder("kill called with no pid", ctx)
	}
	return "Stop-Process -Id " + words[len(words)-1] + " -Force"
}

func translatePkill(sc *shast.SimpleCommand, ctx *TransformContext) string {
	words := argWords(sc, ctx)
	if len(words) == 0 {
		return placeholder("pkill called with no pattern", ctx)
	}
	return "Stop-Process -Name " + words[0] + " -Force"
}

func translatePgrep(sc *shast.SimpleCommand, ctx *TransformContext) string {
	words := argWords(sc, ctx)
	if len(words) == 0 {
		return placeholder("pgrep called with no pattern", ctx)
	}
	return "Get-Process -Name " + words[0] + " | ForEach-Object { $_.Id }"
}

func translateLsof(sc *shast.SimpleCommand, ctx *TransformContext) string {
	parsed := ParseWordArgs(sc.Args[1:], []FlagSpec{{Short: 'i', TakesValue: true}})
	if port := parsed.Value("i"); port != "" {
		port = strings.TrimPrefix(port, ":")
		return "Get-NetTCPConnection -LocalPort " + port
	}
	return "Get-NetTCPConnection"
}
