package pwsh

import (
	"strconv"
	"strings"

	"bash2pwsh/pkg/shast"
)

// envVarMap is spec.md §4.3's design-critical bash→PowerShell variable
// mapping table, for the names with a dedicated PowerShell equivalent
// rather than a bare $env: lookup.
var envVarMap = map[string]string{
	"HOME":     "$env:USERPROFILE",
	"USER":     "$env:USERNAME",
	"SHELL":    "$env:ComSpec",
	"TMPDIR":   "$env:TEMP",
	"HOSTNAME": "$env:COMPUTERNAME",
	"PWD":      "$PWD",
	"OLDPWD":   "$OLDPWD",
	"RANDOM":   "(Get-Random)",
}

// translateVariable renders a single Variable word part per the mapping
// table, including the single-character special variables.
func translateVariable(v shast.Variable) string {
	if len(v.Name) == 1 {
		switch v.Name[0] {
		case '?':
			return "$LASTEXITCODE"
		case '$', '!':
			return "$PID"
		case '#':
			return "$args.Count"
		case '@':
			return "$args"
		case '0':
			return "$MyInvocation.MyCommand.Name"
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			n, _ := strconv.Atoi(v.Name)
			return "$args[" + strconv.Itoa(n-1) + "]"
		}
	}
	if mapped, ok := envVarMap[v.Name]; ok {
		return mapped
	}
	if v.Braced {
		return "${env:" + v.Name + "}"
	}
	return "$env:" + v.Name
}

// translatePathShortcut applies spec.md §4.3's path translation rules —
// ~, ~/rest, /tmp, /tmp/rest — but only to unquoted single-Literal words;
// everything inside quotes (including "~/x") is left untouched per bash
// tilde-expansion semantics.
func translatePathShortcut(w *shast.Word) (string, bool) {
	if len(w.Parts) != 1 {
		return "", false
	}
	lit, ok := w.Parts[0].(shast.Literal)
	if !ok || lit.Quoting != shast.Unquoted {
		return "", false
	}
	v := lit.Value
	switch {
	case v == "/tmp" || v == "/tmp/":
		return "$env:TEMP", true
	case strings.HasPrefix(v, "/tmp/"):
		return "$env:TEMP\\" + strings.TrimPrefix(v, "/tmp/"), true
	case v == "~":
		return "$env:USERPROFILE", true
	case strings.HasPrefix(v, "~/"):
		return "$env:USERPROFILE\\" + strings.TrimPrefix(v, "~/"), true
	}
	return "", false
}
