package pwsh

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// caseFolder normalizes to a fixed casing so the fixed set of special
// path tokens below can be compared case-insensitively, matching Windows
// path and PowerShell drive/env-lookup semantics — bash path comparisons
// stay case-sensitive, so this is only ever applied to the fixed literal
// set, never to arbitrary user paths. language.Und is used because these
// tokens are ASCII and carry no locale-specific casing rules.
var caseFolder = cases.Lower(language.Und)

var specialPathTokens = map[string]string{
	caseFolder.String("/dev/null"):   "/dev/null",
	caseFolder.String("/dev/stdout"): "/dev/stdout",
	caseFolder.String("/dev/stderr"): "/dev/stderr",
	caseFolder.String("/tmp"):        "/tmp",
}

// normalizeSpecialPath returns the canonical form of v if it case-insensitively
// matches one of the fixed special path tokens (e.g. "/dev/Stdout" or
// "/DEV/NULL"), and false otherwise.
func normalizeSpecialPath(v string) (string, bool) {
	canon, ok := specialPathTokens[caseFolder.String(v)]
	return canon, ok
}
