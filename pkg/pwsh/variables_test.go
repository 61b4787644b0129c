package pwsh

import (
	"testing"

	"bash2pwsh/pkg/shast"
)

func TestTranslateVariableEnvMap(t *testing.T) {
	cases := map[string]string{
		"HOME": "$env:USERPROFILE",
		"USER": "$env:USERNAME",
		"PWD":  "$PWD",
	}
	for name, want := range cases {
		got := translateVariable(shast.Variable{Name: name})
		if got != want {
			t.Errorf("%q: got %q, want %q", name, got, want)
		}
	}
}

func TestTranslateVariableSpecialChars(t *testing.T) {
	cases := map[string]string{
		"?": "$LASTEXITCODE",
		"#": "$args.Count",
		"@": "$args",
		"1": "$args[0]",
	}
	for name, want := range cases {
		got := translateVariable(shast.Variable{Name: name})
		if got != want {
			t.Errorf("%q: got %q, want %q", name, got, want)
		}
	}
}

func TestTranslateVariableUnmappedName(t *testing.T) {
	got := translateVariable(shast.Variable{Name: "MY_CUSTOM_VAR"})
	if got != "$env:MY_CUSTOM_VAR" {
		t.Fatalf("got %q", got)
	}
}

func TestTranslateVariableBracedUnmappedName(t *testing.T) {
	got := translateVariable(shast.Variable{Name: "MY_CUSTOM_VAR", Braced: true})
	if got != "${env:MY_CUSTOM_VAR}" {
		t.Fatalf("got %q", got)
	}
}

func TestTranslatePathShortcutRejectsQuoted(t *testing.T) {
	w := litWord("~/project", shast.Single)
	if _, ok := translatePathShortcut(w); ok {
		t.Fatal("expected quoted ~ not to be treated as a path shortcut")
	}
}
