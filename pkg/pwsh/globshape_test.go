package pwsh

import "testing"

func TestIsGlobShaped(t *testing.T) {
	cases := map[string]bool{
		"*.go":      true,
		"file?.txt": true,
		"[abc].go":  true,
		"src/":      false,
		"plain.txt": false,
		"":          false,
	}
	for in, want := range cases {
		if got := IsGlobShaped(in); got != want {
			t.Errorf("%q: got %v, want %v", in, got, want)
		}
	}
}

func TestIsRecursiveGlob(t *testing.T) {
	if !IsRecursiveGlob("**/*.go") {
		t.Fatal("expected ** to be recognized as recursive")
	}
	if IsRecursiveGlob("*.go") {
		t.Fatal("expected single * not to be recursive")
	}
}
