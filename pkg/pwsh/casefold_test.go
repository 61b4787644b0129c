package pwsh

import "testing"

func TestNormalizeSpecialPathCaseInsensitive(t *testing.T) {
	cases := []string{"/dev/null", "/DEV/NULL", "/Dev/Null"}
	for _, in := range cases {
		canon, ok := normalizeSpecialPath(in)
		if !ok || canon != "/dev/null" {
			t.Errorf("%q: got (%q, %v)", in, canon, ok)
		}
	}
}

func TestNormalizeSpecialPathRejectsUnknown(t *testing.T) {
	if _, ok := normalizeSpecialPath("/home/user"); ok {
		t.Fatal("expected an arbitrary path not to match a special token")
	}
}
