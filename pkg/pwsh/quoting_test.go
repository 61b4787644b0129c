package pwsh

import (
	"testing"

	"bash2pwsh/pkg/shast"
)

func litWord(value string, q shast.Quoting) *shast.Word {
	return &shast.Word{Parts: []shast.WordPart{shast.Literal{Value: value, Quoting: q}}}
}

func testCtx() *TransformContext {
	return NewContext(Options{AvailableTools: &ToolAvailability{}, PreferNativeTools: true, PSVersion: "5.1"})
}

func TestTranslateWordEmpty(t *testing.T) {
	if got := TranslateWord(&shast.Word{}, testCtx()); got != "''" {
		t.Fatalf("got %q", got)
	}
	if got := TranslateWord(nil, testCtx()); got != "''" {
		t.Fatalf("got %q", got)
	}
}

func TestTranslateWordSingleQuotedLiteral(t *testing.T) {
	w := litWord("it's", shast.Single)
	if got := TranslateWord(w, testCtx()); got != "'it''s'" {
		t.Fatalf("got %q", got)
	}
}

func TestTranslateWordDoubleQuotedLiteralBecomesSingleQuoted(t *testing.T) {
	w := litWord("TODO", shast.Double)
	if got := TranslateWord(w, testCtx()); got != "'TODO'" {
		t.Fatalf("got %q", got)
	}
}

func TestTranslateWordDoubleQuotedLiteralWithBacktickStaysDoubleQuoted(t *testing.T) {
	w := litWord("a`b", shast.Double)
	if got := TranslateWord(w, testCtx()); got != "\"a``b\"" {
		t.Fatalf("got %q", got)
	}
}

func TestTranslateWordDollarSingleWithControlBytes(t *testing.T) {
	w := litWord("a\nb", shast.DollarSingle)
	if got := TranslateWord(w, testCtx()); got != "\"a`nb\"" {
		t.Fatalf("got %q", got)
	}
}

func TestTranslateWordDollarSingleWithoutControlBytes(t *testing.T) {
	w := litWord("plain", shast.DollarSingle)
	if got := TranslateWord(w, testCtx()); got != "'plain'" {
		t.Fatalf("got %q", got)
	}
}

func TestTranslateWordUnquotedSafeStaysBare(t *testing.T) {
	w := litWord("src/main.go", shast.Unquoted)
	if got := TranslateWord(w, testCtx()); got != "src/main.go" {
		t.Fatalf("got %q", got)
	}
}

func TestTranslateWordUnquotedUnsafeGetsQuoted(t *testing.T) {
	w := litWord("hello world", shast.Unquoted)
	if got := TranslateWord(w, testCtx()); got != "'hello world'" {
		t.Fatalf("got %q", got)
	}
}

func TestTranslateWordUnquotedEmpty(t *testing.T) {
	w := litWord("", shast.Unquoted)
	if got := TranslateWord(w, testCtx()); got != "''" {
		t.Fatalf("got %q", got)
	}
}

func TestTranslateWordUnquotedBooleanLiterals(t *testing.T) {
	for _, v := range []string{"$null", "$true", "$false"} {
		w := litWord(v, shast.Unquoted)
		if got := TranslateWord(w, testCtx()); got != v {
			t.Fatalf("got %q, want %q", got, v)
		}
	}
}

func TestNativeArgAlwaysSingleQuotesSafeLiteral(t *testing.T) {
	w := litWord("src/", shast.Unquoted)
	if got := NativeArg(w, testCtx()); got != "'src/'" {
		t.Fatalf("got %q", got)
	}
}

func TestNativeArgPreservesVariableExpansion(t *testing.T) {
	w := &shast.Word{Parts: []shast.WordPart{shast.Variable{Name: "HOME"}}}
	if got := NativeArg(w, testCtx()); got != "$env:USERPROFILE" {
		t.Fatalf("got %q", got)
	}
}

func TestTranslateWordPathShortcuts(t *testing.T) {
	cases := map[string]string{
		"/tmp":      "$env:TEMP",
		"/tmp/x":    "$env:TEMP\\x",
		"~":         "$env:USERPROFILE",
		"~/project": "$env:USERPROFILE\\project",
	}
	for in, want := range cases {
		w := litWord(in, shast.Unquoted)
		if got := TranslateWord(w, testCtx()); got != want {
			t.Errorf("%q: got %q, want %q", in, got, want)
		}
	}
}

func TestTranslateWordMultiPartInterpolation(t *testing.T) {
	w := &shast.Word{Parts: []shast.WordPart{
		shast.Literal{Value: "hello-", Quoting: shast.Double},
		shast.Variable{Name: "USER"},
	}}
	got := TranslateWord(w, testCtx())
	if got != "\"hello-$env:USERNAME\"" {
		t.Fatalf("got %q", got)
	}
}

func TestSingleQuoteDoublesEmbeddedQuotes(t *testing.T) {
	if got := singleQuote("a'b"); got != "'a''b'" {
		t.Fatalf("got %q", got)
	}
}

func TestDoubleQuoteEscapesSpecialChars(t *testing.T) {
	if got := doubleQuote("a`b$c\"d"); got != "\"a``b`$c`\"d\"" {
		t.Fatalf("got %q", got)
	}
}
