package pwsh

import (
	"strings"

	"bash2pwsh/pkg/shast"
)

func registerNetwork() {
	register([]string{"curl", "wget"}, translateCurl)
}

var curlSpecs = []FlagSpec{
	{Short: 'o', TakesValue: true},
	{Long: "output", TakesValue: true},
	{Short: 'X', TakesValue: true},
	{Long: "request", TakesValue: true},
	{Short: 'H', TakesValue: true},
	{Long: "header", TakesValue: true},
	{Short: 's'},
	{Short: 'L'},
	{Short: 'I'},
}

// translateCurl implements spec.md §4.4's dual-path curl/wget contract:
// curl.exe passthrough when tools.curl, else Invoke-WebRequest/
// Invoke-RestMethod fallback.
func translateCurl(sc *shast.SimpleCommand, ctx *TransformContext) string {
	parsed := ParseWordArgs(sc.Args[1:], curlSpecs)
	if len(parsed.Positional) == 0 {
		return placeholder("curl called with no URL", ctx)
	}
	url := parsed.Positional[0]

	if ctx.PreferNativeTools && ctx.Tools.Curl {
		var b strings.Builder
		b.WriteString("curl.exe")
		if m := firstNonEmpty(parsed.Value("X"), parsed.Value("request")); m != "" {
			b.WriteString(" -X " + m)
		}
		if h := firstNonEmpty(parsed.Value("H"), parsed.Value("header")); h != "" {
			b.WriteString(" -H " + singleQuote(stripQuotesRaw(h)))
		}
		if parsed.Has("L") {
			b.WriteString(" -L")
		}
		if o := firstNonEmpty(parsed.Value("o"), parsed.Value("output")); o != "" {
			b.WriteString(" -o " + singleQuote(stripQuotesRaw(o)))
		}
		b.WriteString(" " + NativeArg(url, ctx))
		return b.String()
	}

	ctx.fellBack()
	var b strings.Builder
	method := firstNonEmpty(parsed.Value("X"), parsed.Value("request"))
	if method == "" {
		method = "GET"
	}
	if parsed.Has("I") {
		b.WriteString("Invoke-WebRequest -Method Head -Uri " + NativeArg(url, ctx))
		return b.String()
	}
	b.WriteString("Invoke-RestMethod -Method " + method + " -Uri " + NativeArg(url, ctx))
	if h := firstNonEmpty(parsed.Value("H"), parsed.Value("header")); h != "" {
		h = stripQuotesRaw(h)
		if colon := strings.IndexByte(h, ':'); colon >= 0 {
			name := strings.TrimSpace(h[:colon])
			val := strings.TrimSpace(h[colon+1:])
			b.WriteString(" -Headers @{" + singleQuote(name) + "=" + singleQuote(val) + "}")
		}
	}
	if o := firstNonEmpty(parsed.Value("o"), parsed.Value("output")); o != "" {
		b.WriteString(" -OutFile " + singleQuote(stripQuotesRaw(o)))
	}
	return b.String()
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
