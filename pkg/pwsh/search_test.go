package pwsh

import (
	"strings"
	"testing"
)

func ctxWithTools(tools ToolAvailability) *TransformContext {
	return NewContext(Options{AvailableTools: &tools, PreferNativeTools: true, PSVersion: "5.1"})
}

func TestGrepNativeBasic(t *testing.T) {
	got := translate(t, `grep PAT file.txt`, ctxWithTools(ToolAvailability{Rg: true}))
	want := "rg 'PAT' 'file.txt'"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGrepNativeFlagsAndQuiet(t *testing.T) {
	got := translate(t, `grep -niq PAT file.txt`, ctxWithTools(ToolAvailability{Rg: true}))
	if !strings.HasPrefix(got, "rg -n -i") {
		t.Fatalf("got %q", got)
	}
	if !strings.HasSuffix(got, "| Out-Null") {
		t.Fatalf("expected -q to pipe to Out-Null, got %q", got)
	}
}

func TestGrepFallbackSingleFile(t *testing.T) {
	got := translate(t, `grep PAT file.txt`, ctxWithTools(ToolAvailability{}))
	want := "Select-String -Path file.txt -Pattern PAT | ForEach-Object { $_.Line }"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGrepFallbackMultiFileWithLineNumbers(t *testing.T) {
	got := translate(t, `grep -n PAT a.txt b.txt`, ctxWithTools(ToolAvailability{}))
	if !strings.Contains(got, "-Path a.txt,b.txt") {
		t.Fatalf("expected comma-joined multi-file path, got %q", got)
	}
	if !strings.Contains(got, "$_.Path):$($_.LineNumber):$($_.Line") {
		t.Fatalf("expected path:line:text format, got %q", got)
	}
}

func TestGrepFallbackCountSingleFile(t *testing.T) {
	got := translate(t, `grep -c PAT file.txt`, ctxWithTools(ToolAvailability{}))
	if !strings.HasSuffix(got, "| Measure-Object | ForEach-Object { $_.Count }") {
		t.Fatalf("got %q", got)
	}
}

func TestGrepNoPatternIsPlaceholder(t *testing.T) {
	got := translate(t, `grep`, ctxWithTools(ToolAvailability{}))
	if !strings.HasPrefix(got, "# unsupported:") {
		t.Fatalf("got %q", got)
	}
}

func TestFindNativeFd(t *testing.T) {
	got := translate(t, `find . -name "*.go"`, ctxWithTools(ToolAvailability{Fd: true}))
	if !strings.HasPrefix(got, "fd -g") {
		t.Fatalf("got %q", got)
	}
}

func TestFindFallbackDelete(t *testing.T) {
	got := translate(t, `find build -name "*.tmp" -delete`, ctxWithTools(ToolAvailability{}))
	if !strings.Contains(got, "Get-ChildItem") || !strings.HasSuffix(got, "Remove-Item -Force") {
		t.Fatalf("got %q", got)
	}
}

func TestLsPlainUnquotedPath(t *testing.T) {
	got := translate(t, `ls src/`, ctxWithTools(ToolAvailability{}))
	want := "Get-ChildItem -Path src/ | Select-Object -ExpandProperty Name"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLsSortByTimeDescendingByDefault(t *testing.T) {
	got := translate(t, `ls -t`, ctxWithTools(ToolAvailability{}))
	if !strings.Contains(got, "Sort-Object LastWriteTime -Descending") {
		t.Fatalf("got %q", got)
	}
}

func TestLsGlobShapedOperandUsesFilter(t *testing.T) {
	got := translate(t, `ls *.go`, ctxWithTools(ToolAvailability{}))
	want := "Get-ChildItem -Path . -Filter '*.go' | Select-Object -ExpandProperty Name"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLsRecursiveGlobOperandForcesRecurse(t *testing.T) {
	got := translate(t, `ls **/*.go`, ctxWithTools(ToolAvailability{}))
	want := "Get-ChildItem -Path . -Recurse -Filter '*.go' | Select-Object -ExpandProperty Name"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestGrepFallbackRecursiveWithGlobIncludeAddsFilter(t *testing.T) {
	got := translate(t, `grep -r --include=*.go PAT src`, ctxWithTools(ToolAvailability{}))
	if !strings.Contains(got, "-Filter '*.go'") {
		t.Fatalf("expected -Filter in %q", got)
	}
}

func TestLsSortReversedWithLowercaseR(t *testing.T) {
	got := translate(t, `ls -tr`, ctxWithTools(ToolAvailability{}))
	if strings.Contains(got, "-Descending") {
		t.Fatalf("expected ascending order with -r, got %q", got)
	}
}
