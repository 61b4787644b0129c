package transpile

import (
	"strings"
	"testing"
)

func withTools(tools ToolAvailability) Options {
	return Options{AvailableTools: &tools, PreferNativeTools: true, PSVersion: "5.1"}
}

func TestBlankInputReturnsEmptyResult(t *testing.T) {
	r := TranspileWithMeta("   ", withTools(ToolAvailability{}))
	if r.PowerShell != "" || len(r.Warnings) != 0 {
		t.Fatalf("got %+v", r)
	}
}

func TestDeterministic(t *testing.T) {
	a := Transpile(`cat file.txt | grep "error"`, withTools(ToolAvailability{}))
	b := Transpile(`cat file.txt | grep "error"`, withTools(ToolAvailability{}))
	if a != b {
		t.Fatalf("not deterministic: %q vs %q", a, b)
	}
}

func TestScenario1LsLa(t *testing.T) {
	out := Transpile(`ls -la src/`, withTools(ToolAvailability{}))
	for _, want := range []string{"Get-ChildItem", "-Force", "-Path src/", "ForEach-Object"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestScenario2GrepRecursiveNative(t *testing.T) {
	out := Transpile(`grep -r "TODO" src/`, withTools(ToolAvailability{Rg: true}))
	if !strings.HasPrefix(out, "rg") {
		t.Fatalf("expected rg prefix, got %q", out)
	}
	if !strings.HasSuffix(out, "'src/'") {
		t.Fatalf("expected trailing 'src/', got %q", out)
	}
	if !strings.Contains(out, "'TODO'") {
		t.Fatalf("expected 'TODO' in %q", out)
	}
}

func TestScenario3CdAndNpm(t *testing.T) {
	out := Transpile(`cd frontend && npm install`, withTools(ToolAvailability{}))
	want := "Set-Location frontend; if ($?) { npm install }"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestScenario4CatGrepWc(t *testing.T) {
	out := Transpile(`cat file.txt | grep "error" | wc -l`, withTools(ToolAvailability{}))
	want := "Get-Content file.txt | Select-String -Pattern 'error' | ForEach-Object { $_.Line } | Measure-Object -Line | ForEach-Object { $_.Lines }"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestScenario5Background(t *testing.T) {
	out := Transpile(`node server.js &`, withTools(ToolAvailability{}))
	want := "Start-Job -ScriptBlock { node server.js }"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestScenario6RmAndMkdir(t *testing.T) {
	out := Transpile(`rm -rf dist && mkdir -p build`, withTools(ToolAvailability{}))
	want := "Remove-Item -Path 'dist' -Recurse -Force; if ($?) { New-Item -ItemType Directory -Force -Path 'build' }"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestUnmatchedParenBecomesErrorComment(t *testing.T) {
	r := TranspileWithMeta(`(cd foo`, withTools(ToolAvailability{}))
	if !strings.HasPrefix(r.PowerShell, "# TRANSPILE ERROR:") {
		t.Fatalf("expected error comment, got %q", r.PowerShell)
	}
	if !strings.Contains(r.PowerShell, "# Original: (cd foo") {
		t.Fatalf("expected original text preserved, got %q", r.PowerShell)
	}
	if len(r.Unsupported) != 1 || len(r.Warnings) != 1 {
		t.Fatalf("expected one warning and one unsupported entry, got %+v", r)
	}
}

func TestGrepFallbackPipedHasNoGetChildItemOrPath(t *testing.T) {
	out := Transpile(`grep PAT`, withTools(ToolAvailability{}))
	if strings.Contains(out, "Get-ChildItem") || strings.Contains(out, "-Path") {
		t.Fatalf("piped grep fallback should not reference Get-ChildItem/-Path: %q", out)
	}
}

func TestGrepFallbackRecursiveHasGetChildItem(t *testing.T) {
	out := Transpile(`grep -r PAT dir`, withTools(ToolAvailability{}))
	if !strings.Contains(out, "Get-ChildItem") || !strings.Contains(out, "-Recurse") {
		t.Fatalf("recursive grep fallback should use Get-ChildItem -Recurse: %q", out)
	}
}

func TestUsedFallbacksTrueWhenNativeToolMissing(t *testing.T) {
	r := TranspileWithMeta(`grep -r PAT dir`, withTools(ToolAvailability{}))
	if !r.UsedFallbacks {
		t.Fatal("expected UsedFallbacks=true")
	}
}

func TestUsedFallbacksFalseWhenNativeToolPresent(t *testing.T) {
	r := TranspileWithMeta(`grep -r PAT dir`, withTools(ToolAvailability{Rg: true}))
	if r.UsedFallbacks {
		t.Fatal("expected UsedFallbacks=false")
	}
}

func TestCommandSubstitutionRecursion(t *testing.T) {
	out := Transpile("echo $(whoami)", withTools(ToolAvailability{}))
	if !strings.Contains(out, "$(") || !strings.Contains(out, "$env:USERNAME") {
		t.Fatalf("expected recursively translated command substitution, got %q", out)
	}
}
