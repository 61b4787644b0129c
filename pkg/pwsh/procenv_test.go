package pwsh

import "testing"

func TestCdWithArgument(t *testing.T) {
	got := translate(t, `cd frontend`, testCtx())
	if got != "Set-Location frontend" {
		t.Fatalf("got %q", got)
	}
}

func TestCdWithNoArgumentGoesHome(t *testing.T) {
	got := translate(t, `cd`, testCtx())
	if got != "Set-Location $env:USERPROFILE" {
		t.Fatalf("got %q", got)
	}
}

func TestPwd(t *testing.T) {
	got := translate(t, `pwd`, testCtx())
	if got != "(Get-Location).Path" {
		t.Fatalf("got %q", got)
	}
}

func TestEchoJoinsWithComma(t *testing.T) {
	got := translate(t, `echo hello world`, testCtx())
	if got != "Write-Output hello,world" {
		t.Fatalf("got %q", got)
	}
}

func TestEchoNoNewline(t *testing.T) {
	got := translate(t, `echo -n hello`, testCtx())
	if got != "Write-Host -NoNewline hello" {
		t.Fatalf("got %q", got)
	}
}

func TestExportAssignment(t *testing.T) {
	got := translate(t, `export FOO=bar`, testCtx())
	if got != "$env:FOO = 'bar'" {
		t.Fatalf("got %q", got)
	}
}

func TestUnsetRemovesEnvVar(t *testing.T) {
	got := translate(t, `unset FOO`, testCtx())
	if got != "Remove-Item Env:\\FOO -ErrorAction SilentlyContinue" {
		t.Fatalf("got %q", got)
	}
}

func TestTrueAndFalseConstants(t *testing.T) {
	if got := translate(t, `true`, testCtx()); got != "$true" {
		t.Fatalf("got %q", got)
	}
	if got := translate(t, `false`, testCtx()); got != "$false" {
		t.Fatalf("got %q", got)
	}
}

func TestSeqSingleArgument(t *testing.T) {
	got := translate(t, `seq 5`, testCtx())
	if got != "1..5" {
		t.Fatalf("got %q", got)
	}
}

func TestSeqTwoArguments(t *testing.T) {
	got := translate(t, `seq 2 8`, testCtx())
	if got != "2..8" {
		t.Fatalf("got %q", got)
	}
}

func TestMktempDirectory(t *testing.T) {
	got := translate(t, `mktemp -d`, testCtx())
	want := "(New-Item -ItemType Directory -Path (Join-Path $env:TEMP ([System.IO.Path]::GetRandomFileName()))).FullName"
	if got != want {
		t.Fatalf("got %q", got)
	}
}

func TestNohupDelegatesToInnerCommand(t *testing.T) {
	got := translate(t, `nohup node server.js`, testCtx())
	if got != "node server.js" {
		t.Fatalf("got %q", got)
	}
}

func TestSudoStripsWithWarning(t *testing.T) {
	ctx := testCtx()
	got := translate(t, `sudo apt-get update`, ctx)
	if got != "apt-get update" {
		t.Fatalf("got %q", got)
	}
	if len(ctx.Warnings) == 0 {
		t.Fatal("expected a warning about stripped sudo")
	}
}

func TestNohupWithRedirectAppliesItOnce(t *testing.T) {
	got := translate(t, `nohup node server.js > out.txt`, testCtx())
	if got != "node server.js > out.txt" {
		t.Fatalf("got %q", got)
	}
}

func TestSudoWithRedirectAppliesItOnce(t *testing.T) {
	got := translate(t, `sudo foo > out.txt`, testCtx())
	if got != "foo > out.txt" {
		t.Fatalf("got %q", got)
	}
}

func TestKillByPid(t *testing.T) {
	got := translate(t, `kill 1234`, testCtx())
	if got != "Stop-Process -Id 1234 -Force" {
		t.Fatalf("got %q", got)
	}
}

func TestLsofByPort(t *testing.T) {
	got := translate(t, `lsof -i :8080`, testCtx())
	if got != "Get-NetTCPConnection -LocalPort 8080" {
		t.Fatalf("got %q", got)
	}
}
