package pwsh

import "testing"

func TestRedirectStdoutAppend(t *testing.T) {
	got := translate(t, `echo hi >> log.txt`, testCtx())
	if got != "Write-Output hi >> log.txt" {
		t.Fatalf("got %q", got)
	}
}

func TestRedirectDevNullAppend(t *testing.T) {
	got := translate(t, `echo hi >> /dev/null`, testCtx())
	if got != "Write-Output hi >>$null" {
		t.Fatalf("got %q", got)
	}
}

func TestRedirectDevStdoutBecomesCon(t *testing.T) {
	got := translate(t, `echo hi > /dev/stdout`, testCtx())
	if got != "Write-Output hi > CON" {
		t.Fatalf("got %q", got)
	}
}

func TestRedirectFdDuplication(t *testing.T) {
	got := translate(t, `echo hi 2>&1`, testCtx())
	if got != "Write-Output hi 2>&1" {
		t.Fatalf("got %q", got)
	}
}

func TestRedirectCaseInsensitiveDevNull(t *testing.T) {
	got := translate(t, `echo hi > /DEV/NULL`, testCtx())
	if got != "Write-Output hi >$null" {
		t.Fatalf("got %q", got)
	}
}
