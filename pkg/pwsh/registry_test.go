package pwsh

import "testing"

func TestRegistryCoversExpectedCommandNames(t *testing.T) {
	want := []string{
		"grep", "egrep", "fgrep", "find", "ls",
		"cat", "head", "tail", "wc", "sort", "uniq", "cut", "tr", "tee", "diff", "xargs",
		"sed", "awk",
		"test", "[",
		"rm", "mkdir", "cp", "mv", "touch", "ln", "chmod", "basename", "dirname", "realpath", "readlink", "zip", "unzip",
		"cd", "pwd", "echo", "printf", "export", "unset", "env", "true", "false", "date", "sleep",
		"whoami", "uname", "du", "df", "history", "exit", "source", ".", "seq", "mktemp", "nohup", "sudo",
		"ps", "kill", "pkill", "killall", "pgrep", "lsof",
		"curl", "wget",
	}
	for _, name := range want {
		if _, ok := registry[name]; !ok {
			t.Errorf("registry missing translator for %q", name)
		}
	}
}

func TestPlaceholderWarnsAndReturnsComment(t *testing.T) {
	ctx := testCtx()
	got := placeholder("reason text", ctx)
	if got != "# unsupported: reason text" {
		t.Fatalf("got %q", got)
	}
	if len(ctx.Warnings) != 1 || ctx.Warnings[0] != "reason text" {
		t.Fatalf("expected warning recorded, got %+v", ctx.Warnings)
	}
}

func TestUnknownCommandPassesThroughUnregistered(t *testing.T) {
	got := translate(t, "some-custom-tool --flag value", testCtx())
	if got != "some-custom-tool --flag value" {
		t.Fatalf("got %q", got)
	}
}
