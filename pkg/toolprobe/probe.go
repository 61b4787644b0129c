// Package toolprobe resolves which native tools (rg, fd, curl, jq) are on
// PATH. It owns the one process-wide cache the system has (spec.md §5),
// guarded by sync.Once with an explicit reset hook for tests and
// long-running hosts whose PATH can change between invocations.
package toolprobe

import (
	"os/exec"
	"sync"

	"bash2pwsh/pkg/pwsh"
)

var (
	once     sync.Once
	mu       sync.RWMutex
	cached   pwsh.ToolAvailability
	computed bool
)

// Detect probes PATH for each native tool and returns the cached result,
// computing it once per process (or since the last ResetCache call).
func Detect() pwsh.ToolAvailability {
	mu.RLock()
	if computed {
		defer mu.RUnlock()
		return cached
	}
	mu.RUnlock()

	once.Do(func() {
		mu.Lock()
		cached = probe()
		computed = true
		mu.Unlock()
	})

	mu.RLock()
	defer mu.RUnlock()
	return cached
}

func probe() pwsh.ToolAvailability {
	return pwsh.ToolAvailability{
		Rg:   onPath("rg"),
		Fd:   onPath("fd"),
		Curl: onPath("curl"),
		Jq:   onPath("jq"),
	}
}

func onPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// ResetCache clears the process-wide cache so the next Detect call
// re-probes PATH. Tests must call this between assertions that rely on
// different PATH states; long-running hosts can call it if PATH changes.
func ResetCache() {
	mu.Lock()
	defer mu.Unlock()
	computed = false
	cached = pwsh.ToolAvailability{}
	once = sync.Once{}
}
