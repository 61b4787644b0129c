package toolprobe

import "testing"

func TestDetectReturnsStableResultUntilReset(t *testing.T) {
	ResetCache()
	first := Detect()
	second := Detect()
	if first != second {
		t.Fatalf("Detect results differ across calls without a reset: %+v vs %+v", first, second)
	}
}

func TestResetCacheForcesReprobe(t *testing.T) {
	ResetCache()
	_ = Detect()
	ResetCache()
	// After reset, computed must be false until Detect runs again.
	mu.RLock()
	c := computed
	mu.RUnlock()
	if c {
		t.Fatal("ResetCache did not clear the computed flag")
	}
}

func TestOnPathUnknownTool(t *testing.T) {
	if onPath("definitely-not-a-real-binary-xyz") {
		t.Fatal("expected unknown binary to not be found on PATH")
	}
}
