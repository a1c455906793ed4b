package system

import (
	"strings"
	"testing"
)

func TestWorkers(t *testing.T) {
	if got := Workers(3); got != 3 {
		t.Errorf("Workers(3) = %d", got)
	}
	if got := Workers(0); got < 1 {
		t.Errorf("Workers(0) = %d, want at least 1", got)
	}
	if got := RecommendedWorkers(); got < 1 {
		t.Errorf("RecommendedWorkers() = %d", got)
	}
}

func TestMemoryReport(t *testing.T) {
	m := MemoryReport()
	if m.TotalMB != 0 && m.AvailableMB > m.TotalMB {
		t.Errorf("available %d exceeds total %d", m.AvailableMB, m.TotalMB)
	}
	if !strings.Contains(m.String(), "heap") {
		t.Errorf("unexpected report %q", m.String())
	}
}
