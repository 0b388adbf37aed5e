package collect

import (
	"testing"

	"sysreport/internal/model"
)

func sampleEntries() []model.Process {
	return []model.Process{
		{PID: 10, Name: "idle", CPUPercent: 0.0, MemoryRSS: 100},
		{PID: 20, Name: "db", CPUPercent: 42.5, MemoryRSS: 8_000_000},
		{PID: 30, Name: "web", CPUPercent: 42.5, MemoryRSS: 2_000_000},
		{PID: 40, Name: "batch", CPUPercent: 99.0, MemoryRSS: 500_000},
	}
}

func TestTopByCPUOrderAndStability(t *testing.T) {
	got := topBy(sampleEntries(), 3, func(a, b model.Process) bool {
		return a.CPUPercent > b.CPUPercent
	})

	wantPIDs := []int32{40, 20, 30}
	if len(got) != len(wantPIDs) {
		t.Fatalf("got %d entries, want %d", len(got), len(wantPIDs))
	}
	for i, pid := range wantPIDs {
		if got[i].PID != pid {
			t.Errorf("rank %d: pid = %d, want %d (ties must keep enumeration order)", i, got[i].PID, pid)
		}
	}
}

func TestTopByLengthBounds(t *testing.T) {
	entries := sampleEntries()
	more := func(a, b model.Process) bool { return a.MemoryRSS > b.MemoryRSS }

	for _, n := range []int{0, 1, 2, 4, 10} {
		got := topBy(entries, n, more)
		want := n
		if want > len(entries) {
			want = len(entries)
		}
		if len(got) != want {
			t.Errorf("topBy(n=%d) returned %d entries, want %d", n, len(got), want)
		}
	}
}

func TestTopByDoesNotMutateInput(t *testing.T) {
	entries := sampleEntries()
	topBy(entries, 4, func(a, b model.Process) bool { return a.CPUPercent > b.CPUPercent })

	if entries[0].PID != 10 || entries[3].PID != 40 {
		t.Error("topBy reordered the caller's slice")
	}
}

func TestProcessSectionZeroN(t *testing.T) {
	sec := processSection(0)
	if len(sec.TopCPU) != 0 || len(sec.TopMemory) != 0 {
		t.Errorf("topN=0 should yield empty rankings, got %d/%d", len(sec.TopCPU), len(sec.TopMemory))
	}
	if sec.TopCPU == nil || sec.TopMemory == nil {
		t.Error("rankings should be empty lists, not nil")
	}
}
