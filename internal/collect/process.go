package collect

import (
	"sort"

	"github.com/shirou/gopsutil/v3/process"

	"sysreport/internal/model"
	"sysreport/internal/units"
)

func processSection(topN int) model.ProcessSection {
	var sec model.ProcessSection

	procs, err := process.Processes()
	if err != nil {
		sec.Err = err.Error()
	}

	entries := make([]model.Process, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			// Gone or access denied mid-scan; skip it.
			continue
		}
		username, _ := p.Username()
		cpuPct, _ := p.CPUPercent()

		var rss uint64
		if mi, err := p.MemoryInfo(); err == nil && mi != nil {
			rss = mi.RSS
		}

		entries = append(entries, model.Process{
			PID:        p.Pid,
			Name:       name,
			User:       username,
			CPUPercent: cpuPct,
			MemoryRSS:  rss,
			MemoryRSSH: units.Bytes(rss),
		})
	}

	sec.TopCPU = topBy(entries, topN, func(a, b model.Process) bool {
		return a.CPUPercent > b.CPUPercent
	})
	sec.TopMemory = topBy(entries, topN, func(a, b model.Process) bool {
		return a.MemoryRSS > b.MemoryRSS
	})
	return sec
}

// topBy ranks a copy of entries with a stable sort, so ties keep their
// enumeration order, and truncates to n (n=0 yields an empty list).
func topBy(entries []model.Process, n int, more func(a, b model.Process) bool) []model.Process {
	ranked := make([]model.Process, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool { return more(ranked[i], ranked[j]) })

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
