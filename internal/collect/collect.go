// Package collect queries the OS metrics provider once per category and
// assembles the report. Categories fail independently: an unavailable
// source becomes a marker in its section and never stops its siblings.
package collect

import (
	"log/slog"
	"time"

	"sysreport/internal/config"
	"sysreport/internal/model"
)

// Collect builds the full report. The CPU section blocks for about 1.5s
// while the load percentages are sampled over their intervals.
func Collect(cfg config.Config) *model.Report {
	r := &model.Report{GeneratedAt: time.Now()}

	r.System = systemSection()
	r.Uptime = uptimeSection()
	r.CPU = cpuSection()
	r.Memory = memorySection()
	r.Disks = diskSection()
	r.Network = networkSection()
	r.Sensors = sensorsSection()
	r.GPU = gpuSection(detectGPU())
	r.Processes = processSection(cfg.TopN)
	r.Connections = connectionsSection()

	warnDegraded("basic_system", r.System.Err)
	warnDegraded("uptime", r.Uptime.Err)
	warnDegraded("cpu", r.CPU.Err)
	warnDegraded("memory", r.Memory.Err)
	warnDegraded("disks", r.Disks.Err)
	warnDegraded("network", r.Network.Err)
	warnDegraded("processes", r.Processes.Err)
	warnDegraded("connections", r.Connections.Err)

	return r
}

func warnDegraded(section, errText string) {
	if errText != "" {
		slog.Warn("metrics source degraded", "section", section, "error", errText)
	}
}
