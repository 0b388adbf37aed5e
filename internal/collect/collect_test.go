package collect

import (
	"testing"

	"sysreport/internal/config"
)

// Runs the real collectors end to end; the CPU sampling intervals make
// this take a bit over a second.
func TestCollectEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping live collection in short mode")
	}

	r := Collect(config.Default())

	if r.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not set")
	}
	if r.System.Err == "" && r.System.System == "" {
		t.Error("system section has neither data nor an error marker")
	}
	if r.Memory.Err == "" && r.Memory.Total == "" {
		t.Error("memory section has neither data nor an error marker")
	}
	if r.Disks.Err == "" && r.Disks.Partitions == nil {
		t.Error("disk section has neither data nor an error marker")
	}
	if len(r.Processes.TopCPU) > config.DefaultTopN {
		t.Errorf("top CPU ranking longer than N: %d", len(r.Processes.TopCPU))
	}
	if len(r.Processes.TopMemory) > config.DefaultTopN {
		t.Errorf("top memory ranking longer than N: %d", len(r.Processes.TopMemory))
	}
	if r.Connections.Listening == nil && r.Connections.Err == "" {
		t.Error("connections section has neither data nor an error marker")
	}
}
