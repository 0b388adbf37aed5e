package collect

import (
	"path/filepath"
	"testing"

	"github.com/shirou/gopsutil/v3/disk"
)

func TestPartitionEntryUsageFailure(t *testing.T) {
	entry := partitionEntry(disk.PartitionStat{
		Device:     "/dev/sdz1",
		Mountpoint: filepath.Join(t.TempDir(), "not-mounted-here"),
		Fstype:     "ext4",
		Opts:       []string{"rw", "relatime"},
	})

	if entry.Err == "" {
		t.Error("failed usage query should set the error marker")
	}
	if entry.Usage != nil {
		t.Errorf("failed usage query should leave Usage nil, got %+v", entry.Usage)
	}
	if entry.Device != "/dev/sdz1" || entry.Fstype != "ext4" {
		t.Errorf("static partition fields must survive the failure, got %+v", entry)
	}
	if entry.Opts != "rw,relatime" {
		t.Errorf("Opts = %q, want rw,relatime", entry.Opts)
	}
}

func TestPartitionEntryUsableMountpoint(t *testing.T) {
	entry := partitionEntry(disk.PartitionStat{
		Device:     "tmp",
		Mountpoint: t.TempDir(),
		Fstype:     "tmpfs",
	})

	if entry.Err != "" {
		t.Fatalf("unexpected error marker: %s", entry.Err)
	}
	if entry.Usage == nil {
		t.Fatal("usage should be populated for a readable mountpoint")
	}
	if entry.Usage.TotalBytes == 0 {
		t.Error("total bytes should be nonzero")
	}
	if entry.Usage.Total == "" || entry.Usage.Used == "" || entry.Usage.Free == "" {
		t.Errorf("humanized fields missing: %+v", entry.Usage)
	}
}
