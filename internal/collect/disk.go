package collect

import (
	"strings"

	"github.com/shirou/gopsutil/v3/disk"

	"sysreport/internal/model"
	"sysreport/internal/units"
)

func diskSection() model.DiskSection {
	var sec model.DiskSection

	parts, err := disk.Partitions(false)
	if err != nil {
		sec.Err = err.Error()
	}
	sec.Partitions = make([]model.Partition, 0, len(parts))
	for _, p := range parts {
		sec.Partitions = append(sec.Partitions, partitionEntry(p))
	}

	if counters, err := disk.IOCounters(); err == nil && len(counters) > 0 {
		io := &model.DiskIO{}
		for _, c := range counters {
			io.ReadBytes += c.ReadBytes
			io.WriteBytes += c.WriteBytes
			io.ReadCount += c.ReadCount
			io.WriteCount += c.WriteCount
		}
		io.ReadHuman = units.Bytes(io.ReadBytes)
		io.WriteHuman = units.Bytes(io.WriteBytes)
		sec.IO = io
	}

	return sec
}

// partitionEntry reports the partition even when its usage query fails
// (typically a permission error on the mountpoint); the failure is
// recorded on the entry and does not affect other partitions.
func partitionEntry(p disk.PartitionStat) model.Partition {
	entry := model.Partition{
		Device:     p.Device,
		Mountpoint: p.Mountpoint,
		Fstype:     p.Fstype,
		Opts:       strings.Join(p.Opts, ","),
	}

	usage, err := disk.Usage(p.Mountpoint)
	if err != nil {
		entry.Err = err.Error()
		return entry
	}
	entry.Usage = &model.PartitionUsage{
		TotalBytes: usage.Total,
		UsedBytes:  usage.Used,
		FreeBytes:  usage.Free,
		Total:      units.Bytes(usage.Total),
		Used:       units.Bytes(usage.Used),
		Free:       units.Bytes(usage.Free),
		Percent:    usage.UsedPercent,
	}
	return entry
}
