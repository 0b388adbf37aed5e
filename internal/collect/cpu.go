package collect

import (
	"time"

	"github.com/shirou/gopsutil/v3/cpu"

	"sysreport/internal/model"
)

const cpufreqDir = "/sys/devices/system/cpu/cpu0/cpufreq"

func cpuSection() model.CPUSection {
	var sec model.CPUSection

	if n, err := cpu.Counts(false); err == nil {
		sec.PhysicalCores = n
	}
	if n, err := cpu.Counts(true); err == nil {
		sec.LogicalCores = n
	} else {
		sec.Err = err.Error()
	}

	infos, _ := cpu.Info()
	sec.Freq = cpuFreq(infos)
	sec.Detailed = cpuDetail(infos)

	// Interval-based load samples. The two calls intentionally use
	// different intervals and are independent measurements; they are
	// not expected to agree.
	if per, err := cpu.Percent(time.Second, true); err == nil {
		sec.PerCore = per
	}
	if total, err := cpu.Percent(500*time.Millisecond, false); err == nil && len(total) > 0 {
		sec.Total = total[0]
	}

	return sec
}

// cpuFreq takes the current frequency from the metrics provider and the
// scaling limits from sysfs; either limit may be absent.
func cpuFreq(infos []cpu.InfoStat) *model.CPUFreq {
	if len(infos) == 0 {
		return nil
	}
	f := &model.CPUFreq{CurrentMHz: round2(infos[0].Mhz)}
	if khz, ok := readSysfsInt(cpufreqDir + "/scaling_min_freq"); ok {
		mhz := round2(float64(khz) / 1000)
		f.MinMHz = &mhz
	}
	if khz, ok := readSysfsInt(cpufreqDir + "/scaling_max_freq"); ok {
		mhz := round2(float64(khz) / 1000)
		f.MaxMHz = &mhz
	}
	return f
}

func cpuDetail(infos []cpu.InfoStat) *model.CPUDetail {
	if len(infos) == 0 || infos[0].ModelName == "" {
		return nil
	}
	return &model.CPUDetail{
		BrandRaw: infos[0].ModelName,
		Vendor:   infos[0].VendorID,
		Flags:    infos[0].Flags,
	}
}
