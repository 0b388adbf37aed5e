package collect

import (
	"fmt"
	"os/user"
	"time"

	"github.com/shirou/gopsutil/v3/host"
	"golang.org/x/sys/unix"

	"sysreport/internal/model"
)

func systemSection() model.SystemSection {
	var sec model.SystemSection

	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		sec.Err = err.Error()
	} else {
		sec.System = charsToString(uts.Sysname[:])
		sec.NodeName = charsToString(uts.Nodename[:])
		sec.Release = charsToString(uts.Release[:])
		sec.Version = charsToString(uts.Version[:])
		sec.Machine = charsToString(uts.Machine[:])
	}

	sec.Processor = sec.Machine
	if sec.Processor == "" {
		sec.Processor = "unknown"
	}

	if u, err := user.Current(); err == nil {
		sec.User = u.Username
	}

	if info, err := host.Info(); err == nil && info.Platform != "" {
		sec.Distro = info.Platform
		if info.PlatformVersion != "" {
			sec.Distro += " " + info.PlatformVersion
		}
	}

	return sec
}

func uptimeSection() model.UptimeSection {
	var sec model.UptimeSection

	info, err := host.Info()
	if err != nil {
		sec.Err = err.Error()
		return sec
	}

	boot := time.Unix(int64(info.BootTime), 0)
	sec.BootTime = boot.Format(time.RFC3339)
	sec.UptimeSeconds = info.Uptime
	sec.UptimeHuman = formatUptime(info.Uptime)
	return sec
}

// formatUptime renders elapsed seconds as "N days, H:MM:SS", dropping
// the day part when the host has been up for less than a day.
func formatUptime(secs uint64) string {
	days := secs / 86400
	hours := secs % 86400 / 3600
	mins := secs % 3600 / 60
	s := secs % 60

	hms := fmt.Sprintf("%d:%02d:%02d", hours, mins, s)
	switch days {
	case 0:
		return hms
	case 1:
		return "1 day, " + hms
	default:
		return fmt.Sprintf("%d days, %s", days, hms)
	}
}
