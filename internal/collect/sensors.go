package collect

import (
	"fmt"
	"path/filepath"

	"github.com/shirou/gopsutil/v3/host"

	"sysreport/internal/model"
)

// batterySecsUnknown mirrors the provider convention for an
// inestimable time-to-empty.
const batterySecsUnknown = -1

func sensorsSection() model.SensorsSection {
	var sec model.SensorsSection

	temps, err := host.SensorsTemperatures()
	if err != nil && len(temps) == 0 {
		sec.TempErr = "not supported"
	} else {
		sec.Temperatures = make([]model.TempReading, 0, len(temps))
		for _, t := range temps {
			sec.Temperatures = append(sec.Temperatures, model.TempReading{
				Label:   t.SensorKey,
				Celsius: t.Temperature,
			})
		}
	}

	sec.Fans = fanReadings()
	sec.Battery = batteryReading()
	return sec
}

// fanReadings walks the hwmon class for fan tachometers. Hosts without
// any fan sensors report an empty list, not an error.
func fanReadings() []model.FanReading {
	fans := make([]model.FanReading, 0)
	inputs, _ := filepath.Glob("/sys/class/hwmon/hwmon*/fan*_input")
	for _, input := range inputs {
		rpm, ok := readSysfsInt(input)
		if !ok {
			continue
		}
		label := filepath.Base(input)
		if chip, ok := readSysfsString(filepath.Join(filepath.Dir(input), "name")); ok {
			label = fmt.Sprintf("%s/%s", chip, label)
		}
		fans = append(fans, model.FanReading{Label: label, RPM: rpm})
	}
	return fans
}

// batteryReading reads the first BAT* power supply. A host without a
// battery returns nil, which is a normal state for desktops/servers.
func batteryReading() *model.Battery {
	capPaths, _ := filepath.Glob("/sys/class/power_supply/BAT*/capacity")
	for _, capPath := range capPaths {
		pct, ok := readSysfsInt(capPath)
		if !ok {
			continue
		}
		base := filepath.Dir(capPath)
		status, _ := readSysfsString(filepath.Join(base, "status"))

		batt := &model.Battery{
			Percent:  float64(pct),
			SecsLeft: batterySecsUnknown,
			Plugged:  status == "Charging" || status == "Full",
		}
		if status == "Discharging" {
			energy, okE := readSysfsInt(filepath.Join(base, "energy_now"))
			power, okP := readSysfsInt(filepath.Join(base, "power_now"))
			if okE && okP && power > 0 {
				batt.SecsLeft = energy * 3600 / power
			}
		}
		return batt
	}
	return nil
}
