package collect

import (
	"github.com/shirou/gopsutil/v3/mem"

	"sysreport/internal/model"
	"sysreport/internal/units"
)

func memorySection() model.MemorySection {
	var sec model.MemorySection

	vm, err := mem.VirtualMemory()
	if err != nil {
		sec.Err = err.Error()
		return sec
	}
	sec.TotalBytes = vm.Total
	sec.AvailableBytes = vm.Available
	sec.UsedBytes = vm.Used
	sec.Total = units.Bytes(vm.Total)
	sec.Available = units.Bytes(vm.Available)
	sec.Used = units.Bytes(vm.Used)
	sec.Percent = vm.UsedPercent

	if swap, err := mem.SwapMemory(); err == nil {
		sec.SwapTotalBytes = swap.Total
		sec.SwapUsedBytes = swap.Used
		sec.SwapTotal = units.Bytes(swap.Total)
		sec.SwapUsed = units.Bytes(swap.Used)
		sec.SwapPercent = swap.UsedPercent
	}

	return sec
}
