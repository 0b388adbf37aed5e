// Package render turns a report into console text. Section order is
// fixed: identity, uptime, CPU, memory, disks, network, GPU. Sensor,
// process, and connection data stay JSON-only.
package render

import (
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sysreport/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

const placeholder = "-"

// Render produces the full console summary for a report.
func Render(r *model.Report) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("System Report"))
	b.WriteString("  ")
	b.WriteString(subtleStyle.Render(r.GeneratedAt.Format("Mon Jan 2 15:04:05 2006")))
	b.WriteString("\n\n")

	writeSystem(&b, r.System)
	writeUptime(&b, r.Uptime)
	writeCPU(&b, r.CPU)
	writeMemory(&b, r.Memory)
	writeDisks(&b, r.Disks)
	writeNetwork(&b, r.Network)
	writeGPU(&b, r.GPU)

	return b.String()
}

func header(b *strings.Builder, name string) {
	b.WriteString(headerStyle.Render("── " + name + " ──"))
	b.WriteByte('\n')
}

func writeSystem(b *strings.Builder, sec model.SystemSection) {
	header(b, "System")
	fmt.Fprintf(b, "%s %s (%s) - user: %s\n",
		orDash(sec.System), orDash(sec.Release), orDash(sec.Machine), orDash(sec.User))
	if sec.Distro != "" {
		fmt.Fprintf(b, "Distro: %s\n", sec.Distro)
	}
	b.WriteByte('\n')
}

func writeUptime(b *strings.Builder, sec model.UptimeSection) {
	header(b, "Uptime")
	fmt.Fprintf(b, "Up %s | Boot: %s\n\n", orDash(sec.UptimeHuman), orDash(sec.BootTime))
}

func writeCPU(b *strings.Builder, sec model.CPUSection) {
	header(b, "CPU")
	fmt.Fprintf(b, "Cores: %d physical / %d logical\n", sec.PhysicalCores, sec.LogicalCores)
	if sec.Freq != nil {
		fmt.Fprintf(b, "Frequency: %.2f MHz\n", sec.Freq.CurrentMHz)
	}
	fmt.Fprintf(b, "Total usage: %s\n", pct(sec.Total))
	if len(sec.PerCore) > 0 {
		cores := make([]string, len(sec.PerCore))
		for i, v := range sec.PerCore {
			cores[i] = pct(v)
		}
		fmt.Fprintf(b, "Per core: %s\n", strings.Join(cores, " "))
	}
	if sec.Detailed != nil && sec.Detailed.BrandRaw != "" {
		fmt.Fprintf(b, "Model: %s\n", sec.Detailed.BrandRaw)
	}
	b.WriteByte('\n')
}

func writeMemory(b *strings.Builder, sec model.MemorySection) {
	header(b, "Memory")
	fmt.Fprintf(b, "RAM: %s / %s (%s)\n", orDash(sec.Used), orDash(sec.Total), pct(sec.Percent))
	fmt.Fprintf(b, "Swap: %s / %s (%s)\n\n", orDash(sec.SwapUsed), orDash(sec.SwapTotal), pct(sec.SwapPercent))
}

func writeDisks(b *strings.Builder, sec model.DiskSection) {
	header(b, "Disks")
	for _, p := range sec.Partitions {
		size, used := placeholder, placeholder
		if p.Usage != nil {
			size = p.Usage.Total
			used = pct(p.Usage.Percent)
		}
		fmt.Fprintf(b, "%s  type: %s  size: %s  used: %s\n",
			p.Device, orDash(p.Fstype), size, used)
	}
	if sec.IO != nil {
		fmt.Fprintf(b, "IO: read %s written %s\n", sec.IO.ReadHuman, sec.IO.WriteHuman)
	}
	b.WriteByte('\n')
}

func writeNetwork(b *strings.Builder, sec model.NetworkSection) {
	header(b, "Network")

	if addr, ifname, ok := PrimaryIPv4(sec); ok {
		fmt.Fprintf(b, "IPv4: %s (%s)\n", addr, ifname)
	} else {
		b.WriteString("IPv4: no address\n")
	}
	if v6, ok := PrimaryIPv6(sec); ok {
		fmt.Fprintf(b, "IPv6: %s\n", v6)
	}
	if VPNActive(sec) {
		b.WriteString("VPN: active\n")
	} else {
		b.WriteString("VPN: none\n")
	}
	if sec.IO != nil {
		fmt.Fprintf(b, "IO: sent %s recv %s\n", sec.IO.Sent, sec.IO.Recv)
	}
	b.WriteByte('\n')
}

func writeGPU(b *strings.Builder, sec model.GPUSection) {
	header(b, "GPU")
	if !sec.Available {
		msg := sec.Note
		if msg == "" {
			msg = sec.Err
		}
		if msg == "" {
			msg = "no GPU info"
		}
		b.WriteString(msg + "\n")
		return
	}
	for _, g := range sec.GPUs {
		temp := placeholder
		if g.TemperatureC != nil {
			temp = fmt.Sprintf("%.0fC", *g.TemperatureC)
		}
		fmt.Fprintf(b, "%s | load %s | VRAM %.0fMB / %.0fMB | temp %s\n",
			orDash(g.Name), pct(g.LoadPercent), g.MemUsedMB, g.MemTotalMB, temp)
	}
}

// PrimaryIPv4 selects the summary address: the first IPv4 that is not
// in 127/8, scanning interfaces in table order. When no interface
// qualifies it falls back to resolving the local hostname, rejecting a
// loopback result. ok is false when nothing qualifies.
func PrimaryIPv4(sec model.NetworkSection) (addr, ifname string, ok bool) {
	for _, iface := range sec.Interfaces {
		for _, a := range iface.Addrs {
			if a.Family == "AF_INET" && a.Address != "" && !strings.HasPrefix(a.Address, "127.") {
				return a.Address, iface.Name, true
			}
		}
	}
	if h := hostnameIPv4(); h != "" && !strings.HasPrefix(h, "127.") {
		return h, "hostname", true
	}
	return "", "", false
}

// PrimaryIPv6 returns the first IPv6 address in interface order.
// Loopback is deliberately not filtered here; this matches the
// documented selection behavior.
func PrimaryIPv6(sec model.NetworkSection) (string, bool) {
	for _, iface := range sec.Interfaces {
		for _, a := range iface.Addrs {
			if a.Family == "AF_INET6" && a.Address != "" {
				return a.Address, true
			}
		}
	}
	return "", false
}

// VPNActive flags any interface whose name contains "VPN", case
// insensitively. Purely a naming heuristic.
func VPNActive(sec model.NetworkSection) bool {
	for _, iface := range sec.Interfaces {
		if strings.Contains(strings.ToUpper(iface.Name), "VPN") {
			return true
		}
	}
	return false
}

// hostnameIPv4 is swapped out in tests.
var hostnameIPv4 = func() string {
	host, err := os.Hostname()
	if err != nil {
		return ""
	}
	addrs, err := net.LookupHost(host)
	if err != nil {
		return ""
	}
	for _, a := range addrs {
		if ip := net.ParseIP(a); ip != nil && ip.To4() != nil {
			return a
		}
	}
	return ""
}

func pct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func orDash(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}
