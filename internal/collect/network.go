package collect

import (
	"net"

	psnet "github.com/shirou/gopsutil/v3/net"

	"sysreport/internal/model"
	"sysreport/internal/units"
)

func networkSection() model.NetworkSection {
	var sec model.NetworkSection

	ifaces, err := psnet.Interfaces()
	if err != nil {
		sec.Err = err.Error()
	}
	sec.Interfaces = make([]model.Interface, 0, len(ifaces))
	for _, stat := range ifaces {
		sec.Interfaces = append(sec.Interfaces, interfaceEntry(stat))
	}

	if counters, err := psnet.IOCounters(false); err == nil && len(counters) > 0 {
		c := counters[0]
		sec.IO = &model.NetIO{
			BytesSent:   c.BytesSent,
			BytesRecv:   c.BytesRecv,
			Sent:        units.Bytes(c.BytesSent),
			Recv:        units.Bytes(c.BytesRecv),
			PacketsSent: c.PacketsSent,
			PacketsRecv: c.PacketsRecv,
		}
	}

	return sec
}

func interfaceEntry(stat psnet.InterfaceStat) model.Interface {
	entry := model.Interface{
		Name:  stat.Name,
		Addrs: make([]model.Addr, 0, len(stat.Addrs)+1),
		Link:  linkStats(stat),
	}
	for _, a := range stat.Addrs {
		if parsed, ok := parseAddr(a.Addr); ok {
			entry.Addrs = append(entry.Addrs, parsed)
		}
	}
	if stat.HardwareAddr != "" {
		entry.Addrs = append(entry.Addrs, model.Addr{
			Family:  "AF_PACKET",
			Address: stat.HardwareAddr,
		})
	}
	return entry
}

// parseAddr turns an interface address (CIDR or bare IP) into the
// family-tagged form. IPv4 entries get a dotted netmask and a computed
// broadcast address.
func parseAddr(s string) (model.Addr, bool) {
	ip, ipnet, err := net.ParseCIDR(s)
	if err != nil {
		if ip = net.ParseIP(s); ip == nil {
			return model.Addr{}, false
		}
	}

	addr := model.Addr{Address: ip.String()}
	if v4 := ip.To4(); v4 != nil {
		addr.Family = "AF_INET"
		if ipnet != nil && len(ipnet.Mask) == net.IPv4len {
			addr.Netmask = net.IP(ipnet.Mask).String()
			bcast := make(net.IP, net.IPv4len)
			for i := range bcast {
				bcast[i] = v4[i] | ^ipnet.Mask[i]
			}
			addr.Broadcast = bcast.String()
		}
	} else {
		addr.Family = "AF_INET6"
		if ipnet != nil {
			addr.Netmask = net.IP(ipnet.Mask).String()
		}
	}
	return addr, true
}

// linkStats pulls speed and duplex from sysfs; virtual and wireless
// links usually expose neither, which renders as -1 / "".
func linkStats(stat psnet.InterfaceStat) *model.LinkStats {
	link := &model.LinkStats{MTU: stat.MTU, SpeedMbps: -1}
	for _, f := range stat.Flags {
		if f == "up" {
			link.Up = true
			break
		}
	}

	base := "/sys/class/net/" + stat.Name
	if speed, ok := readSysfsInt(base + "/speed"); ok && speed > 0 {
		link.SpeedMbps = speed
	}
	if duplex, ok := readSysfsString(base + "/duplex"); ok {
		link.Duplex = duplex
	}
	return link
}
