package model

import "time"

// Report is the full snapshot of one collection run. It is built once,
// read by the renderer and the exporter, and never mutated afterwards.
// Every section key is always present in the JSON output; a failed or
// unsupported data source shows up as a marker field, not a missing key.
type Report struct {
	GeneratedAt time.Time          `json:"generated_at"`
	System      SystemSection      `json:"basic_system"`
	Uptime      UptimeSection      `json:"uptime"`
	CPU         CPUSection         `json:"cpu"`
	Memory      MemorySection      `json:"memory"`
	Disks       DiskSection        `json:"disks"`
	Network     NetworkSection     `json:"network"`
	Sensors     SensorsSection     `json:"sensors"`
	GPU         GPUSection         `json:"gpu"`
	Processes   ProcessSection     `json:"processes"`
	Connections ConnectionsSection `json:"connections"`
}

// SystemSection holds static host identity.
type SystemSection struct {
	System    string `json:"system"`
	NodeName  string `json:"node_name"`
	Release   string `json:"release"`
	Version   string `json:"version"`
	Machine   string `json:"machine"`
	Processor string `json:"processor"`
	User      string `json:"user"`
	Distro    string `json:"distro,omitempty"`
	Err       string `json:"error,omitempty"`
}

type UptimeSection struct {
	BootTime      string `json:"boot_time"`
	UptimeSeconds uint64 `json:"uptime_seconds"`
	UptimeHuman   string `json:"uptime_human"`
	Err           string `json:"error,omitempty"`
}

// CPUFreq is in MHz. Min and Max are nil when the platform does not
// expose cpufreq scaling limits.
type CPUFreq struct {
	CurrentMHz float64  `json:"current_mhz"`
	MinMHz     *float64 `json:"min_mhz"`
	MaxMHz     *float64 `json:"max_mhz"`
}

// CPUDetail is the optional brand/flags block. Availability depends on
// what the metrics provider can read on this platform.
type CPUDetail struct {
	BrandRaw string   `json:"brand_raw"`
	Vendor   string   `json:"vendor"`
	Flags    []string `json:"flags"`
}

// CPUSection mixes static topology with sampled load. PerCore and Total
// are independent samples taken over different intervals, so they are
// not required to agree with each other.
type CPUSection struct {
	PhysicalCores int        `json:"physical_cores"`
	LogicalCores  int        `json:"total_logical_cpus"`
	Freq          *CPUFreq   `json:"cpu_freq"`
	PerCore       []float64  `json:"cpu_usage_per_core"`
	Total         float64    `json:"cpu_total_usage_percent"`
	Detailed      *CPUDetail `json:"detailed"`
	Err           string     `json:"error,omitempty"`
}

// MemorySection keeps raw byte counts for precision alongside the
// humanized strings the report consumers display.
type MemorySection struct {
	TotalBytes     uint64  `json:"total_bytes"`
	AvailableBytes uint64  `json:"available_bytes"`
	UsedBytes      uint64  `json:"used_bytes"`
	Total          string  `json:"total"`
	Available      string  `json:"available"`
	Used           string  `json:"used"`
	Percent        float64 `json:"percent"`
	SwapTotalBytes uint64  `json:"swap_total_bytes"`
	SwapUsedBytes  uint64  `json:"swap_used_bytes"`
	SwapTotal      string  `json:"swap_total"`
	SwapUsed       string  `json:"swap_used"`
	SwapPercent    float64 `json:"swap_percent"`
	Err            string  `json:"error,omitempty"`
}

// PartitionUsage is nil on the owning Partition when the usage query
// failed; the failure reason lives in Partition.Err.
type PartitionUsage struct {
	TotalBytes uint64  `json:"total_bytes"`
	UsedBytes  uint64  `json:"used_bytes"`
	FreeBytes  uint64  `json:"free_bytes"`
	Total      string  `json:"total"`
	Used       string  `json:"used"`
	Free       string  `json:"free"`
	Percent    float64 `json:"percent"`
}

type Partition struct {
	Device     string          `json:"device"`
	Mountpoint string          `json:"mountpoint"`
	Fstype     string          `json:"fstype"`
	Opts       string          `json:"opts"`
	Usage      *PartitionUsage `json:"usage"`
	Err        string          `json:"error,omitempty"`
}

// DiskIO aggregates counters across all block devices.
type DiskIO struct {
	ReadBytes  uint64 `json:"read_bytes"`
	WriteBytes uint64 `json:"write_bytes"`
	ReadHuman  string `json:"io_total_read"`
	WriteHuman string `json:"io_total_write"`
	ReadCount  uint64 `json:"io_counts_read"`
	WriteCount uint64 `json:"io_counts_write"`
}

type DiskSection struct {
	Partitions []Partition `json:"partitions"`
	IO         *DiskIO     `json:"io_counters"`
	Err        string      `json:"error,omitempty"`
}

// Addr is one address bound to an interface. Family is the socket
// family name ("AF_INET", "AF_INET6", "AF_PACKET").
type Addr struct {
	Family    string `json:"family"`
	Address   string `json:"address"`
	Netmask   string `json:"netmask,omitempty"`
	Broadcast string `json:"broadcast,omitempty"`
}

// LinkStats mirrors the per-interface link state. Speed is -1 and
// Duplex empty when sysfs does not expose them (wireless, virtual).
type LinkStats struct {
	Up        bool   `json:"isup"`
	Duplex    string `json:"duplex"`
	SpeedMbps int64  `json:"speed_mbps"`
	MTU       int    `json:"mtu"`
}

// Interface keeps addresses and link stats together. Interfaces are
// reported in the order the address table enumerates them; the primary
// address selection depends on that order.
type Interface struct {
	Name  string     `json:"name"`
	Addrs []Addr     `json:"addresses"`
	Link  *LinkStats `json:"stats"`
}

type NetIO struct {
	BytesSent   uint64 `json:"bytes_sent_raw"`
	BytesRecv   uint64 `json:"bytes_recv_raw"`
	Sent        string `json:"bytes_sent"`
	Recv        string `json:"bytes_recv"`
	PacketsSent uint64 `json:"packets_sent"`
	PacketsRecv uint64 `json:"packets_recv"`
}

type NetworkSection struct {
	Interfaces []Interface `json:"interfaces"`
	IO         *NetIO      `json:"io_counters"`
	Err        string      `json:"error,omitempty"`
}

// TempReading is one sensor value. Label is the provider's sensor key,
// chip name first ("coretemp_core_0").
type TempReading struct {
	Label   string  `json:"label"`
	Celsius float64 `json:"celsius"`
}

type FanReading struct {
	Label string `json:"label"`
	RPM   int64  `json:"rpm"`
}

// Battery state from the power supply class. SecsLeft is -1 when the
// remaining time cannot be estimated.
type Battery struct {
	Percent  float64 `json:"percent"`
	SecsLeft int64   `json:"secsleft"`
	Plugged  bool    `json:"power_plugged"`
}

// SensorsSection: the three reading categories fail independently, so
// each carries its own marker.
type SensorsSection struct {
	Temperatures []TempReading `json:"temperatures"`
	TempErr      string        `json:"temperatures_error,omitempty"`
	Fans         []FanReading  `json:"fans"`
	FanErr       string        `json:"fans_error,omitempty"`
	Battery      *Battery      `json:"battery"`
	BatteryErr   string        `json:"battery_error,omitempty"`
}

// GPU is a single device snapshot. TemperatureC is nil when the driver
// does not report a temperature.
type GPU struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	LoadPercent  float64  `json:"load_percent"`
	MemTotalMB   float64  `json:"memory_total_mb"`
	MemUsedMB    float64  `json:"memory_used_mb"`
	MemFreeMB    float64  `json:"memory_free_mb"`
	MemUtilPct   float64  `json:"memory_util_percent"`
	TemperatureC *float64 `json:"temperature_c"`
}

// GPUSection: a host without a usable GPU provider is a normal state,
// reported with Available=false and a note, not an error.
type GPUSection struct {
	Available bool   `json:"available"`
	Note      string `json:"note,omitempty"`
	Err       string `json:"error,omitempty"`
	GPUs      []GPU  `json:"gpus,omitempty"`
}

// Process is one entry in the top-N rankings.
type Process struct {
	PID        int32   `json:"pid"`
	Name       string  `json:"name"`
	User       string  `json:"user"`
	CPUPercent float64 `json:"cpu_percent"`
	MemoryRSS  uint64  `json:"memory_rss"`
	MemoryRSSH string  `json:"memory_rss_human"`
}

type ProcessSection struct {
	TopCPU    []Process `json:"top_cpu"`
	TopMemory []Process `json:"top_memory"`
	Err       string    `json:"error,omitempty"`
}

// Socket is a listening inet socket.
type Socket struct {
	FD     uint32 `json:"fd"`
	Family string `json:"family"`
	Type   string `json:"type"`
	LAddr  string `json:"laddr"`
	RAddr  string `json:"raddr,omitempty"`
	PID    int32  `json:"pid"`
}

type ConnectionsSection struct {
	Listening []Socket `json:"listening_sockets"`
	Err       string   `json:"error,omitempty"`
}
