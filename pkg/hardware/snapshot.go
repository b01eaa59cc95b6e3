package hardware

// Snapshot holds one collection of every probe. Nothing is cached; each
// Collect call reads the hardware again.
type Snapshot struct {
	Vendor        string      `json:"vendor" yaml:"vendor"`
	Brand         string      `json:"brand" yaml:"brand"`
	MemoryKb      uint32      `json:"memory-kb" yaml:"memory-kb"`
	MemoryMb      uint32      `json:"memory-mb" yaml:"memory-mb"`
	UptimeSeconds uint32      `json:"uptime-seconds" yaml:"uptime-seconds"`
	Host          HostDetails `json:"host" yaml:"host"`
}

// Collect runs every probe once against the given capabilities.
func Collect(query RegisterQuery, mem MemoryReader) Snapshot {
	cpu := DetectCpu(query)
	memoryKb := DetectMemoryKb(mem)

	return Snapshot{
		Vendor:        cpu.Vendor(),
		Brand:         cpu.Brand(),
		MemoryKb:      memoryKb,
		MemoryMb:      memoryKb / 1024,
		UptimeSeconds: UptimeSeconds(mem),
		Host:          DetectHost(),
	}
}
