package hardware

// BIOS data area locations published by PC-compatible firmware.
const (
	// BaseMemoryAddr holds the 16-bit BIOS-reported low memory size in KB.
	BaseMemoryAddr uint32 = 0x413
	// TickCounterAddr holds the 32-bit periodic timer tick count.
	TickCounterAddr uint32 = 0x46C
)

// extendedMemoryKb is a fixed 128 MiB assumption standing in for real
// extended-memory detection. Known limitation: the reported total is wrong
// on machines with a different amount of extended memory.
const extendedMemoryKb = 128 * 1024

// ticksPerSecond approximates the ~18.2 Hz legacy timer. The uptime
// conversion truncates rather than rounds.
const ticksPerSecond = 18

// MemoryReader reads fixed physical addresses in low memory. Reads are
// infallible by contract; the production implementation requires a
// PC-compatible machine with the BIOS data area mapped.
type MemoryReader interface {
	ReadWord(addr uint32) uint16
	ReadDword(addr uint32) uint32
}

// DetectMemoryKb returns the BIOS-reported low memory size plus the fixed
// extended-memory amount, in KB.
func DetectMemoryKb(mem MemoryReader) uint32 {
	return uint32(mem.ReadWord(BaseMemoryAddr)) + extendedMemoryKb
}

// UptimeSeconds converts the periodic timer tick counter to whole seconds.
func UptimeSeconds(mem MemoryReader) uint32 {
	return mem.ReadDword(TickCounterAddr) / ticksPerSecond
}

// SplitUptime decomposes a second count into hours, minutes, and seconds.
func SplitUptime(uptime uint32) (hours, minutes, seconds uint32) {
	return uptime / 3600, (uptime % 3600) / 60, uptime % 60
}
