package hardware

import "testing"

func TestCollect(t *testing.T) {
	query := FixtureQuery(map[uint32][4]uint32{
		0:          genuineIntelRegs(),
		0x80000000: {0x80000000, 0, 0, 0},
	})
	mem := FixtureMemory{
		BaseMemoryAddr:  2048,
		TickCounterAddr: 1800,
	}

	snap := Collect(query, mem)

	if snap.Vendor != "GenuineIntel" {
		t.Fatalf("vendor = %q", snap.Vendor)
	}
	if snap.Brand != "GenuineIntel" {
		t.Fatalf("brand = %q, want vendor fallback", snap.Brand)
	}
	if snap.MemoryKb != 133120 {
		t.Fatalf("memory kb = %d, want 133120", snap.MemoryKb)
	}
	if snap.MemoryMb != 130 {
		t.Fatalf("memory mb = %d, want 130", snap.MemoryMb)
	}
	if snap.UptimeSeconds != 100 {
		t.Fatalf("uptime = %d, want 100", snap.UptimeSeconds)
	}
}
