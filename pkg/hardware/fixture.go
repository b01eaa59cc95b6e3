package hardware

// FixtureMemory is a MemoryReader backed by a map, for running the probe
// and report pipeline off real hardware.
type FixtureMemory map[uint32]uint32

func (m FixtureMemory) ReadWord(addr uint32) uint16 {
	return uint16(m[addr])
}

func (m FixtureMemory) ReadDword(addr uint32) uint32 {
	return m[addr]
}

// FixtureQuery returns a RegisterQuery serving canned register values
// keyed by function selector. Unknown selectors return zero registers.
func FixtureQuery(regs map[uint32][4]uint32) RegisterQuery {
	return func(selector uint32) (eax, ebx, ecx, edx uint32) {
		r := regs[selector]
		return r[0], r[1], r[2], r[3]
	}
}
