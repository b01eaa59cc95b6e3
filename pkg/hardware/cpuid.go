package hardware

import (
	"encoding/binary"
	"strings"
	"unicode/utf8"
)

// RegisterQuery executes the CPUID instruction for the given function
// selector and returns the resulting EAX, EBX, ECX, and EDX registers.
// Implementations must only be run on cores that support the instruction.
type RegisterQuery func(selector uint32) (eax, ebx, ecx, edx uint32)

const (
	extendedLeafBase = 0x80000000
	brandLeafFirst   = 0x80000002
	brandLeafLast    = 0x80000004
)

// CpuInfo holds the raw CPUID identity of the invoking core. The vendor
// buffer is always fully populated; the brand buffer is either fully
// populated across the three extended leaves or entirely zero.
type CpuInfo struct {
	vendor   [12]byte
	brand    [48]byte
	hasBrand bool
}

// DetectCpu reads the vendor and brand identity through query.
func DetectCpu(query RegisterQuery) CpuInfo {
	var info CpuInfo

	_, ebx, ecx, edx := query(0)
	binary.LittleEndian.PutUint32(info.vendor[0:4], ebx)
	binary.LittleEndian.PutUint32(info.vendor[4:8], edx)
	binary.LittleEndian.PutUint32(info.vendor[8:12], ecx)

	maxExt, _, _, _ := query(extendedLeafBase)
	if maxExt >= brandLeafLast {
		info.hasBrand = true
		for i := uint32(0); i < 3; i++ {
			eax, ebx, ecx, edx := query(brandLeafFirst + i)
			offset := int(i) * 16
			binary.LittleEndian.PutUint32(info.brand[offset:offset+4], eax)
			binary.LittleEndian.PutUint32(info.brand[offset+4:offset+8], ebx)
			binary.LittleEndian.PutUint32(info.brand[offset+8:offset+12], ecx)
			binary.LittleEndian.PutUint32(info.brand[offset+12:offset+16], edx)
		}
	}

	return info
}

// Vendor returns the 12-byte vendor identification string, or "Unknown"
// if the buffer is not valid text.
func (c CpuInfo) Vendor() string {
	if !utf8.Valid(c.vendor[:]) {
		return "Unknown"
	}
	return string(c.vendor[:])
}

// Brand returns the processor brand string with NUL and space padding
// trimmed. CPUs without brand string support report the vendor string.
func (c CpuInfo) Brand() string {
	if !c.hasBrand {
		return c.Vendor()
	}
	if !utf8.Valid(c.brand[:]) {
		return "Unknown"
	}
	return strings.Trim(string(c.brand[:]), "\x00 ")
}

// HasBrand reports whether the CPU advertises the brand string leaves.
func (c CpuInfo) HasBrand() bool {
	return c.hasBrand
}
