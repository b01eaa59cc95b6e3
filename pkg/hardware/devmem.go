package hardware

import (
	"encoding/binary"
	"fmt"
	"os"
)

// DevMem is a MemoryReader over the /dev/mem physical memory device.
type DevMem struct {
	f *os.File
}

// OpenDevMem opens the physical memory device for reading. It normally
// requires root.
func OpenDevMem() (*DevMem, error) {
	f, err := os.OpenFile("/dev/mem", os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("opening /dev/mem: %w", err)
	}
	return &DevMem{f: f}, nil
}

// Close closes the underlying device.
func (d *DevMem) Close() error {
	return d.f.Close()
}

// ReadWord reads a 16-bit little-endian value from an absolute physical
// address. Unreadable addresses yield zero.
func (d *DevMem) ReadWord(addr uint32) uint16 {
	var buf [2]byte
	if _, err := d.f.ReadAt(buf[:], int64(addr)); err != nil {
		return 0
	}
	return binary.LittleEndian.Uint16(buf[:])
}

// ReadDword reads a 32-bit little-endian value from an absolute physical
// address. The read is issued as one 4-byte access, but /dev/mem gives no
// atomicity guarantee against the timer interrupt that updates the tick
// counter, so a torn value is possible where the platform cannot do an
// atomic 4-byte load.
func (d *DevMem) ReadDword(addr uint32) uint32 {
	var buf [4]byte
	if _, err := d.f.ReadAt(buf[:], int64(addr)); err != nil {
		return 0
	}
	return binary.LittleEndian.Uint32(buf[:])
}
