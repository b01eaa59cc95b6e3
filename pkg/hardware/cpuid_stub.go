//go:build !amd64

package hardware

// HostQuery is a RegisterQuery for architectures without the CPUID
// instruction. It returns zero registers, leaving the identity empty.
func HostQuery(selector uint32) (eax, ebx, ecx, edx uint32) {
	return 0, 0, 0, 0
}
