//go:build amd64

package hardware

// HostQuery is a RegisterQuery that executes the CPUID instruction on the
// invoking core. Implemented in cpuid_amd64.s.
func HostQuery(selector uint32) (eax, ebx, ecx, edx uint32)
