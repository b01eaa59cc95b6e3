package hardware

import (
	"github.com/klauspost/cpuid/v2"
)

// HostDetails holds decoded processor facts for the export surface. The
// fetch report works from raw CPUID registers; this is the richer view.
type HostDetails struct {
	Brand          string   `json:"brand" yaml:"brand"`
	Vendor         string   `json:"vendor" yaml:"vendor"`
	PhysicalCores  int      `json:"physical-cores" yaml:"physical-cores"`
	LogicalCores   int      `json:"logical-cores" yaml:"logical-cores"`
	ThreadsPerCore int      `json:"threads-per-core" yaml:"threads-per-core"`
	FrequencyMHz   int64    `json:"frequency-mhz,omitempty" yaml:"frequency-mhz,omitempty"`
	CacheLine      int      `json:"cache-line" yaml:"cache-line"`
	CacheL1D       int      `json:"cache-l1d" yaml:"cache-l1d"`
	CacheL2        int      `json:"cache-l2" yaml:"cache-l2"`
	CacheL3        int      `json:"cache-l3" yaml:"cache-l3"`
	Features       []string `json:"features,omitempty" yaml:"features,omitempty"`
}

// DetectHost returns processor details for the invoking host.
func DetectHost() HostDetails {
	c := cpuid.CPU
	return HostDetails{
		Brand:          c.BrandName,
		Vendor:         c.VendorString,
		PhysicalCores:  c.PhysicalCores,
		LogicalCores:   c.LogicalCores,
		ThreadsPerCore: c.ThreadsPerCore,
		FrequencyMHz:   c.Hz / 1_000_000,
		CacheLine:      c.CacheLine,
		CacheL1D:       c.Cache.L1D,
		CacheL2:        c.Cache.L2,
		CacheL3:        c.Cache.L3,
		Features:       c.FeatureSet(),
	}
}
