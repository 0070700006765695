package hwinfo

import "github.com/mackerelio/go-osstat/memory"

// availableMemory returns the amount of memory new processes can claim.
// The kernel's MemAvailable accounts for reclaimable page cache, so a host
// with a warm cache still reports gigabytes available while MemFree is
// near zero. Old kernels without MemAvailable report it as zero, in which
// case MemFree is the best remaining estimate.
func availableMemory(stats *memory.Stats) uint64 {
	if stats.Available > 0 {
		return stats.Available
	}
	return stats.Free
}
