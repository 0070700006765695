//go:build !linux

package hwinfo

import "github.com/mackerelio/go-osstat/memory"

// availableMemory returns the free memory figure. Only the Linux stats
// expose a separate MemAvailable field.
func availableMemory(stats *memory.Stats) uint64 {
	return stats.Free
}
