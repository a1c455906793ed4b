// Package system probes the host the evaluation harness runs on.
package system

import (
	"fmt"
	"log"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// RecommendedWorkers returns the number of logical CPUs, falling back to
// runtime.NumCPU when the host cannot be queried.
func RecommendedWorkers() int {
	n, err := cpu.Counts(true)
	if err != nil || n <= 0 {
		if err != nil {
			log.Printf("[!] cpu count unavailable, using runtime.NumCPU: %v", err)
		}
		return runtime.NumCPU()
	}
	return n
}

// Workers resolves a configured worker count. Zero or less picks
// RecommendedWorkers.
func Workers(configured int) int {
	if configured > 0 {
		return configured
	}
	return RecommendedWorkers()
}

// Memory is a snapshot of host and process memory
type Memory struct {
	TotalMB     uint64
	AvailableMB uint64
	UsedPercent float64
	HeapMB      uint64
	NumGC       uint32
}

func (m Memory) String() string {
	return fmt.Sprintf("host %d/%d MB free (%.1f%% used), heap %d MB, gc %d",
		m.AvailableMB, m.TotalMB, m.UsedPercent, m.HeapMB, m.NumGC)
}

// MemoryReport samples memory. Host figures stay zero when the host cannot
// be queried; the process figures are always filled.
func MemoryReport() Memory {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	out := Memory{
		HeapMB: ms.HeapAlloc >> 20,
		NumGC:  ms.NumGC,
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		log.Printf("[!] host memory unavailable: %v", err)
		return out
	}
	out.TotalMB = vm.Total >> 20
	out.AvailableMB = vm.Available >> 20
	out.UsedPercent = vm.UsedPercent
	return out
}
