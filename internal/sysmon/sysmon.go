// Package sysmon provides system and process resource sampling for the REPL
// status command and the server health endpoint.
package sysmon

import (
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/agbru/eulerbatch/internal/metrics"
)

var startTime = time.Now()

// Stats holds a single snapshot of system-wide and process resource usage.
type Stats struct {
	CPUPercent float64       // system CPU usage, 0.0 .. 100.0
	MemPercent float64       // system memory usage, 0.0 .. 100.0
	HeapAlloc  uint64        // process heap bytes in use
	Goroutines int           // current goroutine count
	Uptime     time.Duration // time since process start
}

// Sample collects a single resource snapshot.
// CPU uses interval=0 (delta since last call). System-wide values fall back
// to zero on error; process values always succeed.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}

	snap := metrics.NewMemoryCollector().Snapshot()
	s.HeapAlloc = snap.HeapAlloc
	s.Goroutines = snap.Goroutines
	s.Uptime = time.Since(startTime)
	return s
}
