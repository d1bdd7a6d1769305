package sysinfo

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"

	"nyxshell/internal/domain"
)

// cpuSampleInterval is how long the CPU percent probe observes the host.
// Zero would compare against the previous call instead, which reads as 0%
// on the first invocation.
const cpuSampleInterval = 200 * time.Millisecond

// CollectMetrics samples live utilization numbers.
func CollectMetrics(ctx context.Context) (domain.SystemMetrics, error) {
	cpuPercents, err := cpu.PercentWithContext(ctx, cpuSampleInterval, false)
	if err != nil {
		return domain.SystemMetrics{}, fmt.Errorf("sample cpu: %w", err)
	}
	var cpuPercent float64
	if len(cpuPercents) > 0 {
		cpuPercent = cpuPercents[0]
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return domain.SystemMetrics{}, fmt.Errorf("read memory: %w", err)
	}

	metrics := domain.SystemMetrics{
		CPUPercent:    cpuPercent,
		MemoryTotal:   vm.Total,
		MemoryUsed:    vm.Used,
		MemoryPercent: vm.UsedPercent,
		Timestamp:     time.Now().Unix(),
	}

	// Process count is best effort; some platforms restrict enumeration.
	if pids, pidErr := process.PidsWithContext(ctx); pidErr == nil {
		metrics.ProcessCount = len(pids)
	}

	return metrics, nil
}
