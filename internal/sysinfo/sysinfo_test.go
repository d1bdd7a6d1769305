package sysinfo

import (
	"context"
	"testing"
	"time"
)

var knownPlatforms = map[string]bool{
	"windows": true,
	"darwin":  true,
	"linux":   true,
	"freebsd": true,
	"openbsd": true,
	"netbsd":  true,
}

func TestCollect(t *testing.T) {
	info, err := Collect()
	if err != nil {
		t.Fatalf("collect failed: %v", err)
	}
	if !knownPlatforms[info.Platform] {
		t.Fatalf("platform %q not in known OS set", info.Platform)
	}
	if info.CPUCount < 1 {
		t.Fatalf("cpu count must be >= 1, got %d", info.CPUCount)
	}
	if info.Hostname == "" {
		t.Fatal("hostname must not be empty")
	}
	if info.Arch == "" {
		t.Fatal("arch must not be empty")
	}
}

func TestCollectMetrics(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	metrics, err := CollectMetrics(ctx)
	if err != nil {
		t.Fatalf("collect metrics failed: %v", err)
	}
	if metrics.MemoryTotal == 0 {
		t.Fatal("memory total must be non-zero")
	}
	if metrics.MemoryPercent < 0 || metrics.MemoryPercent > 100 {
		t.Fatalf("memory percent out of range: %f", metrics.MemoryPercent)
	}
	if metrics.CPUPercent < 0 || metrics.CPUPercent > 100 {
		t.Fatalf("cpu percent out of range: %f", metrics.CPUPercent)
	}
	if metrics.Timestamp == 0 {
		t.Fatal("timestamp not set")
	}
}
