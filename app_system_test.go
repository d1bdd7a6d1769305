package main

import (
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

func TestGetSystemInfo(t *testing.T) {
	app := NewApp()
	info, err := app.GetSystemInfo()
	if err != nil {
		t.Fatalf("system info failed: %v", err)
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
}

func TestGetPerformanceInfoIsStubbed(t *testing.T) {
	app := NewApp()
	before := time.Now().Unix()
	perf := app.GetPerformanceInfo()
	after := time.Now().Unix()

	if perf.MemoryUsage != "Unknown" {
		t.Fatalf("memory usage must be the literal placeholder, got %q", perf.MemoryUsage)
	}
	if perf.CPUUsage != "Unknown" {
		t.Fatalf("cpu usage must be the literal placeholder, got %q", perf.CPUUsage)
	}
	if perf.Timestamp < before || perf.Timestamp > after {
		t.Fatalf("timestamp %d outside [%d, %d]", perf.Timestamp, before, after)
	}
}

func TestGetSystemMetricsWithoutContext(t *testing.T) {
	app := NewApp()
	metrics, err := app.GetSystemMetrics()
	if err != nil {
		t.Fatalf("metrics failed: %v", err)
	}
	if metrics.MemoryTotal == 0 {
		t.Fatal("memory total must be non-zero")
	}
}

func TestNotifyRequiresTitle(t *testing.T) {
	app := NewApp()
	if err := app.Notify("  ", "body"); err == nil {
		t.Fatal("expected error for blank title")
	}
}
