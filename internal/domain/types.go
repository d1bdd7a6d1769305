package domain

// SystemInfo describes the host the shell runs on.
type SystemInfo struct {
	Platform string `json:"platform"`
	Arch     string `json:"arch"`
	CPUCount int    `json:"cpu_count"`
	Hostname string `json:"hostname"`
}

// PerformanceInfo is the legacy performance probe. The usage fields are
// placeholders until the frontend switches to SystemMetrics.
type PerformanceInfo struct {
	MemoryUsage string `json:"memory_usage"`
	CPUUsage    string `json:"cpu_usage"`
	Timestamp   int64  `json:"timestamp"`
}

// SystemMetrics carries live host utilization numbers.
type SystemMetrics struct {
	CPUPercent    float64 `json:"cpu_percent"`
	MemoryTotal   uint64  `json:"memory_total"`
	MemoryUsed    uint64  `json:"memory_used"`
	MemoryPercent float64 `json:"memory_percent"`
	ProcessCount  int     `json:"process_count"`
	Timestamp     int64   `json:"timestamp"`
}

// DesktopApp is an entry in the launchable app catalog.
type DesktopApp struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Icon string `json:"icon"`
}

// LaunchRecord is one row of launch history.
type LaunchRecord struct {
	ID           int64  `json:"id"`
	Path         string `json:"path"`
	Name         string `json:"name"`
	LaunchedUnix int64  `json:"launched_unix"`
	OK           bool   `json:"ok"`
	Error        string `json:"error,omitempty"`
}

// WindowInfo is a snapshot of one labeled window in the registry.
type WindowInfo struct {
	Label       string `json:"label"`
	Title       string `json:"title"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	CreatedUnix int64  `json:"created_unix"`
}

// ShortcutBinding is one registered global accelerator.
type ShortcutBinding struct {
	Accelerator string `json:"accelerator"`
	CreatedUnix int64  `json:"created_unix"`
}
