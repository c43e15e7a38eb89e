// Package sysinfo gathers the host facts shown in the About This Computer
// window.
package sysinfo

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// Unknown is shown for facts that could not be collected.
const Unknown = "unknown"

// HistorySize is the number of CPU samples kept for the usage graph.
const HistorySize = 10

// Info is a snapshot of the host.
type Info struct {
	Hostname    string
	Platform    string
	Kernel      string
	Arch        string
	CPUModel    string
	Cores       int
	MemoryUsed  uint64
	MemoryTotal uint64
	CPUPercent  float64
	Uptime      time.Duration
	CollectedAt time.Time
}

// Collect reads host, memory and CPU facts. It returns whatever it gathered
// along with the first error; missing facts are left as Unknown.
func Collect(ctx context.Context) (Info, error) {
	info := Info{
		Hostname:    Unknown,
		Platform:    Unknown,
		Kernel:      Unknown,
		Arch:        runtime.GOARCH,
		CPUModel:    Unknown,
		CollectedAt: time.Now(),
	}
	var firstErr error
	keep := func(err error) {
		if firstErr == nil && err != nil {
			firstErr = err
		}
	}

	if h, err := host.InfoWithContext(ctx); err != nil {
		keep(fmt.Errorf("failed to read host info: %w", err))
	} else {
		info.Hostname = orUnknown(h.Hostname)
		info.Platform = orUnknown(strings.TrimSpace(h.Platform + " " + h.PlatformVersion))
		info.Kernel = orUnknown(h.KernelVersion)
		if h.KernelArch != "" {
			info.Arch = h.KernelArch
		}
		info.Uptime = time.Duration(h.Uptime) * time.Second
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		keep(fmt.Errorf("failed to read memory: %w", err))
	} else {
		info.MemoryUsed = vm.Used
		info.MemoryTotal = vm.Total
	}

	if cpus, err := cpu.InfoWithContext(ctx); err != nil {
		keep(fmt.Errorf("failed to read cpu info: %w", err))
	} else if len(cpus) > 0 {
		info.CPUModel = orUnknown(strings.TrimSpace(cpus[0].ModelName))
	}
	if n, err := cpu.CountsWithContext(ctx, true); err == nil {
		info.Cores = n
	} else {
		info.Cores = runtime.NumCPU()
	}

	if pct, err := cpu.PercentWithContext(ctx, 0, false); err != nil {
		keep(fmt.Errorf("failed to read cpu usage: %w", err))
	} else if len(pct) > 0 {
		info.CPUPercent = pct[0]
	}

	return info, firstErr
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}

// Memory formats used/total memory, e.g. "3.2 GB / 16.0 GB".
func (i Info) Memory() string {
	if i.MemoryTotal == 0 {
		return Unknown
	}
	return FormatBytes(i.MemoryUsed) + " / " + FormatBytes(i.MemoryTotal)
}

// UptimeString formats the uptime as days, hours and minutes.
func (i Info) UptimeString() string {
	if i.Uptime <= 0 {
		return Unknown
	}
	d := i.Uptime
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

// FormatBytes renders n with a binary unit.
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}

// History keeps the last HistorySize CPU samples.
type History struct {
	samples []float64
}

// Add records a sample, dropping the oldest when full.
func (h *History) Add(pct float64) {
	pct = min(max(pct, 0), 100)
	if len(h.samples) >= HistorySize {
		h.samples = h.samples[1:]
	}
	h.samples = append(h.samples, pct)
}

// Graph returns a fixed-width bar graph of the samples followed by the
// latest percentage.
func (h *History) Graph() string {
	bars := []rune("▁▂▃▄▅▆▇█")
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", HistorySize-len(h.samples)))
	for _, s := range h.samples {
		level := min(int(s/12.5), len(bars)-1)
		b.WriteRune(bars[level])
	}
	current := 0.0
	if n := len(h.samples); n > 0 {
		current = h.samples[n-1]
	}
	return fmt.Sprintf("%s %3.0f%%", b.String(), current)
}
