// Package sysinfo probes the host the benchmarks run on, so reports can be
// read in context (a 2-core laptop and a 64-core server print very
// different numbers for the same job).
package sysinfo

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Info describes the benchmark host.
type Info struct {
	Hostname   string `json:"hostname"`
	OS         string `json:"os"`
	Arch       string `json:"arch"`
	Platform   string `json:"platform,omitempty"`
	CPUModel   string `json:"cpu_model,omitempty"`
	CPUThreads int    `json:"cpu_threads"`
	RAMBytes   uint64 `json:"ram_total_bytes,omitempty"`
}

// Collect gathers host information. Individual probes failing is not an
// error; their fields just stay empty.
func Collect() (*Info, error) {
	info := &Info{
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		CPUThreads: runtime.NumCPU(),
	}

	if h, err := host.Info(); err == nil {
		info.Hostname = h.Hostname
		info.Platform = fmt.Sprintf("%s %s", h.Platform, h.PlatformVersion)
	}
	if cpus, err := cpu.Info(); err == nil && len(cpus) > 0 {
		info.CPUModel = cpus[0].ModelName
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.RAMBytes = vm.Total
	}

	return info, nil
}

// Summary returns a one-line description for run banners.
func (i *Info) Summary() string {
	cpuInfo := fmt.Sprintf("%d threads", i.CPUThreads)
	if i.CPUModel != "" {
		cpuInfo = fmt.Sprintf("%s (%d threads)", i.CPUModel, i.CPUThreads)
	}
	ramGB := float64(i.RAMBytes) / (1024 * 1024 * 1024)
	return fmt.Sprintf("%s | %s/%s | %s | %.1f GB RAM", i.Hostname, i.OS, i.Arch, cpuInfo, ramGB)
}
