//go:build windows

package benchmark

import "golang.org/x/sys/windows"

// sampleCPU reads the process's CPU time via GetProcessTimes. Windows has
// no per-process children accounting, so ChildrenUser and ChildrenSystem
// always read zero here.
func sampleCPU() cpuSample {
	var creation, exit, kernel, user windows.Filetime
	if err := windows.GetProcessTimes(windows.CurrentProcess(), &creation, &exit, &kernel, &user); err != nil {
		return cpuSample{}
	}
	return cpuSample{
		user:   filetimeSeconds(user),
		system: filetimeSeconds(kernel),
	}
}

// filetimeSeconds converts a FILETIME span (100ns ticks) to seconds.
func filetimeSeconds(ft windows.Filetime) float64 {
	return float64(int64(ft.HighDateTime)<<32|int64(ft.LowDateTime)) / 1e7
}
