//go:build unix

package benchmark

import "golang.org/x/sys/unix"

// sampleCPU reads the process's own and its reaped children's CPU time via
// getrusage. The calls only fail on a bad who argument, so errors are
// ignored and read as zero.
func sampleCPU() cpuSample {
	var self, children unix.Rusage
	_ = unix.Getrusage(unix.RUSAGE_SELF, &self)
	_ = unix.Getrusage(unix.RUSAGE_CHILDREN, &children)
	return cpuSample{
		user:        timevalSeconds(self.Utime),
		system:      timevalSeconds(self.Stime),
		childUser:   timevalSeconds(children.Utime),
		childSystem: timevalSeconds(children.Stime),
	}
}

func timevalSeconds(tv unix.Timeval) float64 {
	return float64(tv.Sec) + float64(tv.Usec)/1e6
}
