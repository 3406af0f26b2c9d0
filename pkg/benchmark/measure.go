package benchmark

import "time"

// Job is one unit of work submitted for measurement. A job's error is
// never swallowed: it aborts the measurement, and with it the whole report
// invocation that triggered it.
type Job func() error

// cpuSample is one point-in-time reading of the CPU time consumed by the
// process itself and by its reaped children, in seconds. The platform
// samplers in rusage_unix.go and rusage_windows.go produce these.
type cpuSample struct {
	user        float64
	system      float64
	childUser   float64
	childSystem float64
}

// Measure runs job exactly once, synchronously, and returns the CPU and
// wall-clock deltas observed across the invocation. If job fails no record
// is produced.
func Measure(job Job) (Times, error) {
	before := sampleCPU()
	start := time.Now()
	if err := job(); err != nil {
		return Times{}, err
	}
	elapsed := time.Since(start)
	after := sampleCPU()
	return Times{
		User:           after.user - before.user,
		System:         after.system - before.system,
		ChildrenUser:   after.childUser - before.childUser,
		ChildrenSystem: after.childSystem - before.childSystem,
		Real:           elapsed.Seconds(),
	}, nil
}

// Realtime runs job once and returns only the wall-clock seconds it took.
// Useful where CPU attribution does not matter.
func Realtime(job Job) (float64, error) {
	start := time.Now()
	if err := job(); err != nil {
		return 0, err
	}
	return time.Since(start).Seconds(), nil
}
