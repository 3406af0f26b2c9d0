// Package benchmark measures the CPU and wall-clock cost of units of work
// and renders the results as aligned tabular reports.
//
// The package is strictly sequential: jobs run one at a time, in submission
// order, because concurrent execution would corrupt CPU-time attribution.
package benchmark

// Times holds the five time components of one measurement: CPU time spent
// by the process itself (User, System), CPU time spent by its reaped child
// processes (ChildrenUser, ChildrenSystem), and wall-clock elapsed time
// (Real). All values are in seconds.
type Times struct {
	User           float64
	System         float64
	ChildrenUser   float64
	ChildrenSystem float64
	Real           float64
	Label          string
}

// Total returns the sum of all four CPU-time components.
func (t Times) Total() float64 {
	return t.User + t.System + t.ChildrenUser + t.ChildrenSystem
}

// Add returns the memberwise sum of t and o. The result keeps t's label.
func (t Times) Add(o Times) Times {
	return t.memberwise(o, func(a, b float64) float64 { return a + b })
}

// Sub returns the memberwise difference of t and o.
func (t Times) Sub(o Times) Times {
	return t.memberwise(o, func(a, b float64) float64 { return a - b })
}

// Mul returns t with every time component multiplied by n.
func (t Times) Mul(n float64) Times {
	return t.scale(func(a float64) float64 { return a * n })
}

// Div returns t with every time component divided by n, typically used to
// average an accumulated record over its number of runs.
func (t Times) Div(n float64) Times {
	return t.scale(func(a float64) float64 { return a / n })
}

// AddIn measures one invocation of job and folds the observed deltas into
// t, preserving whatever t already held. It returns t so accumulation
// loops can chain on the same record.
func (t *Times) AddIn(job Job) (*Times, error) {
	m, err := Measure(job)
	if err != nil {
		return t, err
	}
	*t = t.Add(m)
	return t, nil
}

// FieldNames lists the keys of Fields in their canonical order.
var FieldNames = []string{"utime", "stime", "cutime", "cstime", "real", "label"}

// Fields exports the record as a field-name to value mapping. FieldNames
// gives the canonical key order.
func (t Times) Fields() map[string]interface{} {
	return map[string]interface{}{
		"utime":  t.User,
		"stime":  t.System,
		"cutime": t.ChildrenUser,
		"cstime": t.ChildrenSystem,
		"real":   t.Real,
		"label":  t.Label,
	}
}

// String renders the record with the default row template.
func (t Times) String() string {
	return t.Format(DefaultFormat)
}

func (t Times) memberwise(o Times, op func(a, b float64) float64) Times {
	return Times{
		User:           op(t.User, o.User),
		System:         op(t.System, o.System),
		ChildrenUser:   op(t.ChildrenUser, o.ChildrenUser),
		ChildrenSystem: op(t.ChildrenSystem, o.ChildrenSystem),
		Real:           op(t.Real, o.Real),
		Label:          t.Label,
	}
}

func (t Times) scale(op func(a float64) float64) Times {
	return Times{
		User:           op(t.User),
		System:         op(t.System),
		ChildrenUser:   op(t.ChildrenUser),
		ChildrenSystem: op(t.ChildrenSystem),
		Real:           op(t.Real),
		Label:          t.Label,
	}
}
