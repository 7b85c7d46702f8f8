package gen

import "fmt"

// RangeError reports a coordinate range whose max is below its min on an
// axis. Generators return it before producing any output.
type RangeError struct {
	Axis     string
	Min, Max float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("gen: %s range max (%v) is less than min (%v)", e.Axis, e.Max, e.Min)
}

// ArgError reports a generator argument outside its valid domain.
type ArgError struct {
	Arg    string
	Reason string
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("gen: invalid %s: %s", e.Arg, e.Reason)
}
