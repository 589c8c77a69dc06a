package runner

import "fmt"

// Status is the outcome of an example. An example starts Pending, becomes
// Running, and ends in one of the final states.
type Status int

const (
	Pending Status = iota
	Running
	Passed
	Failed
	Errored
	TimedOut
	Ignored
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Running:
		return "running"
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Errored:
		return "errored"
	case TimedOut:
		return "timed_out"
	case Ignored:
		return "ignored"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Final reports whether s is an end state.
func (s Status) Final() bool {
	return s >= Passed
}

// Successful reports whether s does not count as a failure.
func (s Status) Successful() bool {
	return s == Passed || s == Ignored
}

// finalStatuses lists the end states, in reporting order.
var finalStatuses = []Status{Passed, Failed, Errored, TimedOut, Ignored}
