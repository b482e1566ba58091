package pipeline

// State is a step of one submission's lifecycle.
type State string

const (
	StateReceived  State = "RECEIVED"
	StateValidated State = "VALIDATED"
	StateBuilt     State = "BUILT"
	StateResponded State = "RESPONDED"
	StateRejected  State = "REJECTED"
	StateFaulted   State = "FAULTED"
)

// Terminal reports whether no further transition can happen.
func (s State) Terminal() bool {
	switch s {
	case StateResponded, StateRejected, StateFaulted:
		return true
	}
	return false
}
