package bootstrap

// State describes the bootstrap progress. The states are walked strictly in
// order; a failed step moves the launcher to StateFailed and no later step
// runs.
type State int

const (
	StateStarting State = iota
	StateDirResolved
	StateCwdSet
	StateAnnounced
	StateChildRunning
	StateDone
	StateFailed
)

func (state State) String() string {
	switch state {
	case StateStarting:
		return "starting"
	case StateDirResolved:
		return "directory resolved"
	case StateCwdSet:
		return "working directory set"
	case StateAnnounced:
		return "announced"
	case StateChildRunning:
		return "child running"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}
