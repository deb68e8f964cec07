package enricher

// State is the lifecycle position of a Service.
type State int32

// A Service starts in StateIdle and moves to StateRequesting when Run sends
// the request. The last three states are terminal.
const (
	StateIdle State = iota
	StateRequesting
	StateCompleted
	StateFailed
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRequesting:
		return "requesting"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
