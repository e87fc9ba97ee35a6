package domain

// LaunchPhase is the lifecycle state of the single active launch attempt.
// At most one launch is ever in flight per launcher session.
type LaunchPhase int

const (
	LaunchIdle LaunchPhase = iota
	LaunchLaunching
	LaunchStarted
	LaunchExited
	LaunchBlocked
)

// String returns a short label for display and logs.
func (p LaunchPhase) String() string {
	switch p {
	case LaunchIdle:
		return "idle"
	case LaunchLaunching:
		return "launching"
	case LaunchStarted:
		return "started"
	case LaunchExited:
		return "exited"
	case LaunchBlocked:
		return "blocked"
	default:
		return "unknown"
	}
}

// BlockedReport describes a launch the backend refused because it detected
// a disallowed add-on. File is the offending filename (last path segment)
// when the backend message carried a path; Label is the client/mod name
// shown to the user.
type BlockedReport struct {
	Title string
	Body  string
	File  string
	Label string
}
