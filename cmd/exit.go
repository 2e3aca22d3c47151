package cmd

// Exit codes reported by the merge command.
const (
	ExitToolMissing = 1 // ffmpeg not found on PATH
	ExitMergeFailed = 2 // both merge strategies failed
)

// ExitError is an error carrying a process exit code. main unwraps it so
// scripted callers can distinguish configuration errors from merge failures.
type ExitError struct {
	Code int
	Msg  string
}

func (e *ExitError) Error() string {
	return e.Msg
}
