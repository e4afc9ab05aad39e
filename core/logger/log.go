package logger

// LogEntry is a single line in the event log. Exactly one of the event fields
// is set.
type LogEntry struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id,omitempty"`

	RunCommand        *RunCommand        `json:"run_command,omitempty"`
	UnknownCommand    *UnknownCommand    `json:"unknown_command,omitempty"`
	BuiltinCommand    *BuiltinCommand    `json:"builtin_command,omitempty"`
	InvalidInvocation *InvalidInvocation `json:"invalid_invocation,omitempty"`
}

// LogType is implemented by every event that can be stored in a LogEntry.
type LogType interface {
	isLogType()
}

// RunCommand is logged when a pipeline stage starts as a child process.
type RunCommand struct {
	Command []string `json:"command"`
	// ResolvedCommandPath is the executable found by the PATH search.
	ResolvedCommandPath string `json:"resolved_command_path"`
	Pid                 int    `json:"pid"`
	Stage               int    `json:"stage"`
	Stdin               string `json:"stdin"`
	Stdout              string `json:"stdout"`
}

// UnknownCommand is logged when a stage could not be started.
type UnknownCommand struct {
	Command      []string `json:"command"`
	ErrorMessage string   `json:"error_message"`
}

// BuiltinCommand is logged when the shell runs a builtin in-process.
type BuiltinCommand struct {
	Command []string `json:"command"`
	Error   string   `json:"error,omitempty"`
}

// InvalidInvocation is logged when a line can't be executed at all.
type InvalidInvocation struct {
	Line  string `json:"line"`
	Error string `json:"error"`
}

func (*RunCommand) isLogType()        {}
func (*UnknownCommand) isLogType()    {}
func (*BuiltinCommand) isLogType()    {}
func (*InvalidInvocation) isLogType() {}

// GetLogType returns the event held by the entry, or nil if none is set.
func (le *LogEntry) GetLogType() LogType {
	switch {
	case le.RunCommand != nil:
		return le.RunCommand
	case le.UnknownCommand != nil:
		return le.UnknownCommand
	case le.BuiltinCommand != nil:
		return le.BuiltinCommand
	case le.InvalidInvocation != nil:
		return le.InvalidInvocation
	default:
		return nil
	}
}

// setLogType stores event in the matching field.
func (le *LogEntry) setLogType(event LogType) {
	switch event := event.(type) {
	case *RunCommand:
		le.RunCommand = event
	case *UnknownCommand:
		le.UnknownCommand = event
	case *BuiltinCommand:
		le.BuiltinCommand = event
	case *InvalidInvocation:
		le.InvalidInvocation = event
	}
}
