package domain

import "log/slog"

// Command is an external program invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current one.
	Dir string
	// Env holds "KEY=VALUE" overrides applied on top of the process environment.
	Env []string
}

// LogLevel tags a line logged by a command or a recorded phase. Values follow slog.
type LogLevel int

// Levels used for vertex logs. Warn and above go to a vertex's stderr.
const (
	LogLevelDebug = LogLevel(slog.LevelDebug)
	LogLevelInfo  = LogLevel(slog.LevelInfo)
	LogLevelWarn  = LogLevel(slog.LevelWarn)
	LogLevelError = LogLevel(slog.LevelError)
)

// String returns the slog name of the level, e.g. "WARN".
func (l LogLevel) String() string {
	return slog.Level(l).String()
}
