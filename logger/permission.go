package logger

// Permission implementations indicate whether the caller making a log
// request is allowed to create new log entries. A Permission is passed
// with every Log/Logf call; the core packages pass Allow directly at
// each call site.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow indicates that the logging request should always be permitted.
var Allow Permission = allow{}
