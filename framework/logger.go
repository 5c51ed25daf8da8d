package framework

import (
	"fmt"
	"sync"
)

// Logger receives the runner's debug output: test lifecycle events such as
// "test started" and "test finished". It is separate from the report output,
// which always goes to the runner's writer.
type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Printf(message string, args ...interface{}) {}

// NullLogger returns a Logger that discards everything.
func NullLogger() Logger { return nullLogger{} }

// CapturingLogger is a Logger that accumulates messages in memory, for
// inspecting the runner's debug output in tests.
type CapturingLogger struct {
	output []string
	lock   sync.Mutex
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	l.lock.Lock()
	l.output = append(l.output, fmt.Sprintf(message, args...))
	l.lock.Unlock()
}

// Output returns a copy of all captured messages in order.
func (l *CapturingLogger) Output() []string {
	l.lock.Lock()
	ret := append([]string(nil), l.output...)
	l.lock.Unlock()
	return ret
}
