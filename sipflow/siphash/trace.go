package siphash

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

type traceSink struct {
	log logrus.FieldLogger
}

var sink atomic.Pointer[traceSink]

var defaultSink = newDefaultTraceSink()

func newDefaultTraceSink() *traceSink {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	return &traceSink{log: l}
}

// SetTraceLogger routes register traces to l. A nil logger restores the
// default, a debug-level logrus logger writing to stderr. Traces are only
// produced by binaries built with the siphash_debug tag.
func SetTraceLogger(l logrus.FieldLogger) {
	if l == nil {
		sink.Store(nil)
		return
	}
	sink.Store(&traceSink{log: l})
}

// TraceEnabled reports whether this build emits register traces.
func TraceEnabled() bool { return traceEnabled }

func traceLogger() logrus.FieldLogger {
	if s := sink.Load(); s != nil {
		return s.log
	}
	return defaultSink.log
}
