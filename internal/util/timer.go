package util

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Timer measures a request and the named phases inside it.
type Timer struct {
	start time.Time
	last  time.Time
	laps  logrus.Fields
}

// StartTimer creates a new timer starting at current time.
func StartTimer() *Timer {
	now := time.Now()
	return &Timer{start: now, last: now, laps: logrus.Fields{}}
}

// Lap records the milliseconds since the previous lap under name_ms.
// All Timer methods accept a nil receiver.
func (t *Timer) Lap(name string) int64 {
	if t == nil {
		return 0
	}
	if t.laps == nil {
		t.laps = logrus.Fields{}
	}
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
	}
	ms := now.Sub(t.last).Milliseconds()
	t.last = now
	t.laps[name+"_ms"] = ms
	return ms
}

// ElapsedMs returns the elapsed milliseconds since start.
func (t *Timer) ElapsedMs() int64 {
	if t == nil || t.start.IsZero() {
		return 0
	}
	return time.Since(t.start).Milliseconds()
}

// Fields returns the recorded laps plus duration_ms for structured logging.
func (t *Timer) Fields() logrus.Fields {
	out := logrus.Fields{"duration_ms": t.ElapsedMs()}
	if t == nil {
		return out
	}
	for k, v := range t.laps {
		out[k] = v
	}
	return out
}
