package common

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// TimeTracker logs the time elapsed between its creation and Close.
type TimeTracker struct {
	label string
	t     time.Time
}

func NewTimer(label string) TimeTracker {
	return TimeTracker{
		label: label,
		t:     time.Now(),
	}
}

func (t TimeTracker) Close() {
	log.Infof("elapsed time for %v : %v (ms)", t.label, time.Since(t.t).Milliseconds())
}
