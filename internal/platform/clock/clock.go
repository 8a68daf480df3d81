package clock

import "time"

// Clock abstracts wall-clock time so usecases stay deterministic in tests.
// The core never keeps a running timer; everything is recomputed from
// persisted instants against Now.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
