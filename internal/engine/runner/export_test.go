package runner

import "time"

// SetClock replaces the clock used to timestamp golden hash records.
func (r *Runner) SetClock(now func() time.Time) {
	r.now = now
}
