package core

import "time"

const defaultTPS = 8

// FixedStep paces automatic generation steps at a steady rate, independent of
// how often the caller polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep targeting tps generations per second.
// The first poll always reports a step.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the rate. Non-positive values fall back to the default.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = defaultTPS
	}
	f.step = time.Second / time.Duration(tps)
}

// TPS returns the current rate in generations per second.
func (f *FixedStep) TPS() int {
	return int(time.Second / f.step)
}

// Reset drops any accumulated time so that resuming after a pause does not
// burst through missed steps.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether a generation is due.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
