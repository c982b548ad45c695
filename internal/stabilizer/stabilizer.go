// Package stabilizer implements a running-average stability detector,
// grounded on original_source/PrioQueues/ValueStabilizer.h. The original
// parameterizes StableCount as a template non-type parameter; Go has no
// const generics for ordinary types, so it becomes a constructor argument
// instead.
package stabilizer

// Stabilizer accumulates values into a running mean and reports whether
// that mean has stopped moving, in the sense that its last decimal digit
// hasn't changed for StableCount consecutive samples.
type Stabilizer struct {
	stableCount int
	valueCount  int64
	stableInRow int
	lastAverage float64
}

// New returns a Stabilizer that considers the running mean stable once its
// last digit has held for stableCount consecutive AddValue calls.
func New(stableCount int) *Stabilizer {
	return &Stabilizer{stableCount: stableCount, lastAverage: -1}
}

// AddValue folds val into the running mean and updates the stability run.
func (s *Stabilizer) AddValue(val int64) {
	var mean float64
	if s.valueCount == 0 {
		mean = float64(val)
	} else {
		mean = (float64(s.valueCount)*s.lastAverage + float64(val)) / float64(s.valueCount+1)
	}
	s.valueCount++

	if s.valueCount > 1 && lastDigit(mean) == lastDigit(s.lastAverage) {
		s.stableInRow++
	} else {
		s.stableInRow = 0
	}
	s.lastAverage = mean
}

// IsStable reports whether the running mean has held its last digit for
// stableCount consecutive samples.
func (s *Stabilizer) IsStable() bool {
	return s.stableInRow >= s.stableCount
}

// LastAverage returns the most recently computed running mean.
func (s *Stabilizer) LastAverage() float64 {
	return s.lastAverage
}

func lastDigit(v float64) int {
	return int(v) % 10
}
