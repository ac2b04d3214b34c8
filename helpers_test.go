// helpers_test.go - Shared helpers for the engine test suite

/*
██████   ██████  ███    ███ ███    ███ ███████ ██
██   ██ ██    ██ ████  ████ ████  ████ ██      ██
██████  ██    ██ ██ ████ ██ ██ ████ ██ █████   ██
██      ██    ██ ██  ██  ██ ██  ██  ██ ██      ██
██       ██████  ██      ██ ██      ██ ███████ ███████

(c) 2025 - 2026 Cerulity32K
https://github.com/Cerulity32K/pommel
License: GPLv3 or later
*/

package pommel

import (
	"math"
	"time"
)

// approx compares floats with an absolute tolerance.
func approx(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// prime pushes one (silent) sample through a voice so its clock has observed
// the given time; the next Play then starts there.
func prime(v Pom, at time.Duration) {
	v.Sample(nil, at, 0)
}

// flatEnvelope holds peak volume forever once attacked; releaseTime still
// bounds the fade after Release.
func flatEnvelope(releaseTime time.Duration) Envelope {
	return Envelope{ReleaseTime: releaseTime}
}

// constantOperator produces a fixed amplitude while playing; handy as a
// deterministic modulator.
func constantOperator(value float64) *Operator {
	return NewOperator(Constant(value), flatEnvelope(time.Second), DefaultModifiers())
}
