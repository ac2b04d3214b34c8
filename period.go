// period.go - Fixed-point period and time arithmetic

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

// Period counts elapsed waveform cycles rather than wall time: one "second" of
// the underlying Duration is one full cycle, which gives nanosecond (1e-9 of a
// cycle) fixed-point resolution. Accumulating delta*frequency into a Period
// instead of a float keeps phase exact over arbitrarily long sessions.
//
// All Period arithmetic goes through the saturating helpers below; nothing
// else in the engine does raw period math.
type Period = time.Duration

const (
	// onePeriod is one full waveform cycle.
	onePeriod Period = time.Second

	maxPeriod Period = math.MaxInt64
)

// maxPeriodSeconds is the saturation threshold for float conversions.
const maxPeriodSeconds = float64(maxPeriod) / float64(time.Second)

// wrapPeriod reduces p into [0, max). Panics if max is zero; callers own that
// invariant (see Sample loop bounds).
func wrapPeriod(p, max Period) Period {
	r := p % max
	if r < 0 {
		r += max
	}
	return r
}

// satAddPeriod adds two non-negative periods, clamping at maxPeriod.
func satAddPeriod(a, b Period) Period {
	s := a + b
	if s < a {
		return maxPeriod
	}
	return s
}

// satSubPeriod subtracts b from a, clamping at zero.
func satSubPeriod(a, b Period) Period {
	if b > a {
		return 0
	}
	return a - b
}

// satMulPeriod scales a period by a float. Negative scalars clamp to zero;
// overflow and non-finite results clamp to maxPeriod.
func satMulPeriod(p Period, f float64) Period {
	if f < 0 {
		return 0
	}
	return periodFromSeconds(f * p.Seconds())
}

// periodFromSeconds converts fractional cycles to a Period, saturating at both
// ends. NaN and +Inf map to maxPeriod, mirroring overflow.
func periodFromSeconds(s float64) Period {
	if s <= 0 {
		return 0
	}
	if !(s < maxPeriodSeconds) {
		return maxPeriod
	}
	return Period(s * float64(time.Second))
}
