// envelope.go - Attack/decay/release amplitude envelope

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

// Envelope shapes a note's amplitude over note-relative time. It holds no
// state of its own; the owning Operator tracks note time and the release
// point.
type Envelope struct {
	// AttackTime is the linear ramp from zero to peak volume.
	AttackTime time.Duration
	// HalvingRate is the exponential decay after the attack, in halvings per
	// second. Zero holds the peak forever.
	HalvingRate float64
	// ReleaseTime is the linear fade after release, multiplied onto whatever
	// the attack/decay section is producing. Zero is caller error (the
	// release fraction divides by it).
	ReleaseTime time.Duration
}

// SampleVolume returns the amplitude multiplier for the given note time.
// stopPoint is the note time at which release began and is only meaningful
// when released is set. ok is false once the note has fully ended; the
// multiplier continuity at the stop point itself is exact (release fraction
// zero), so releasing never clicks.
func (e Envelope) SampleVolume(noteTime, stopPoint time.Duration, released bool) (volume float64, ok bool) {
	releaseMultiplier := 1.0
	if released {
		if noteTime > satAddPeriod(stopPoint, e.ReleaseTime) {
			return 0, false
		}
		releaseProgress := satSubPeriod(noteTime, stopPoint)
		releaseMultiplier = 1 - releaseProgress.Seconds()/e.ReleaseTime.Seconds()
	}

	if noteTime < e.AttackTime {
		return noteTime.Seconds() / e.AttackTime.Seconds() * releaseMultiplier, true
	}
	sinceDecayStart := satSubPeriod(noteTime, e.AttackTime)
	decayMultiplier := math.Pow(0.5, sinceDecayStart.Seconds()*e.HalvingRate)
	return decayMultiplier * releaseMultiplier, true
}
