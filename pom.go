// pom.go - The voice capability set

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

import "time"

// Pom is the capability set every voice implements: Operators, Combinators
// and Stackers are all Poms, which is what lets them nest heterogeneously.
//
// Voice graphs are single-threaded: callers must serialise Sample, Play, Cut
// and Release on a given graph, or Clone it per consumer. globalTime must be
// monotonically non-decreasing per voice for phase accumulation to mean
// anything; violations saturate rather than panic.
type Pom interface {
	// Sample pulls one amplitude at the given global time. ok is false when
	// the voice is off, not yet started, or fully ended; callers may read
	// that as 0 or recycle the voice.
	Sample(bank *SampleBank, globalTime time.Duration, phaseOffset float64) (value float64, ok bool)
	// Play (re)starts the voice at the last-seen global time.
	Play(frequency, volume float64)
	// Cut silences the voice immediately, returning it to the off state.
	Cut()
	// Release enters the release section of the envelope. Idempotent.
	Release()
	// Clone deep-copies the voice, playback state included, without touching
	// the sample clock.
	Clone() Pom
}
