// operator.go - The stateful voice: waveform + envelope + playback state

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

// playState is the three-valued note state. Armed only occurs when Play is
// called before the operator has ever seen a global time; the first Sample
// call afterwards captures its time as the start.
type playState int

const (
	stateOff playState = iota
	stateArmed
	stateStarted
)

// Modifiers are per-operator constants applied on top of Play arguments.
// They are what make one operator definition usable as, say, a 2x-frequency
// modulation partial across every note.
type Modifiers struct {
	FrequencyMultiplier float64
	VolumeMultiplier    float64
	ConstantPhaseOffset float64
}

// DefaultModifiers passes Play arguments through untouched.
func DefaultModifiers() Modifiers {
	return Modifiers{FrequencyMultiplier: 1, VolumeMultiplier: 1}
}

// Operator is a single playable voice. It owns one Waveform and one Envelope
// and accumulates phase continuously: frequency changes mid-note never jump
// the phase, at the cost of accumulated error that Period's fixed-point
// resolution bounds.
type Operator struct {
	Waveform  Waveform
	Envelope  Envelope
	Modifiers Modifiers

	state          playState
	startTime      time.Duration
	stopPoint      time.Duration
	released       bool
	frequency      float64
	peakVolume     float64
	lastGlobalTime time.Duration
	clocked        bool
	waveformPeriod Period
}

func NewOperator(waveform Waveform, envelope Envelope, modifiers Modifiers) *Operator {
	return &Operator{
		Waveform:  waveform,
		Envelope:  envelope,
		Modifiers: modifiers,
	}
}

// Sample advances the voice to globalTime and pulls one amplitude.
//
// A finished envelope reports ok=false but deliberately does not reset the
// operator to off: silent-because-ended and off are distinct states, and only
// Cut collapses the former into the latter.
func (op *Operator) Sample(bank *SampleBank, globalTime time.Duration, phaseOffset float64) (float64, bool) {
	var deltaTime time.Duration
	if op.clocked {
		deltaTime = satSubPeriod(globalTime, op.lastGlobalTime)
	}
	op.lastGlobalTime = globalTime
	op.clocked = true

	switch op.state {
	case stateOff:
		return 0, false
	case stateArmed:
		op.startTime = globalTime
		op.state = stateStarted
	}
	if globalTime < op.startTime {
		// note hasn't started yet
		return 0, false
	}

	noteTime := satSubPeriod(globalTime, op.startTime)
	envelopeMultiplier, alive := op.Envelope.SampleVolume(noteTime, op.stopPoint, op.released)
	if !alive {
		// note has ended
		return 0, false
	}

	op.waveformPeriod = satAddPeriod(op.waveformPeriod, satMulPeriod(deltaTime, op.frequency))
	value := op.Waveform.Sample(bank, op.waveformPeriod, phaseOffset+op.Modifiers.ConstantPhaseOffset)
	return value * envelopeMultiplier * op.peakVolume, true
}

// Play starts (or restarts) the note at the last-seen global time, applying
// the operator's modifiers to the requested frequency and volume.
func (op *Operator) Play(frequency, volume float64) {
	op.peakVolume = volume * op.Modifiers.VolumeMultiplier
	op.frequency = frequency * op.Modifiers.FrequencyMultiplier
	op.stopPoint = 0
	op.released = false
	if op.clocked {
		op.state = stateStarted
		op.startTime = op.lastGlobalTime
	} else {
		op.state = stateArmed
	}
}

// Release marks the release point at the last-seen global time. Once set the
// point never moves, so repeated calls are harmless.
func (op *Operator) Release() {
	if !op.released {
		op.released = true
		op.stopPoint = op.lastGlobalTime
	}
}

// Cut silences the voice on the very next Sample call. The phase accumulator
// and sample clock are left alone.
func (op *Operator) Cut() {
	op.state = stateOff
	op.released = false
	op.stopPoint = 0
}

// Clone deep-copies the operator, playback state included.
func (op *Operator) Clone() Pom {
	return op.clone()
}

func (op *Operator) clone() *Operator {
	c := *op
	c.Waveform = op.Waveform.Clone()
	return &c
}
