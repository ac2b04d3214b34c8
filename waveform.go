// waveform.go - Phase-domain waveform functions

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

import "math"

// SampleID keys a PCM clip inside a SampleBank.
type SampleID uint64

// WaveKind selects the waveform function. Kinds up to WaveConstant are flat
// and constructible across the boundary layer; WaveThin, WaveCut and
// WaveAbsolute wrap a nested waveform.
type WaveKind int

const (
	WaveSine WaveKind = iota
	WavePulse
	WaveTriangle
	WaveSawtooth
	WaveInvertedSawtooth
	WavePCM
	WaveConstant
	WaveThin
	WaveCut
	WaveAbsolute
)

// Waveform is an immutable phase-to-amplitude function, dispatched on Kind.
// Only the payload fields for the given Kind are meaningful; recursive kinds
// own their Base exclusively.
type Waveform struct {
	Kind WaveKind

	DutyCycle      float64   // WavePulse
	Value          float64   // WaveConstant
	SampleID       SampleID  // WavePCM
	Base           *Waveform // WaveThin, WaveCut, WaveAbsolute
	ActiveFraction float64   // WaveThin, WaveCut
}

func Sine() Waveform             { return Waveform{Kind: WaveSine} }
func Triangle() Waveform         { return Waveform{Kind: WaveTriangle} }
func Sawtooth() Waveform         { return Waveform{Kind: WaveSawtooth} }
func InvertedSawtooth() Waveform { return Waveform{Kind: WaveInvertedSawtooth} }

func Pulse(dutyCycle float64) Waveform {
	return Waveform{Kind: WavePulse, DutyCycle: dutyCycle}
}

func PCM(id SampleID) Waveform {
	return Waveform{Kind: WavePCM, SampleID: id}
}

func Constant(value float64) Waveform {
	return Waveform{Kind: WaveConstant, Value: value}
}

// Thin remaps the [0, activeFraction) window of the phase domain onto a full
// cycle of base; phases past the window are silent. activeFraction of zero is
// caller error (the rescale divides by it).
func Thin(base Waveform, activeFraction float64) Waveform {
	return Waveform{Kind: WaveThin, Base: &base, ActiveFraction: activeFraction}
}

// Cut silences any phase past activeFraction and leaves the rest of base
// untouched.
func Cut(base Waveform, activeFraction float64) Waveform {
	return Waveform{Kind: WaveCut, Base: &base, ActiveFraction: activeFraction}
}

// Absolute full-wave rectifies base.
func Absolute(base Waveform) Waveform {
	return Waveform{Kind: WaveAbsolute, Base: &base}
}

// euclidMod is the Euclidean remainder: the result carries the sign of m, so
// negative phase offsets land back in [0, m).
func euclidMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

// Sample evaluates the waveform. period should be the raw, unwrapped phase
// accumulator: PCM playback addresses sample data with the whole cycle count,
// while every other kind only sees the sub-cycle fraction. bank may be nil,
// in which case PCM kinds are silent.
//
// Output is in [-1, 1] for the oscillator kinds; Constant, Absolute and PCM
// are unconstrained.
func (w Waveform) Sample(bank *SampleBank, period Period, phaseOffset float64) float64 {
	raw := period
	period %= onePeriod
	phase := math.Mod(period.Seconds()+euclidMod(phaseOffset, 1), 1)
	switch w.Kind {
	case WaveSine:
		return math.Sin(phase * 2 * math.Pi)
	case WavePulse:
		if phase > w.DutyCycle {
			return 1
		}
		return -1
	case WaveTriangle:
		if phase < 0.5 {
			return phase*4 - 1
		}
		return 3 - phase*4
	case WaveSawtooth:
		return phase*2 - 1
	case WaveInvertedSawtooth:
		return 1 - phase*2
	case WavePCM:
		if bank == nil {
			return 0
		}
		sample, ok := bank.Samples[w.SampleID]
		if !ok {
			return 0
		}
		return sample.Get(raw, phaseOffset)
	case WaveConstant:
		return w.Value
	case WaveThin:
		if phase > w.ActiveFraction {
			return 0
		}
		return w.Base.Sample(bank, periodFromSeconds(phase/w.ActiveFraction), phaseOffset)
	case WaveCut:
		if phase > w.ActiveFraction {
			return 0
		}
		return w.Base.Sample(bank, period, phaseOffset)
	case WaveAbsolute:
		return math.Abs(w.Base.Sample(bank, period, phaseOffset))
	}
	return 0
}

// Clone deep-copies the waveform tree.
func (w Waveform) Clone() Waveform {
	c := w
	if w.Base != nil {
		base := w.Base.Clone()
		c.Base = &base
	}
	return c
}
