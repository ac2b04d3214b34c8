// bridge.go - Host boundary: settings, PCM encodings, batch rendering

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
	"encoding/binary"
	"errors"
	"math"
	"time"
)

// The only hard errors the engine surfaces. Everything else degrades to a
// defined silent value.
var (
	ErrInvalidWaveform = errors.New("pommel: invalid waveform kind")
	ErrInvalidFormat   = errors.New("pommel: invalid sample format")
)

// SampleFormat selects the numeric encoding of raw PCM buffers crossing the
// boundary. Multi-byte formats are little-endian.
type SampleFormat int

const (
	FormatU8 SampleFormat = iota
	FormatS16
	FormatS32
	FormatF32
	FormatF64
)

// width is the byte size of one encoded sample, or 0 for an unknown format.
func (f SampleFormat) width() int {
	switch f {
	case FormatU8:
		return 1
	case FormatS16:
		return 2
	case FormatS32:
		return 4
	case FormatF32:
		return 4
	case FormatF64:
		return 8
	}
	return 0
}

// WaveformSpec is the flat, discriminated waveform description hosts build
// operators from. Only the payload field matching Kind is read. The recursive
// kinds (Thin, Cut, Absolute) are not constructible through a spec; build
// those with the Waveform constructors directly.
type WaveformSpec struct {
	Kind      WaveKind
	DutyCycle float64
	Value     float64
	SampleID  SampleID
}

// Waveform validates s and builds the waveform it describes. An unknown or
// recursive kind is the one
// construction-time hard error in the engine.
func (s WaveformSpec) Waveform() (Waveform, error) {
	switch s.Kind {
	case WaveSine, WaveTriangle, WaveSawtooth, WaveInvertedSawtooth:
		return Waveform{Kind: s.Kind}, nil
	case WavePulse:
		return Pulse(s.DutyCycle), nil
	case WavePCM:
		return PCM(s.SampleID), nil
	case WaveConstant:
		return Constant(s.Value), nil
	}
	return Waveform{}, ErrInvalidWaveform
}

// OperatorSettings bundles everything needed to construct an Operator across
// the boundary.
type OperatorSettings struct {
	Waveform  WaveformSpec
	Envelope  Envelope
	Modifiers Modifiers
}

func NewOperatorFromSettings(settings OperatorSettings) (*Operator, error) {
	waveform, err := settings.Waveform.Waveform()
	if err != nil {
		return nil, err
	}
	return NewOperator(waveform, settings.Envelope, settings.Modifiers), nil
}

// SumOf builds a Sum combinator from clones of the given voices; the inputs
// stay usable and unshared.
func SumOf(voices ...Pom) *Combinator {
	return combinatorOf(CombineSum, voices)
}

// ModulateOf builds a Modulate combinator from clones of the given voices,
// modulator first, carrier last.
func ModulateOf(voices ...Pom) *Combinator {
	return combinatorOf(CombineModulate, voices)
}

func combinatorOf(mode CombinatorMode, voices []Pom) *Combinator {
	cloned := make([]Pom, len(voices))
	for i, v := range voices {
		cloned[i] = v.Clone()
	}
	return &Combinator{Voices: cloned, Mode: mode}
}

// TimeFromParts converts a (whole seconds, sub-second nanoseconds) pair into
// the internal time representation. Nanosecond overflow past a second carries
// into the seconds field; an unrepresentable total saturates to the maximum.
func TimeFromParts(seconds uint64, nanoseconds uint32) time.Duration {
	const nanosPerSec = uint64(time.Second)
	carry := uint64(nanoseconds) / nanosPerSec
	if seconds+carry < seconds {
		return maxPeriod
	}
	whole := seconds + carry
	if whole > uint64(math.MaxInt64)/nanosPerSec {
		return maxPeriod
	}
	total := whole*nanosPerSec + uint64(nanoseconds)%nanosPerSec
	if total > uint64(math.MaxInt64) {
		return maxPeriod
	}
	return time.Duration(total)
}

// PartsFromTime is the inverse of TimeFromParts; the round trip is exact for
// any time below the saturation point.
func PartsFromTime(t time.Duration) (seconds uint64, nanoseconds uint32) {
	return uint64(t / time.Second), uint32(t % time.Second)
}

// FrequencyToInterval returns the sampling interval for a given output rate
// in samples per second.
func FrequencyToInterval(frequency float64) time.Duration {
	return periodFromSeconds(1 / frequency)
}

// quantise maps x linearly from the input range onto the output range, rounds
// to the nearest integer value, then clamps onto the output range.
func quantise(x, inMin, inMax, outMin, outMax float64) float64 {
	y := math.Round((x-inMin)/(inMax-inMin)*(outMax-outMin) + outMin)
	return math.Max(outMin, math.Min(outMax, y))
}

// mapNormalise maps x linearly from [min, max] onto [-1, 1].
func mapNormalise(x, min, max float64) float64 {
	return 2*(x-min)/(max-min) - 1
}

// Fill batch-renders the voice into dst under the given encoding, advancing
// global time by interval per output sample starting at globalTime. Silent
// samples encode as amplitude 0. As many whole samples as dst can hold are
// written.
func Fill(v Pom, bank *SampleBank, globalTime, interval time.Duration, dst []byte, format SampleFormat, phaseOffset float64) error {
	width := format.width()
	if width == 0 {
		return ErrInvalidFormat
	}
	n := len(dst) / width

	now := globalTime
	next := func() float64 {
		out, ok := v.Sample(bank, now, phaseOffset)
		if !ok {
			out = 0
		}
		now = satAddPeriod(now, interval)
		return out
	}

	switch format {
	case FormatU8:
		for i := 0; i < n; i++ {
			dst[i] = uint8(quantise(next(), -1, 1, 0, math.MaxUint8))
		}
	case FormatS16:
		for i := 0; i < n; i++ {
			sample := int16(quantise(next(), -1, 1, math.MinInt16, math.MaxInt16))
			binary.LittleEndian.PutUint16(dst[i*2:], uint16(sample))
		}
	case FormatS32:
		for i := 0; i < n; i++ {
			sample := int32(quantise(next(), -1, 1, math.MinInt32, math.MaxInt32))
			binary.LittleEndian.PutUint32(dst[i*4:], uint32(sample))
		}
	case FormatF32:
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(float32(next())))
		}
	case FormatF64:
		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint64(dst[i*8:], math.Float64bits(next()))
		}
	}
	return nil
}

// FillFloat64 is Fill without an encoding step, for hosts that want raw
// amplitudes.
func FillFloat64(v Pom, bank *SampleBank, globalTime, interval time.Duration, dst []float64, phaseOffset float64) {
	now := globalTime
	for i := range dst {
		out, ok := v.Sample(bank, now, phaseOffset)
		if !ok {
			out = 0
		}
		dst[i] = out
		now = satAddPeriod(now, interval)
	}
}

// PCMSampleSettings carries the playback metadata for an ingested clip. Loop
// bounds are in Period units; use NewSample when starting from seconds.
type PCMSampleSettings struct {
	SamplesPerPeriod float64
	LoopPoint        Period
	LoopDuration     Period
}

// AddPCMSample decodes raw PCM under the given encoding and inserts it into
// the bank, replacing any clip with the same id. Integer encodings are
// linearly rescaled to [-1, 1]; trailing bytes short of a whole sample are
// ignored.
func AddPCMSample(bank *SampleBank, raw []byte, format SampleFormat, id SampleID, settings PCMSampleSettings) error {
	data, err := DecodePCM(raw, format)
	if err != nil {
		return err
	}
	bank.Insert(id, Sample{
		SamplesPerPeriod: settings.SamplesPerPeriod,
		LoopPoint:        settings.LoopPoint,
		LoopDuration:     settings.LoopDuration,
		Data:             data,
	})
	return nil
}

// DecodePCM converts an encoded PCM buffer into raw amplitudes.
func DecodePCM(raw []byte, format SampleFormat) ([]float64, error) {
	width := format.width()
	if width == 0 {
		return nil, ErrInvalidFormat
	}
	n := len(raw) / width
	data := make([]float64, n)

	switch format {
	case FormatU8:
		for i := 0; i < n; i++ {
			data[i] = mapNormalise(float64(raw[i]), 0, math.MaxUint8)
		}
	case FormatS16:
		for i := 0; i < n; i++ {
			sample := int16(binary.LittleEndian.Uint16(raw[i*2:]))
			data[i] = mapNormalise(float64(sample), math.MinInt16, math.MaxInt16)
		}
	case FormatS32:
		for i := 0; i < n; i++ {
			sample := int32(binary.LittleEndian.Uint32(raw[i*4:]))
			data[i] = mapNormalise(float64(sample), math.MinInt32, math.MaxInt32)
		}
	case FormatF32:
		for i := 0; i < n; i++ {
			data[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:])))
		}
	case FormatF64:
		for i := 0; i < n; i++ {
			data[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*8:]))
		}
	}
	return data, nil
}
