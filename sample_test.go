// sample_test.go - PCM clip lookup and looping tests

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

import "testing"

// rampClip indexes straight into a 0..9 ramp: one frame per cycle, loop
// region covering cycles [4, 7).
func rampClip() Sample {
	return Sample{
		SamplesPerPeriod: 1,
		LoopPoint:        4 * onePeriod,
		LoopDuration:     3 * onePeriod,
		Data:             []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	}
}

func TestSample_PreLoopPlaysThrough(t *testing.T) {
	clip := rampClip()
	for cycle := 0; cycle < 4; cycle++ {
		if got := clip.Get(Period(cycle)*onePeriod, 0); got != float64(cycle) {
			t.Errorf("cycle %d = %v, want %v", cycle, got, float64(cycle))
		}
	}
}

func TestSample_LoopPeriodicity(t *testing.T) {
	clip := rampClip()
	for _, cycle := range []Period{4, 5, 6, 20, 100} {
		a := clip.Get(cycle*onePeriod, 0)
		b := clip.Get((cycle+3)*onePeriod, 0)
		if a != b {
			t.Errorf("cycle %d = %v but cycle %d = %v; loop should repeat", cycle, a, cycle+3, b)
		}
	}
	if got := clip.Get(8*onePeriod, 0); got != 5 {
		t.Errorf("cycle 8 = %v, want folded index 5", got)
	}
}

func TestSample_IndexOutOfRangeIsSilent(t *testing.T) {
	clip := rampClip()
	clip.LoopPoint = 100 * onePeriod // push looping out of the way
	if got := clip.Get(50*onePeriod, 0); got != 0 {
		t.Errorf("index past data = %v, want 0", got)
	}
}

func TestSample_PhaseOffsetShifts(t *testing.T) {
	clip := rampClip()
	if got := clip.Get(onePeriod, 1.0); got != 2 {
		t.Errorf("positive offset = %v, want 2", got)
	}
	if got := clip.Get(2*onePeriod, -1.0); got != 1 {
		t.Errorf("negative offset = %v, want 1", got)
	}
}

func TestSample_NegativeOffsetPastStartIsSilent(t *testing.T) {
	clip := rampClip()
	if got := clip.Get(onePeriod, -2.5); got != 0 {
		t.Errorf("offset past start = %v, want 0", got)
	}
}

func TestSample_NewSampleConvertsSeconds(t *testing.T) {
	// 8 frames per second at 2 frames per cycle is 4 cycles per second.
	clip := NewSample([]float64{0.5}, 8, 2, 0.5, 0.25)
	if clip.LoopPoint != 2*onePeriod {
		t.Errorf("LoopPoint = %v, want 2 cycles", clip.LoopPoint)
	}
	if clip.LoopDuration != onePeriod {
		t.Errorf("LoopDuration = %v, want 1 cycle", clip.LoopDuration)
	}
	if clip.SamplesPerPeriod != 2 {
		t.Errorf("SamplesPerPeriod = %v, want 2", clip.SamplesPerPeriod)
	}
}

func TestSampleBank_CloneIsDeep(t *testing.T) {
	bank := NewSampleBank()
	bank.Insert(1, rampClip())
	clone := bank.Clone()
	clone.Samples[1].Data[0] = 99
	if bank.Samples[1].Data[0] != 0 {
		t.Error("mutating the clone's data reached the original bank")
	}
}
