// sample.go - PCM clips and the sample bank

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

// Sample is a PCM clip plus looping metadata. LoopPoint and LoopDuration are
// in Period units (cycles), not seconds; NewSample does the conversion.
type Sample struct {
	// SamplesPerPeriod is the playback rate: PCM frames per waveform cycle.
	SamplesPerPeriod float64
	// LoopPoint is where looping begins. Positions before it play through
	// unchanged.
	LoopPoint Period
	// LoopDuration is the length of the looped region. Zero with a position
	// at or past LoopPoint is caller error.
	LoopDuration Period
	// Data holds the amplitude values.
	Data []float64
}

// NewSample converts seconds-based loop bounds into Period units using the
// clip's own rate.
func NewSample(data []float64, samplesPerSecond, samplesPerPeriod, loopPointSecs, loopDurationSecs float64) Sample {
	periodsPerSecond := samplesPerSecond / samplesPerPeriod
	return Sample{
		SamplesPerPeriod: samplesPerPeriod,
		LoopPoint:        periodFromSeconds(loopPointSecs * periodsPerSecond),
		LoopDuration:     periodFromSeconds(loopDurationSecs * periodsPerSecond),
		Data:             data,
	}
}

// Get reads the clip at the given raw period. The phase offset shifts the
// position in cycles: a negative offset larger than the position itself is
// silence, not a wrap. Positions past LoopPoint fold into the loop region,
// and any index beyond the data is silence.
func (s *Sample) Get(period Period, phaseOffset float64) float64 {
	if phaseOffset < 0 {
		negative := periodFromSeconds(-phaseOffset)
		if negative > period {
			return 0
		}
		period = satSubPeriod(period, negative)
	} else {
		period = satAddPeriod(period, periodFromSeconds(phaseOffset))
	}
	if period >= s.LoopPoint {
		period = satAddPeriod(wrapPeriod(satSubPeriod(period, s.LoopPoint), s.LoopDuration), s.LoopPoint)
	}
	index := int(satMulPeriod(period, s.SamplesPerPeriod) / onePeriod)
	if index < 0 || index >= len(s.Data) {
		return 0
	}
	return s.Data[index]
}

// Clone deep-copies the clip.
func (s *Sample) Clone() Sample {
	c := *s
	c.Data = append([]float64(nil), s.Data...)
	return c
}

// SampleBank maps identifiers to PCM clips. It is read-only during synthesis;
// only the boundary layer mutates it while loading sounds.
type SampleBank struct {
	Samples map[SampleID]Sample
}

func NewSampleBank() *SampleBank {
	return &SampleBank{Samples: make(map[SampleID]Sample)}
}

// Insert adds or replaces a clip.
func (b *SampleBank) Insert(id SampleID, s Sample) {
	if b.Samples == nil {
		b.Samples = make(map[SampleID]Sample)
	}
	b.Samples[id] = s
}

// Clone deep-copies the bank.
func (b *SampleBank) Clone() *SampleBank {
	c := NewSampleBank()
	for id, s := range b.Samples {
		c.Samples[id] = s.Clone()
	}
	return c
}
