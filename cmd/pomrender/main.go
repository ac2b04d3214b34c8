// main.go - pomrender: render a Pommel demo instrument to a WAV file

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

package main

import (
	"encoding/binary"
	"flag"
	"log"
	"os"
	"time"

	"github.com/Cerulity32K/pommel"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

type note struct {
	frequency float64
	hold      time.Duration
	gap       time.Duration
}

// A short minor phrase; frequencies in Hz.
var phrase = []note{
	{220.00, 300 * time.Millisecond, 100 * time.Millisecond},
	{261.63, 300 * time.Millisecond, 100 * time.Millisecond},
	{329.63, 300 * time.Millisecond, 100 * time.Millisecond},
	{440.00, 500 * time.Millisecond, 200 * time.Millisecond},
	{329.63, 300 * time.Millisecond, 100 * time.Millisecond},
	{220.00, 700 * time.Millisecond, 500 * time.Millisecond},
}

// buildVoice assembles the demo instrument: a two-operator FM pair built with
// Chain, summed against a half-volume sub oscillator one octave down.
func buildVoice() pommel.Pom {
	carrier := pommel.NewOperator(
		pommel.Sine(),
		pommel.Envelope{
			AttackTime:  20 * time.Millisecond,
			HalvingRate: 1.5,
			ReleaseTime: 150 * time.Millisecond,
		},
		pommel.DefaultModifiers(),
	)
	modulator := pommel.NewOperator(
		pommel.Sine(),
		pommel.Envelope{
			AttackTime:  10 * time.Millisecond,
			HalvingRate: 4,
			ReleaseTime: 150 * time.Millisecond,
		},
		pommel.Modifiers{FrequencyMultiplier: 2, VolumeMultiplier: 0.6},
	)
	sub := pommel.NewOperator(
		pommel.Triangle(),
		pommel.Envelope{
			AttackTime:  30 * time.Millisecond,
			HalvingRate: 1,
			ReleaseTime: 200 * time.Millisecond,
		},
		pommel.Modifiers{FrequencyMultiplier: 0.5, VolumeMultiplier: 0.5},
	)
	return pommel.SumOf(pommel.Chain(carrier, modulator), sub)
}

func main() {
	out := flag.String("o", "pommel.wav", "output WAV path")
	rate := flag.Int("rate", 44100, "sample rate in Hz")
	gain := flag.Float64("gain", 0.5, "master gain applied before encoding")
	flag.Parse()

	voice := buildVoice()
	interval := pommel.FrequencyToInterval(float64(*rate))

	var pcm []byte
	now := time.Duration(0)
	render := func(span time.Duration) {
		n := int(span / interval)
		buf := make([]byte, n*2)
		if err := pommel.Fill(voice, nil, now, interval, buf, pommel.FormatS16, 0); err != nil {
			log.Fatalf("render: %v", err)
		}
		pcm = append(pcm, buf...)
		now += time.Duration(n) * interval
	}

	// Prime the voice's clock so the first Play starts at time zero.
	render(interval)
	for _, n := range phrase {
		voice.Play(n.frequency, *gain)
		render(n.hold)
		voice.Release()
		render(n.gap)
	}

	ints := make([]int, len(pcm)/2)
	for i := range ints {
		ints[i] = int(int16(binary.LittleEndian.Uint16(pcm[i*2:])))
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	enc := wav.NewEncoder(f, *rate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: *rate},
		Data:           ints,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	if err := enc.Close(); err != nil {
		log.Fatalf("finalise %s: %v", *out, err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("close %s: %v", *out, err)
	}
	log.Printf("wrote %d samples to %s", len(ints), *out)
}
