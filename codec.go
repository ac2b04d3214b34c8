// codec.go - Voice graph and sample bank persistence

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
	"encoding/gob"
	"fmt"
	"io"
)

func init() {
	gob.Register(&Operator{})
	gob.Register(&Combinator{})
	gob.Register(&Stacker{})
}

// EncodeVoice serialises a voice graph. Persistence captures the instrument
// definition (waveforms, envelopes, modifiers, structure, instructions), not
// transient playback state: a decoded voice always comes back off.
func EncodeVoice(w io.Writer, v Pom) error {
	if err := gob.NewEncoder(w).Encode(&v); err != nil {
		return fmt.Errorf("pommel: encode voice: %w", err)
	}
	return nil
}

// DecodeVoice rebuilds a voice graph serialised by EncodeVoice.
func DecodeVoice(r io.Reader) (Pom, error) {
	var v Pom
	if err := gob.NewDecoder(r).Decode(&v); err != nil {
		return nil, fmt.Errorf("pommel: decode voice: %w", err)
	}
	return v, nil
}

// Encode serialises the bank and every clip in it.
func (b *SampleBank) Encode(w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(b); err != nil {
		return fmt.Errorf("pommel: encode sample bank: %w", err)
	}
	return nil
}

// DecodeSampleBank rebuilds a bank serialised by SampleBank.Encode.
func DecodeSampleBank(r io.Reader) (*SampleBank, error) {
	bank := NewSampleBank()
	if err := gob.NewDecoder(r).Decode(bank); err != nil {
		return nil, fmt.Errorf("pommel: decode sample bank: %w", err)
	}
	return bank, nil
}
