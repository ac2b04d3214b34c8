// combinator.go - Tree-structured voice composition

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

// CombinatorMode selects how a Combinator merges its children.
type CombinatorMode int

const (
	// CombineSum adds every child's output, reading silent children as 0.
	CombineSum CombinatorMode = iota
	// CombineModulate threads each child's output into the next child's
	// phase offset, realising phase-modulation chains.
	CombineModulate
)

// Combinator composes an ordered list of child voices. It has no envelope
// state of its own; control calls broadcast to every child.
type Combinator struct {
	Voices []Pom
	Mode   CombinatorMode
}

func NewCombinator(mode CombinatorMode, voices ...Pom) *Combinator {
	return &Combinator{Voices: voices, Mode: mode}
}

// Sample merges the children at globalTime.
//
// Sum never reports ok=false: an all-silent sum is a playing voice producing
// 0. Modulate reports exactly the last child's liveness, not any other
// child's; a dead voice mid-chain feeds 0 onward.
func (c *Combinator) Sample(bank *SampleBank, globalTime time.Duration, phaseOffset float64) (float64, bool) {
	switch c.Mode {
	case CombineModulate:
		carry, alive := phaseOffset, true
		for _, v := range c.Voices {
			carry, alive = v.Sample(bank, globalTime, carry)
			if !alive {
				carry = 0
			}
		}
		return carry, alive
	default:
		total := 0.0
		for _, v := range c.Voices {
			if out, ok := v.Sample(bank, globalTime, phaseOffset); ok {
				total += out
			}
		}
		return total, true
	}
}

func (c *Combinator) Play(frequency, volume float64) {
	for _, v := range c.Voices {
		v.Play(frequency, volume)
	}
}

func (c *Combinator) Cut() {
	for _, v := range c.Voices {
		v.Cut()
	}
}

func (c *Combinator) Release() {
	for _, v := range c.Voices {
		v.Release()
	}
}

// Clone deep-copies the whole subtree.
func (c *Combinator) Clone() Pom {
	voices := make([]Pom, len(c.Voices))
	for i, v := range c.Voices {
		voices[i] = v.Clone()
	}
	return &Combinator{Voices: voices, Mode: c.Mode}
}
