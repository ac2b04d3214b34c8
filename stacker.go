// stacker.go - Stack-machine voice composition

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

// StackOp is a Stacker instruction opcode.
type StackOp int

const (
	// OpConstant pushes Instruction.Value.
	OpConstant StackOp = iota
	// OpInputPhaseOffset pushes the caller-supplied phase offset.
	OpInputPhaseOffset
	// OpSample pops a phase offset and pushes the output of the operator at
	// Instruction.Operator. An out-of-range index pushes 0 and halts the
	// program; that is a defined abort, not an error.
	OpSample
	// OpAdd pops two values and pushes their sum.
	OpAdd
	// OpDupe pushes a copy of the top value, or 0 on an empty stack.
	OpDupe
)

// Instruction is one Stacker step. Value is only meaningful for OpConstant
// and Operator only for OpSample.
type Instruction struct {
	Op       StackOp
	Value    float64
	Operator int
}

func PushConstant(v float64) Instruction { return Instruction{Op: OpConstant, Value: v} }
func PushInput() Instruction             { return Instruction{Op: OpInputPhaseOffset} }
func SampleOperator(i int) Instruction   { return Instruction{Op: OpSample, Operator: i} }
func AddTop() Instruction                { return Instruction{Op: OpAdd} }
func DupeTop() Instruction               { return Instruction{Op: OpDupe} }

// Stacker composes a flat list of operators with an RPN instruction program.
// Functionally it overlaps Combinator, but operators and instructions can be
// spliced or reordered in place without rebuilding an owned tree.
type Stacker struct {
	Operators    []*Operator
	Instructions []Instruction
}

// Chain builds a phase-modulation pipeline equivalent to a Modulate
// Combinator over the reversed operator list: the last operator is sampled
// first with the input phase offset, and operator 0 produces the output.
func Chain(operators ...*Operator) *Stacker {
	instructions := []Instruction{PushInput()}
	for i := len(operators) - 1; i >= 0; i-- {
		instructions = append(instructions, SampleOperator(i))
	}
	return &Stacker{Operators: operators, Instructions: instructions}
}

// Add builds a summation equivalent to a Sum Combinator. With no operators
// the program degenerates to passing the input phase offset through.
func Add(operators ...*Operator) *Stacker {
	var instructions []Instruction
	if len(operators) == 0 {
		instructions = append(instructions, PushInput())
	}
	for i := range operators {
		instructions = append(instructions, PushConstant(0), SampleOperator(i), AddTop())
	}
	return &Stacker{Operators: operators, Instructions: instructions}
}

// Sample runs the instruction program against a fresh stack and returns the
// top of stack. An empty final stack reads as a voice that is not playing.
func (s *Stacker) Sample(bank *SampleBank, globalTime time.Duration, phaseOffset float64) (float64, bool) {
	var stack []float64
	pop := func() float64 {
		if len(stack) == 0 {
			return 0
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top
	}

run:
	for _, inst := range s.Instructions {
		switch inst.Op {
		case OpConstant:
			stack = append(stack, inst.Value)
		case OpInputPhaseOffset:
			stack = append(stack, phaseOffset)
		case OpSample:
			offset := pop()
			if inst.Operator < 0 || inst.Operator >= len(s.Operators) {
				stack = append(stack, 0)
				break run
			}
			out, ok := s.Operators[inst.Operator].Sample(bank, globalTime, offset)
			if !ok {
				out = 0
			}
			stack = append(stack, out)
		case OpAdd:
			stack = append(stack, pop()+pop())
		case OpDupe:
			if len(stack) == 0 {
				stack = append(stack, 0)
			} else {
				stack = append(stack, stack[len(stack)-1])
			}
		}
	}

	if len(stack) == 0 {
		return 0, false
	}
	return stack[len(stack)-1], true
}

func (s *Stacker) Play(frequency, volume float64) {
	for _, op := range s.Operators {
		op.Play(frequency, volume)
	}
}

func (s *Stacker) Cut() {
	for _, op := range s.Operators {
		op.Cut()
	}
}

func (s *Stacker) Release() {
	for _, op := range s.Operators {
		op.Release()
	}
}

// Clone deep-copies operators and instructions.
func (s *Stacker) Clone() Pom {
	operators := make([]*Operator, len(s.Operators))
	for i, op := range s.Operators {
		operators[i] = op.clone()
	}
	return &Stacker{
		Operators:    operators,
		Instructions: append([]Instruction(nil), s.Instructions...),
	}
}
