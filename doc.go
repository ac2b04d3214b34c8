// doc.go - Package documentation for the Pommel synthesis engine

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

// Package pommel is a real-time audio synthesis engine. A host builds a voice
// graph out of Operators (waveform + envelope + modifiers), Combinators
// (summation or phase-modulation trees) and Stackers (a stack-machine
// interpreter over a flat operator list), then repeatedly calls Sample with a
// monotonically non-decreasing global time to pull one amplitude per call.
//
// Phase is tracked with the fixed-point Period type rather than a floating
// accumulator, so long-running notes stay phase-exact and frequency changes
// mid-note are click-free. The engine performs no device I/O; rendering into
// caller buffers (including integer PCM encodings) is done through Fill.
package pommel
