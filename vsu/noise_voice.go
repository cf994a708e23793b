package vsu

import "github.com/vbdev/vbvsu-go/bit"

// noiseTapBitIndex maps the 3-bit noise tap control to the LFSR feedback
// bit index it taps.
var noiseTapBitIndex = [8]uint{14, 10, 13, 4, 8, 6, 9, 11}

// NoiseVoice is voice 6: a 15-bit LFSR pseudo-noise generator with a
// selectable feedback tap.
type NoiseVoice struct {
	playControl PlayControl
	volume      Volume
	envelope    Envelope

	FrequencyLow  uint8
	FrequencyHigh uint8

	TapControl uint8 // 0..7, selects the feedback tap via noiseTapBitIndex

	frequencyCounter uint32
	shift            uint16 // 15-bit LFSR
	output           uint8  // held output, 0 or 63
}

func (n *NoiseVoice) PlayControl() *PlayControl { return &n.playControl }
func (n *NoiseVoice) Volume() *Volume           { return &n.volume }
func (n *NoiseVoice) Envelope() *Envelope       { return &n.envelope }

// WritePlayControl decodes the play-control register. On enable it resets
// the envelope counter, frequency counter, and reseeds the LFSR to 0x7FFF.
func (n *NoiseVoice) WritePlayControl(v uint8) {
	n.playControl.Write(v)

	if n.playControl.Enable {
		n.envelope.Counter = 0
		n.frequencyCounter = 0
		n.shift = 0x7FFF
	}
}

func (n *NoiseVoice) WriteVolume(v uint8) { n.volume.Write(v) }

func (n *NoiseVoice) WriteFrequencyLow(v uint8) { n.FrequencyLow = v }

func (n *NoiseVoice) WriteFrequencyHigh(v uint8) { n.FrequencyHigh = v & 0x07 }

func (n *NoiseVoice) WriteEnvelopeData(v uint8) { n.envelope.WriteData(v) }

// WriteEnvelopeNoiseControl decodes the shared envelope/noise control byte:
// bits 6-4 are the tap control, the rest is the ordinary envelope control.
func (n *NoiseVoice) WriteEnvelopeNoiseControl(v uint8) {
	n.TapControl = bit.ExtractBits(v, 6, 4)
	n.envelope.WriteControl(v)
}

// tickNoise advances the LFSR by one step once per frequency period.
func (n *NoiseVoice) tickNoise() {
	freq11 := bit.Combine(n.FrequencyHigh, n.FrequencyLow)
	n.frequencyCounter++
	if n.frequencyCounter < 2048-uint32(freq11) {
		return
	}
	n.frequencyCounter = 0

	lhs := (n.shift >> 7) & 1
	rhsIndex := noiseTapBitIndex[n.TapControl]
	rhs := (n.shift >> rhsIndex) & 1

	xorBit := (lhs ^ rhs) & 1
	n.shift = ((n.shift << 1) | xorBit) & 0x7FFF

	if xorBit == 0 {
		n.output = 63
	} else {
		n.output = 0
	}
}

// Output returns the voice's last-sampled noise bit, expressed in the same
// 0..63 range as wavetable samples. waveTables is ignored.
func (n *NoiseVoice) Output([]uint8) uint8 {
	return n.output
}

// DebugState reports the frequency register, LFSR contents and tap index.
func (n *NoiseVoice) DebugState() DebugState {
	return DebugState{
		Frequency: bit.Combine(n.FrequencyHigh, n.FrequencyLow),
		IsNoise:   true,
		LFSRShift: n.shift,
		TapIndex:  n.TapControl,
	}
}
