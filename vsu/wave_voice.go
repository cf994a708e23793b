package vsu

import "github.com/vbdev/vbvsu-go/bit"

// numWaveTableWords is the number of 6-bit samples per wavetable.
const numWaveTableWords = 32

// WaveVoice is a phase-accumulating wavetable oscillator: voices 1-4.
// Voice 5 (SweepModVoice) carries the same oscillator logic in its own
// fields rather than embedding a WaveVoice.
type WaveVoice struct {
	index int // 1-based voice number, for diagnostics only

	playControl PlayControl
	volume      Volume
	envelope    Envelope

	FrequencyLow  uint8 // full byte
	FrequencyHigh uint8 // low 3 bits only

	PCMWave uint8 // 0..7; 0..4 select a wavetable, 5..7 silence the voice

	frequencyCounter uint32
	phase            uint8 // 0..31
}

func newWaveVoice(index int) WaveVoice {
	return WaveVoice{index: index}
}

// Index returns the voice's 1-based position (1..4).
func (w *WaveVoice) Index() int { return w.index }

func (w *WaveVoice) PlayControl() *PlayControl { return &w.playControl }
func (w *WaveVoice) Volume() *Volume           { return &w.volume }
func (w *WaveVoice) Envelope() *Envelope       { return &w.envelope }

// WritePlayControl decodes the play-control register. On a write that sets
// Enable, the envelope counter, frequency counter and phase all reset to
// zero — this is the hardware's "retrigger on enable" behavior.
func (w *WaveVoice) WritePlayControl(v uint8) {
	w.playControl.Write(v)

	if w.playControl.Enable {
		w.envelope.Counter = 0
		w.frequencyCounter = 0
		w.phase = 0
	}
}

// WriteVolume decodes the volume register.
func (w *WaveVoice) WriteVolume(v uint8) { w.volume.Write(v) }

// WriteFrequencyLow stores the full low byte of the 11-bit frequency register.
func (w *WaveVoice) WriteFrequencyLow(v uint8) { w.FrequencyLow = v }

// WriteFrequencyHigh stores the low 3 bits of the 11-bit frequency register.
func (w *WaveVoice) WriteFrequencyHigh(v uint8) { w.FrequencyHigh = v & 0x07 }

// WriteEnvelopeData decodes the envelope data register.
func (w *WaveVoice) WriteEnvelopeData(v uint8) { w.envelope.WriteData(v) }

// WriteEnvelopeControl decodes the envelope control register.
func (w *WaveVoice) WriteEnvelopeControl(v uint8) { w.envelope.WriteControl(v) }

// WritePCMWave decodes the PCM wave selector register (low 3 bits).
func (w *WaveVoice) WritePCMWave(v uint8) { w.PCMWave = v & 0x07 }

// frequencyPeriod returns the current frequency-clock period in ticks:
// 2048 minus the 11-bit frequency register value.
func (w *WaveVoice) frequencyPeriod() uint32 {
	freq11 := bit.Combine(w.FrequencyHigh, w.FrequencyLow)
	return 2048 - uint32(freq11)
}

// tickFrequency advances the phase accumulator by one frequency-clock
// period, wrapping the 32-entry wavetable index.
func (w *WaveVoice) tickFrequency() {
	w.frequencyCounter++
	if w.frequencyCounter >= w.frequencyPeriod() {
		w.frequencyCounter = 0
		w.phase = (w.phase + 1) & (numWaveTableWords - 1)
	}
}

// Output returns the voice's current 6-bit wavetable sample, or 0 if the
// PCM wave selector is out of range (5..7).
func (w *WaveVoice) Output(waveTables []uint8) uint8 {
	if w.PCMWave > 4 {
		return 0
	}
	return waveTables[uint32(w.PCMWave)*numWaveTableWords+uint32(w.phase)]
}

// DebugState reports the frequency register, wave selector and phase.
func (w *WaveVoice) DebugState() DebugState {
	return DebugState{
		Frequency: bit.Combine(w.FrequencyHigh, w.FrequencyLow),
		WaveIndex: w.PCMWave,
		Phase:     w.phase,
	}
}
