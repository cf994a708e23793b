// Package vsu emulates the Virtual Boy's Virtual Sound Unit, a six-voice
// fixed-function audio coprocessor: four wavetable voices, one wavetable
// voice with an added frequency-sweep/modulation unit, and one noise
// voice, mixed down to 16-bit stereo PCM.
//
// The package is a pure state machine: register writes mutate voice state
// synchronously, and Advance steps a master 20 MHz clock, firing each
// voice's independent duration/envelope/frequency/sweep-mod/noise/sample
// sub-clocks in that fixed order. It has no dependency on any particular
// audio backend; callers drain PCM frames through the FrameSink interface.
package vsu

import "github.com/vbdev/vbvsu-go/addr"

// VSU is the top-level sound unit: its exported methods are the only bus
// interface a host needs.
type VSU struct {
	waveTables WaveTableStore

	waves  [4]WaveVoice
	sweep  SweepModVoice
	noise  NoiseVoice

	clk clocks
}

// New returns a VSU in its post-reset state: all voices disabled, all
// wavetable memory zeroed.
func New() *VSU {
	v := &VSU{}
	for i := range v.waves {
		v.waves[i] = newWaveVoice(i + 1)
	}
	return v
}

// voices returns the six voices in mixer order (1..6).
func (v *VSU) voices() []Voice {
	return []Voice{
		&v.waves[0], &v.waves[1], &v.waves[2], &v.waves[3],
		&v.sweep, &v.noise,
	}
}

// DebugVoices exposes the six voices in mixer order (1..6) for read-only
// diagnostic use; callers outside this package can read Voice state but
// cannot reach the package-private tick methods.
func (v *VSU) DebugVoices() []Voice {
	return v.voices()
}

// anyVoiceEnabled reports whether any of the six voices currently has its
// play-control enable bit set. The wavetable memory is write-locked
// whenever this is true.
func (v *VSU) anyVoiceEnabled() bool {
	for _, voice := range v.voices() {
		if voice.PlayControl().Enable {
			return true
		}
	}
	return false
}

// ReadRegister always returns 0: every VSU register, and all wavetable and
// modulation table memory, is write-only from the bus's perspective.
func (v *VSU) ReadRegister(offset uint16) uint8 {
	return 0
}

// ReadRaw reads a raw byte of wavetable or modulation-table memory at
// offset, bypassing the write lock that gates host writes to the same
// range. It has no bus-visible counterpart, since ReadRegister always
// returns zero; it exists only so diagnostic tooling can see what is
// actually stored. Offsets outside both tables read as 0.
func (v *VSU) ReadRaw(offset uint16) uint8 {
	switch {
	case offset <= addr.WaveTable4End:
		wave := v.waveTables.Wave()
		slot := int(offset) / 4
		if slot >= len(wave) {
			return 0
		}
		return wave[slot]

	case offset >= addr.ModTableStart && offset <= addr.ModTableEnd:
		mod := v.waveTables.Mod()
		slot := int(offset-addr.ModTableStart) / 4
		if slot >= len(mod) {
			return 0
		}
		return uint8(mod[slot])

	default:
		return 0
	}
}

// WriteHalfword writes the low byte of value to the register at offset,
// aligned down to an even address. The VSU only exposes byte-wide
// registers; halfword writes from a 16-bit bus access still only take
// effect on the low byte, matching how the real hardware ignores the
// upper byte of a halfword store to this region.
func (v *VSU) WriteHalfword(offset uint16, value uint16) {
	v.WriteRegister(offset&^1, uint8(value))
}

// WriteRegister decodes a bus write by address range: wavetable memory,
// modulation table memory, one of the six per-voice register blocks, or
// the sound-disable register. Addresses outside all of these are ignored.
func (v *VSU) WriteRegister(offset uint16, value uint8) {
	switch {
	case offset <= addr.WaveTable4End:
		v.waveTables.WriteWave(offset, value, v.anyVoiceEnabled())

	case offset >= addr.ModTableStart && offset <= addr.ModTableEnd:
		v.waveTables.WriteMod(offset-addr.ModTableStart, value, v.sweep.playControl.Enable)

	case offset >= addr.Voice1Base && offset < addr.Voice1Base+6*addr.VoiceBlockSize:
		voiceIndex := (offset - addr.Voice1Base) / addr.VoiceBlockSize
		reg := (offset - addr.Voice1Base) % addr.VoiceBlockSize
		v.writeVoiceRegister(int(voiceIndex), reg, value)

	case offset == addr.SoundDisable:
		v.writeSoundDisable(value)
	}
}

// writeVoiceRegister dispatches one register write within a voice's block
// to the correct voice and field, by voice index (0..5) and in-block
// register offset.
func (v *VSU) writeVoiceRegister(voiceIndex int, reg uint16, value uint8) {
	switch {
	case voiceIndex < 4:
		w := &v.waves[voiceIndex]
		switch reg {
		case addr.RegPlayControl:
			w.WritePlayControl(value)
		case addr.RegVolume:
			w.WriteVolume(value)
		case addr.RegFrequencyLow:
			w.WriteFrequencyLow(value)
		case addr.RegFrequencyHigh:
			w.WriteFrequencyHigh(value)
		case addr.RegEnvelopeData:
			w.WriteEnvelopeData(value)
		case addr.RegEnvelopeControl:
			w.WriteEnvelopeControl(value)
		case addr.RegPCMWave:
			w.WritePCMWave(value)
		}

	case voiceIndex == 4:
		s := &v.sweep
		switch reg {
		case addr.RegPlayControl:
			s.WritePlayControl(value)
		case addr.RegVolume:
			s.WriteVolume(value)
		case addr.RegFrequencyLow:
			s.WriteFrequencyLow(value)
		case addr.RegFrequencyHigh:
			s.WriteFrequencyHigh(value)
		case addr.RegEnvelopeData:
			s.WriteEnvelopeData(value)
		case addr.RegEnvelopeControl:
			s.WriteEnvelopeSweepModControl(value)
		case addr.RegPCMWave:
			s.WritePCMWave(value)
		case addr.RegSweepModData:
			s.WriteSweepModData(value)
		}

	case voiceIndex == 5:
		n := &v.noise
		switch reg {
		case addr.RegPlayControl:
			n.WritePlayControl(value)
		case addr.RegVolume:
			n.WriteVolume(value)
		case addr.RegFrequencyLow:
			n.WriteFrequencyLow(value)
		case addr.RegFrequencyHigh:
			n.WriteFrequencyHigh(value)
		case addr.RegEnvelopeData:
			n.WriteEnvelopeData(value)
		case addr.RegEnvelopeControl:
			n.WriteEnvelopeNoiseControl(value)
		}
	}
}

// writeSoundDisable handles the sound-disable register: setting bit 0
// immediately stops every voice, as if each had its enable bit cleared.
func (v *VSU) writeSoundDisable(value uint8) {
	if value&1 == 0 {
		return
	}
	for _, voice := range v.voices() {
		voice.PlayControl().Enable = false
	}
}

// Advance steps the master clock forward by cycles master cycles, firing
// every voice's duration, envelope, frequency, sweep/mod and noise
// sub-clocks as their independent periods elapse, and appending one frame
// to sink each time the sample clock fires. Sub-events within a single
// cycle always fire in the order duration, envelope, frequency, sweep/mod,
// noise, sample. A nil sink discards frames, which is useful for skipping
// ahead without needing the audio.
func (v *VSU) Advance(cycles uint32, sink FrameSink) {
	for i := uint32(0); i < cycles; i++ {
		v.clk.duration++
		if v.clk.duration >= durationClockPeriod {
			v.clk.duration = 0
			v.tickDuration()
		}

		v.clk.envelope++
		if v.clk.envelope >= envelopeClockPeriod {
			v.clk.envelope = 0
			v.tickEnvelope()
		}

		v.clk.frequency++
		if v.clk.frequency >= frequencyClockPeriod {
			v.clk.frequency = 0
			v.tickFrequency()
		}

		v.clk.sweepMod++
		if v.clk.sweepMod >= v.sweep.SweepModPeriod() {
			v.clk.sweepMod = 0
			v.sweep.tickSweepMod(v.waveTables.Mod())
		}

		v.clk.noise++
		if v.clk.noise >= noiseClockPeriod {
			v.clk.noise = 0
			v.noise.tickNoise()
		}

		v.clk.sample++
		if v.clk.sample >= sampleClockPeriod {
			v.clk.sample = 0
			v.tickSample(sink)
		}
	}
}

func (v *VSU) tickDuration() {
	for _, voice := range v.voices() {
		voice.PlayControl().Tick()
	}
}

func (v *VSU) tickEnvelope() {
	for _, voice := range v.voices() {
		voice.Envelope().Tick()
	}
}

func (v *VSU) tickFrequency() {
	for i := range v.waves {
		v.waves[i].tickFrequency()
	}
	v.sweep.tickFrequency()
}

func (v *VSU) tickSample(sink FrameSink) {
	if sink == nil {
		return
	}
	left, right := mixSample(v.voices(), v.waveTables.Wave())
	sink.Append(left, right)
}
