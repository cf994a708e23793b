package vsu

import "github.com/vbdev/vbvsu-go/bit"

// numModTableWords is the number of signed-byte entries in the mod table.
const numModTableWords = 32

// SweepModVoice is voice 5: a wave voice plus a frequency-sweep or
// modulation-table unit.
//
// It keeps two frequency pairs: the "staged" register pair the host writes
// (RegFrequencyLow/High) and the "live" pair actually driving playback
// (FrequencyLow/High). A NextFrequencyLow/High latch sits between them —
// every sweep/mod step (a sweep/mod-clock tick that passes the
// SweepInterval gate in tickSweepMod) commits Next into Live before
// computing the next Next, so a host write takes effect on the following
// sweep/mod step, never mid-computation.
type SweepModVoice struct {
	playControl PlayControl
	volume      Volume
	envelope    Envelope

	RegFrequencyLow  uint8
	RegFrequencyHigh uint8

	FrequencyLow  uint8 // live, used for playback phase advance
	FrequencyHigh uint8

	nextFrequencyLow  uint8
	nextFrequencyHigh uint8

	SweepModEnable    bool
	ModRepeat         bool
	Function          bool // false = sweep, true = mod

	SweepBaseInterval bool // false = short (19200), true = long (153600)
	SweepInterval     uint8
	SweepDirection    bool // false = subtract, true = add
	SweepShiftAmount  uint8

	PCMWave uint8

	frequencyCounter uint32
	phase            uint8

	sweepModCounter uint32
	modPhase        uint8
}

func (s *SweepModVoice) PlayControl() *PlayControl { return &s.playControl }
func (s *SweepModVoice) Volume() *Volume           { return &s.volume }
func (s *SweepModVoice) Envelope() *Envelope       { return &s.envelope }

// WritePlayControl decodes the play-control register. On enable it resets
// envelope counter, frequency counter, phase, sweep/mod counter and mod
// phase to zero.
func (s *SweepModVoice) WritePlayControl(v uint8) {
	s.playControl.Write(v)

	if s.playControl.Enable {
		s.envelope.Counter = 0
		s.frequencyCounter = 0
		s.phase = 0
		s.sweepModCounter = 0
		s.modPhase = 0
	}
}

func (s *SweepModVoice) WriteVolume(v uint8) { s.volume.Write(v) }

// WriteFrequencyLow updates the staged register and mirrors it into the
// next-frequency latch.
func (s *SweepModVoice) WriteFrequencyLow(v uint8) {
	s.RegFrequencyLow = v
	s.nextFrequencyLow = s.RegFrequencyLow
}

// WriteFrequencyHigh updates the staged register (low 3 bits) and mirrors
// it into the next-frequency latch.
func (s *SweepModVoice) WriteFrequencyHigh(v uint8) {
	s.RegFrequencyHigh = v & 0x07
	s.nextFrequencyHigh = s.RegFrequencyHigh
}

func (s *SweepModVoice) WriteEnvelopeData(v uint8) { s.envelope.WriteData(v) }

// WriteEnvelopeSweepModControl decodes the shared envelope/sweep-mod
// control byte: bit0 envelope enable, bit1 envelope repeat, bit4 function,
// bit5 mod repeat, bit6 sweep-mod enable.
func (s *SweepModVoice) WriteEnvelopeSweepModControl(v uint8) {
	s.envelope.WriteControl(v)
	s.SweepModEnable = bit.IsSet(6, v)
	s.ModRepeat = bit.IsSet(5, v)
	s.Function = bit.IsSet(4, v)
}

// WriteSweepModData decodes the sweep-mod data register: bit7 base
// interval, bits6-4 sweep interval, bit3 sweep direction, bits2-0 sweep
// shift amount.
func (s *SweepModVoice) WriteSweepModData(v uint8) {
	s.SweepBaseInterval = bit.IsSet(7, v)
	s.SweepInterval = bit.ExtractBits(v, 6, 4)
	s.SweepDirection = bit.IsSet(3, v)
	s.SweepShiftAmount = v & 0x07
}

func (s *SweepModVoice) WritePCMWave(v uint8) { s.PCMWave = v & 0x07 }

// SweepModPeriod returns the current base period (in master cycles) of the
// sweep/mod clock, resolved dynamically from SweepBaseInterval.
func (s *SweepModVoice) SweepModPeriod() uint32 {
	if s.SweepBaseInterval {
		return sweepModLargePeriod
	}
	return sweepModSmallPeriod
}

// liveFrequency returns the 11-bit frequency currently driving playback.
func (s *SweepModVoice) liveFrequency() uint32 {
	return uint32(bit.Combine(s.FrequencyHigh, s.FrequencyLow))
}

// tickFrequency advances the phase accumulator against the live frequency
// (not the staged register pair).
func (s *SweepModVoice) tickFrequency() {
	s.frequencyCounter++
	if s.frequencyCounter >= 2048-s.liveFrequency() {
		s.frequencyCounter = 0
		s.phase = (s.phase + 1) & (numWaveTableWords - 1)
	}
}

// tickSweepMod runs one sweep/mod-clock tick: it is called by the
// dispatcher every SweepModPeriod() master cycles. It maintains its own
// nested counter against SweepInterval (0..7); only once that counter
// reaches SweepInterval does it commit the next->live frequency latch and
// (if still enabled) compute the next value.
func (s *SweepModVoice) tickSweepMod(modTable []int8) {
	s.sweepModCounter++
	if s.sweepModCounter < uint32(s.SweepInterval) {
		return
	}
	s.sweepModCounter = 0

	s.FrequencyLow = s.nextFrequencyLow
	s.FrequencyHigh = s.nextFrequencyHigh

	if !s.playControl.Enable || !s.SweepModEnable || s.SweepInterval == 0 {
		return
	}

	freq := s.liveFrequency()

	if !s.Function {
		// Sweep: shift, then add or subtract. A result past the 11-bit
		// range stops the voice instead of wrapping or updating the
		// frequency further.
		sweepValue := freq >> s.SweepShiftAmount
		if s.SweepDirection {
			freq += sweepValue
		} else {
			freq -= sweepValue
		}
		if freq > 0x07FF {
			s.playControl.Enable = false
			return
		}
	} else {
		// Mod: add the signed mod-table entry to the staged register
		// frequency (not the live one), masked to 11 bits.
		regFreq := uint32(bit.Combine(s.RegFrequencyHigh, s.RegFrequencyLow))
		freq = (regFreq + uint32(int32(modTable[s.modPhase]))) & 0x07FF

		const maxModPhase = numModTableWords - 1
		if !(!s.ModRepeat && s.modPhase == maxModPhase) {
			s.modPhase = (s.modPhase + 1) & maxModPhase
		}
	}

	s.nextFrequencyLow = uint8(freq & 0xFF)
	s.nextFrequencyHigh = uint8((freq >> 8) & 0x07)
}

// Output returns the voice's current 6-bit wavetable sample, same rule as
// WaveVoice.
func (s *SweepModVoice) Output(waveTables []uint8) uint8 {
	if s.PCMWave > 4 {
		return 0
	}
	return waveTables[uint32(s.PCMWave)*numWaveTableWords+uint32(s.phase)]
}

// DebugState reports the live frequency register, wave selector, and the
// phase counter actually in use: the mod-table phase when running the mod
// function, the wavetable phase otherwise.
func (s *SweepModVoice) DebugState() DebugState {
	phase := s.phase
	if s.Function {
		phase = s.modPhase
	}
	return DebugState{
		Frequency: bit.Combine(s.FrequencyHigh, s.FrequencyLow),
		WaveIndex: s.PCMWave,
		Phase:     phase,
	}
}
