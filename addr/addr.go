// Package addr holds the VSU's memory-mapped register offsets, relative to
// the VSU's base address. Offsets only; the host bus owns the base address
// and any wider decode.
package addr

// Wavetable windows: each table is 32 entries at a stride of 4 bytes
// (128 bytes per window). Byte offsets within a window that are not
// multiples of 4 address the same slot as their floor (integer division
// by 4); see vsu.WaveTableStore.
const (
	WaveTable0Start uint16 = 0x000
	WaveTable0End   uint16 = 0x07F
	WaveTable1Start uint16 = 0x080
	WaveTable1End   uint16 = 0x0FF
	WaveTable2Start uint16 = 0x100
	WaveTable2End   uint16 = 0x17F
	WaveTable3Start uint16 = 0x180
	WaveTable3End   uint16 = 0x1FF
	WaveTable4Start uint16 = 0x200
	WaveTable4End   uint16 = 0x27F

	ModTableStart uint16 = 0x280
	ModTableEnd   uint16 = 0x2FF
)

// WaveTableStride is the byte distance between consecutive wavetable/mod
// table entries on the host bus.
const WaveTableStride uint16 = 4

// Voice register blocks: 7 registers per voice (8 for voice 5, 6 for voice
// 6, which has no PCM wave register) at fixed
// offsets from the voice's base, spaced 0x40 apart so that 6 blocks starting
// at 0x400 land exactly on the sound-disable register at 0x580.
const (
	VoiceBlockSize uint16 = 0x40

	Voice1Base uint16 = 0x400
	Voice2Base uint16 = 0x440
	Voice3Base uint16 = 0x480
	Voice4Base uint16 = 0x4C0
	Voice5Base uint16 = 0x500
	Voice6Base uint16 = 0x540
)

// Offsets of individual voice registers, relative to a voice's base.
const (
	RegPlayControl     uint16 = 0x00
	RegVolume          uint16 = 0x04
	RegFrequencyLow    uint16 = 0x08
	RegFrequencyHigh   uint16 = 0x0C
	RegEnvelopeData    uint16 = 0x10
	RegEnvelopeControl uint16 = 0x14 // envelope control (v1-4), envelope+sweep/mod control (v5), envelope+noise control (v6)
	RegPCMWave         uint16 = 0x18 // voices 1-5 only
	RegSweepModData    uint16 = 0x1C // voice 5 only
)

// SoundDisable clears all six voices' enable flags when bit 0 is set.
const SoundDisable uint16 = 0x580
