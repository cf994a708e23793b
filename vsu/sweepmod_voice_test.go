package vsu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSweepModVoiceFrequencyWritesStageAndLatchNext(t *testing.T) {
	var s SweepModVoice
	s.WriteFrequencyLow(0xAB)
	s.WriteFrequencyHigh(0x03)

	assert.Equal(t, uint8(0xAB), s.RegFrequencyLow)
	assert.Equal(t, uint8(0x03), s.RegFrequencyHigh)
	assert.Equal(t, uint8(0xAB), s.nextFrequencyLow)
	assert.Equal(t, uint8(0x03), s.nextFrequencyHigh)
	// live frequency is untouched until the next sweep/mod tick commits it.
	assert.Equal(t, uint8(0), s.FrequencyLow)
	assert.Equal(t, uint8(0), s.FrequencyHigh)
}

func TestSweepModVoiceSweepModPeriodSelectsBaseInterval(t *testing.T) {
	var s SweepModVoice
	assert.Equal(t, uint32(sweepModSmallPeriod), s.SweepModPeriod())

	s.SweepBaseInterval = true
	assert.Equal(t, uint32(sweepModLargePeriod), s.SweepModPeriod())
}

func TestSweepModVoiceSweepIntervalZeroCommitsEveryOuterTick(t *testing.T) {
	var s SweepModVoice
	s.playControl.Enable = true
	s.SweepModEnable = true
	s.SweepInterval = 0
	s.WriteFrequencyLow(0x10)
	s.WriteFrequencyHigh(0x00)

	s.tickSweepMod(nil)

	assert.Equal(t, uint8(0x10), s.FrequencyLow, "commit should happen immediately when interval is 0")
}

func TestSweepModVoiceSweepIntervalGatesCommit(t *testing.T) {
	var s SweepModVoice
	s.playControl.Enable = true
	s.SweepModEnable = true
	s.SweepInterval = 2
	s.WriteFrequencyLow(0x10)
	s.WriteFrequencyHigh(0x00)

	s.tickSweepMod(nil)
	assert.Equal(t, uint8(0), s.FrequencyLow, "should not commit before counter reaches interval")

	s.tickSweepMod(nil)
	assert.Equal(t, uint8(0x10), s.FrequencyLow, "should commit once counter reaches interval")
}

func TestSweepModVoiceSweepAddsShiftedFrequency(t *testing.T) {
	var s SweepModVoice
	s.playControl.Enable = true
	s.SweepModEnable = true
	s.SweepInterval = 1
	s.SweepDirection = true // add
	s.SweepShiftAmount = 1
	s.WriteFrequencyLow(0x40)
	s.WriteFrequencyHigh(0x00)

	s.tickSweepMod(nil) // commits 0x040 as live, computes next = 0x040 + (0x040>>1) = 0x060
	assert.Equal(t, uint8(0x40), s.FrequencyLow)
	assert.Equal(t, uint8(0x60), s.nextFrequencyLow)
	assert.Equal(t, uint8(0), s.nextFrequencyHigh)
}

func TestSweepModVoiceDisablesOnFrequencyOverflow(t *testing.T) {
	var s SweepModVoice
	s.playControl.Enable = true
	s.SweepModEnable = true
	s.SweepInterval = 1
	s.SweepDirection = true // add
	s.SweepShiftAmount = 0
	s.WriteFrequencyLow(0xFF)
	s.WriteFrequencyHigh(0x07) // 0x7FF: doubling it overflows 11 bits

	s.tickSweepMod(nil)

	assert.False(t, s.playControl.Enable)
	assert.Equal(t, uint8(0xFF), s.nextFrequencyLow, "next latch should be untouched on overflow")
}

func TestSweepModVoiceModAddsTableEntryToStagedFrequency(t *testing.T) {
	var s SweepModVoice
	s.playControl.Enable = true
	s.SweepModEnable = true
	s.Function = true
	s.ModRepeat = true
	s.SweepInterval = 1
	s.WriteFrequencyLow(0x40)
	s.WriteFrequencyHigh(0x00)

	modTable := make([]int8, numModTableWords)
	modTable[0] = 5

	s.tickSweepMod(modTable) // commits 0x040; computes next = reg(0x040) + table[0](5) = 0x45
	assert.Equal(t, uint8(0x45), s.nextFrequencyLow)
	assert.Equal(t, uint8(1), s.modPhase)
}

func TestSweepModVoiceModPhaseStaysAtTopWithoutRepeat(t *testing.T) {
	var s SweepModVoice
	s.playControl.Enable = true
	s.SweepModEnable = true
	s.Function = true
	s.ModRepeat = false
	s.SweepInterval = 0
	s.modPhase = numModTableWords - 1

	modTable := make([]int8, numModTableWords)

	s.tickSweepMod(modTable)
	assert.Equal(t, uint8(numModTableWords-1), s.modPhase, "mod phase should stick at the last entry without repeat")
}

func TestSweepModVoiceOutputSilentWhenPCMWaveOutOfRange(t *testing.T) {
	var s SweepModVoice
	s.PCMWave = 7

	tables := make([]uint8, waveTableCount*waveTableSize)
	assert.Equal(t, uint8(0), s.Output(tables))
}
