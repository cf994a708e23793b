package vsu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaveTableStoreWriteWhenNoVoiceEnabled(t *testing.T) {
	var s WaveTableStore
	s.WriteWave(8, 0x3F, false)

	assert.Equal(t, uint8(0x3F), s.waveTables[2])
}

func TestWaveTableStoreWriteLockedWhileAnyVoiceEnabled(t *testing.T) {
	var s WaveTableStore
	s.WriteWave(8, 0x3F, true)

	assert.Equal(t, uint8(0), s.waveTables[2])
}

func TestWaveTableStoreStrideFourAddressingFloorsToSlot(t *testing.T) {
	var s WaveTableStore
	for _, offset := range []uint16{8, 9, 10, 11} {
		var fresh WaveTableStore
		fresh.WriteWave(offset, 0x2A, false)
		assert.Equal(t, uint8(0x2A), fresh.waveTables[2], "offset %d should floor to slot 2", offset)
	}
	_ = s
}

func TestWaveTableStoreValueMaskedToSixBits(t *testing.T) {
	var s WaveTableStore
	s.WriteWave(0, 0xFF, false)
	assert.Equal(t, uint8(0x3F), s.waveTables[0])
}

func TestWaveTableStoreModTableLockedWhileVoiceFiveEnabled(t *testing.T) {
	var s WaveTableStore
	s.WriteMod(0, 0x7F, true)
	assert.Equal(t, int8(0), s.modTable[0])

	s.WriteMod(0, 0x7F, false)
	assert.Equal(t, int8(0x7F), s.modTable[0])
}

func TestWaveTableStoreModTableStoresSignedValue(t *testing.T) {
	var s WaveTableStore
	s.WriteMod(4, 0x80, false) // -128 as int8

	assert.Equal(t, int8(-128), s.modTable[1])
}
