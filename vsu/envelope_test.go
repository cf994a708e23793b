package vsu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvelopeWriteData(t *testing.T) {
	var e Envelope
	e.WriteData(0xAF) // reload=0xA direction=1 interval=7

	assert.Equal(t, uint8(0xA), e.Reload)
	assert.Equal(t, uint8(0xA), e.Level)
	assert.True(t, e.Direction)
	assert.Equal(t, uint8(0x07), e.StepInterval)
}

func TestEnvelopeWriteControl(t *testing.T) {
	var e Envelope
	e.WriteControl(0x03)

	assert.True(t, e.Repeat)
	assert.True(t, e.Enable)
}

func TestEnvelopeTickDisabled(t *testing.T) {
	var e Envelope
	e.Level = 5
	e.Tick()

	assert.Equal(t, uint8(5), e.Level)
}

func TestEnvelopeTickIncrementsUpToFifteenThenHolds(t *testing.T) {
	var e Envelope
	e.Enable = true
	e.Direction = true
	e.StepInterval = 0
	e.Reload = 0
	e.Level = 14

	e.Tick()
	e.Tick()
	assert.Equal(t, uint8(15), e.Level)

	e.Tick()
	e.Tick()
	assert.Equal(t, uint8(15), e.Level)
}

func TestEnvelopeTickDecrementsToZeroThenHoldsWithoutRepeat(t *testing.T) {
	var e Envelope
	e.Enable = true
	e.Direction = false
	e.StepInterval = 0
	e.Level = 1

	e.Tick()
	e.Tick()
	assert.Equal(t, uint8(0), e.Level)

	e.Tick()
	e.Tick()
	assert.Equal(t, uint8(0), e.Level)
}

func TestEnvelopeRepeatReloadsAtZero(t *testing.T) {
	var e Envelope
	e.Enable = true
	e.Direction = false
	e.Repeat = true
	e.Reload = 9
	e.StepInterval = 0
	e.Level = 0

	e.Tick() // level 0 cannot step down: reloads to 9
	e.Tick() // steps down from the reloaded level
	assert.Equal(t, uint8(8), e.Level)
}

func TestEnvelopeStepIntervalGatesTicks(t *testing.T) {
	var e Envelope
	e.Enable = true
	e.Direction = true
	e.StepInterval = 2
	e.Level = 0

	e.Tick()
	e.Tick()
	assert.Equal(t, uint8(0), e.Level, "should not step before interval elapses")

	e.Tick()
	e.Tick()
	assert.Equal(t, uint8(1), e.Level)
}
