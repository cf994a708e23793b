package vsu

import "github.com/vbdev/vbvsu-go/bit"

// Envelope is the per-voice amplitude ramp: a 4-bit level counter that steps
// up or down at a configurable rate and optionally repeats or reloads.
//
// Writing the data register reloads Level immediately; writing the control
// register only changes Repeat and Enable, never the level itself. A
// voice's play-control write additionally resets Counter to zero on
// enable (see WaveVoice/SweepModVoice/NoiseVoice.WritePlayControl).
type Envelope struct {
	Reload       uint8 // 0..15, reload value for Level on direction exhaustion with Repeat
	Direction    bool  // true = count up, false = count down
	StepInterval uint8 // 0..7, ticks between steps minus one
	Repeat       bool
	Enable       bool

	Level   uint8 // 0..15, current amplitude multiplier
	Counter uint32
}

// WriteData decodes the envelope data register: reload/direction/step
// interval, and reloads Level immediately.
func (e *Envelope) WriteData(v uint8) {
	e.Reload = v >> 4
	e.Direction = bit.IsSet(3, v)
	e.StepInterval = v & 0x07
	e.Level = e.Reload
}

// WriteControl decodes the shared envelope control bits (repeat, enable).
// Callers that share this byte with other fields (voice 5, voice 6) decode
// the remaining bits themselves and still call WriteControl for these two.
func (e *Envelope) WriteControl(v uint8) {
	e.Repeat = bit.IsSet(1, v)
	e.Enable = bit.IsSet(0, v)
}

// Tick advances the envelope by one envelope-clock period.
func (e *Envelope) Tick() {
	if !e.Enable {
		return
	}

	e.Counter++
	if e.Counter <= uint32(e.StepInterval) {
		return
	}
	e.Counter = 0

	switch {
	case e.Direction && e.Level < 15:
		e.Level++
	case !e.Direction && e.Level > 0:
		e.Level--
	case e.Repeat:
		e.Level = e.Reload
	}
}
