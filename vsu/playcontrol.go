package vsu

import "github.com/vbdev/vbvsu-go/bit"

// PlayControl is the per-voice enable/duration register: a voice plays while
// Enable is set, and if UseDuration is set it auto-stops after Duration+1
// duration-clock ticks.
type PlayControl struct {
	Enable      bool
	UseDuration bool
	Duration    uint8 // 0..31

	DurationCounter uint32
}

// Write decodes the play-control register. Setting UseDuration resets the
// duration counter; it does not, by itself, reset Enable or any other
// voice state — voices reset their own envelope/frequency/phase state on
// enable in their own write-handlers.
func (p *PlayControl) Write(v uint8) {
	p.Enable = bit.IsSet(7, v)
	p.UseDuration = bit.IsSet(5, v)
	p.Duration = v & 0x1F

	if p.UseDuration {
		p.DurationCounter = 0
	}
}

// Tick advances the duration counter by one duration-clock period and
// clears Enable once the configured duration has elapsed.
func (p *PlayControl) Tick() {
	if !p.Enable || !p.UseDuration {
		return
	}

	p.DurationCounter++
	if p.DurationCounter > uint32(p.Duration) {
		p.Enable = false
	}
}
