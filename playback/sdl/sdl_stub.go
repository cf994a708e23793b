//go:build !sdl2

package sdl

import "fmt"

// Player is a stub used when the sdl2 build tag is not set.
type Player struct{}

// Open always fails: build with -tags sdl2 to enable live playback.
func Open() (*Player, error) {
	return nil, fmt.Errorf("sdl: playback not available, build with -tags sdl2 to enable")
}

// QueueStereo queues nothing on the stub and always returns an error.
func (p *Player) QueueStereo(left, right []int16) error {
	return fmt.Errorf("sdl: playback not available")
}

// QueuedBytes always reports zero on the stub.
func (p *Player) QueuedBytes() uint32 { return 0 }

// Close is a no-op on the stub.
func (p *Player) Close() {}
