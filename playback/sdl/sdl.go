//go:build sdl2

// Package sdl streams VSU frames to a live SDL2 audio output device.
// Building it requires SDL2 development libraries; default builds use
// the stub in sdl_stub.go instead, selected by the sdl2 build tag.
package sdl

import (
	"fmt"
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"
)

const sampleRate = 41667 // 20MHz master clock / 480-cycle sample period, rounded

// Player owns an open SDL2 audio device and queues stereo frames to it.
type Player struct {
	device sdl.AudioDeviceID
}

// Open initializes the SDL2 audio subsystem and opens a 16-bit stereo
// output device at the VSU's native sample rate.
func Open() (*Player, error) {
	if err := sdl.Init(sdl.INIT_AUDIO); err != nil {
		return nil, fmt.Errorf("sdl: init audio: %w", err)
	}

	spec := &sdl.AudioSpec{
		Freq:     sampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 2,
		Samples:  1024,
	}
	obtained := &sdl.AudioSpec{}

	device, err := sdl.OpenAudioDevice("", false, spec, obtained, 0)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: open audio device: %w", err)
	}

	sdl.PauseAudioDevice(device, false)
	slog.Info("sdl audio device opened", "freq", obtained.Freq, "samples", obtained.Samples)

	return &Player{device: device}, nil
}

// QueueStereo interleaves left/right frames and queues them for playback.
// It blocks the caller not at all; SDL buffers internally and callers are
// expected to pace calls against QueuedBytes to avoid unbounded growth.
func (p *Player) QueueStereo(left, right []int16) error {
	if len(left) != len(right) {
		return fmt.Errorf("sdl: mismatched channel lengths: %d vs %d", len(left), len(right))
	}

	interleaved := make([]int16, 0, len(left)*2)
	for i := range left {
		interleaved = append(interleaved, left[i], right[i])
	}

	buf := int16SliceToBytes(interleaved)
	return sdl.QueueAudio(p.device, buf)
}

// QueuedBytes reports how many bytes of audio are still buffered on the
// device, for pacing QueueStereo calls against real-time playback.
func (p *Player) QueuedBytes() uint32 {
	return sdl.GetQueuedAudioSize(p.device)
}

// Close stops playback and releases the audio device.
func (p *Player) Close() {
	sdl.CloseAudioDevice(p.device)
	sdl.Quit()
}

func int16SliceToBytes(samples []int16) []byte {
	buf := make([]byte, len(samples)*2)
	for i, s := range samples {
		buf[i*2] = byte(s)
		buf[i*2+1] = byte(s >> 8)
	}
	return buf
}
