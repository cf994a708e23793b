// Package export renders drained VSU frames to a standard WAV file.
package export

import (
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// sampleRate is the VSU's native output rate: the 20MHz master clock
// divided by the 480-cycle sample period.
const sampleRate = 41667

const bitDepth = 16

// WriteWAV encodes interleaved stereo frames (equal-length left/right
// slices, as returned by vsu.BufferedSink.Drain) to w as a standard
// 16-bit PCM WAV file.
func WriteWAV(w io.WriteSeeker, left, right []int16) error {
	if len(left) != len(right) {
		return fmt.Errorf("export: mismatched channel lengths: %d vs %d", len(left), len(right))
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, 2, 1)

	data := make([]int, len(left)*2)
	for i := range left {
		data[i*2] = int(left[i])
		data[i*2+1] = int(right[i])
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("export: write samples: %w", err)
	}
	return enc.Close()
}
