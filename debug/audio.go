// Package debug extracts read-only snapshots of VSU voice state for
// diagnostic displays, without exposing any mutation path into the
// emulated hardware itself.
package debug

import "github.com/vbdev/vbvsu-go/vsu"

// waveTableEntries mirrors the 32 samples per wavetable the vsu package
// stores; used to locate a voice's current sample through MemoryReader.
const waveTableEntries = 32

// waveTableStride is the byte distance between consecutive wavetable
// entries on the host bus; used the same way.
const waveTableStride = 4

// MemoryReader is the minimal raw-memory read hook a Snapshot needs beyond
// the structured per-voice state DebugVoices already exposes. *vsu.VSU
// satisfies it via a debug-only accessor, distinct from the always-zero,
// bus-facing ReadRegister.
type MemoryReader interface {
	ReadRaw(offset uint16) uint8
}

// VoiceSnapshot is a point-in-time read of one voice's externally visible
// state.
type VoiceSnapshot struct {
	Index         int
	Enabled       bool
	UseDuration   bool
	Duration      uint8
	VolumeLeft    uint8
	VolumeRight   uint8
	EnvelopeLevel uint8
	Frequency     uint16
	Phase         uint8
	LFSRShift     uint16 // voice 6 only
	TapIndex      uint8  // voice 6 only
	Sample        uint8  // current wavetable byte, read via MemoryReader; 0 for voice 6
}

// Snapshot is a point-in-time read of all six VSU voices, suitable for a
// meter display or a scripted-playback trace.
type Snapshot struct {
	Voices [6]VoiceSnapshot
}

// Extract reads the current state of every voice in v into a Snapshot.
// reader supplies raw wavetable bytes for the Sample field; callers
// ordinarily pass the same *vsu.VSU for both arguments, since *vsu.VSU
// satisfies MemoryReader itself.
func Extract(reader MemoryReader, v *vsu.VSU) Snapshot {
	var s Snapshot
	for i, voice := range v.DebugVoices() {
		pc := voice.PlayControl()
		vol := voice.Volume()
		env := voice.Envelope()
		dbg := voice.DebugState()

		var sample uint8
		if !dbg.IsNoise && dbg.WaveIndex <= 4 {
			offset := (uint16(dbg.WaveIndex)*waveTableEntries + uint16(dbg.Phase)) * waveTableStride
			sample = reader.ReadRaw(offset)
		}

		s.Voices[i] = VoiceSnapshot{
			Index:         i + 1,
			Enabled:       pc.Enable,
			UseDuration:   pc.UseDuration,
			Duration:      pc.Duration,
			VolumeLeft:    vol.Left,
			VolumeRight:   vol.Right,
			EnvelopeLevel: env.Level,
			Frequency:     dbg.Frequency,
			Phase:         dbg.Phase,
			LFSRShift:     dbg.LFSRShift,
			TapIndex:      dbg.TapIndex,
			Sample:        sample,
		}
	}
	return s
}
