package vsu

// mixVoice folds one voice's current sample into a running left/right
// accumulator. A voice contributes nothing while disabled, and its gain
// term is zero whenever either the corresponding volume channel or the
// envelope level is zero — matching the hardware's all-or-nothing mute
// rather than a smooth fade to silence.
func mixVoice(v Voice, waveTables []uint8, accLeft, accRight *uint32) {
	pc := v.PlayControl()
	if !pc.Enable {
		return
	}

	sample := uint32(v.Output(waveTables))
	vol := v.Volume()
	env := uint32(v.Envelope().Level)

	*accLeft += mixChannel(sample, uint32(vol.Left), env)
	*accRight += mixChannel(sample, uint32(vol.Right), env)
}

// mixChannel applies one channel's gain curve to a raw sample: gain is
// zero if either the channel volume or the envelope level is zero,
// otherwise (volume*level)>>3 + 1. The result is then applied to the
// sample and halved.
func mixChannel(sample, volume, envelopeLevel uint32) uint32 {
	if volume == 0 || envelopeLevel == 0 {
		return 0
	}
	gain := (volume*envelopeLevel)>>3 + 1
	return (sample * gain) >> 1
}

// mixSample sums all six voices into one stereo frame and shapes the
// result into a signed 16-bit sample: the low 3 bits of each accumulator
// are discarded, the remainder is shifted left 2 bits, and the pair is
// reinterpreted as int16.
func mixSample(voices []Voice, waveTables []uint8) (left, right int16) {
	var accLeft, accRight uint32
	for _, v := range voices {
		mixVoice(v, waveTables, &accLeft, &accRight)
	}

	left = int16((accLeft & 0xFFF8) << 2)
	right = int16((accRight & 0xFFF8) << 2)
	return left, right
}
