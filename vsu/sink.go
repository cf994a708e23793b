package vsu

// FrameSink receives one stereo frame every time the sample clock fires.
// Advance calls Append once per elapsed sample period; a nil sink is valid
// and simply discards frames, which is useful for fast-forwarding.
type FrameSink interface {
	Append(left, right int16)
}

// BufferedSink is a pull-based FrameSink: frames accumulate in an internal
// slice until Drain is called, mirroring how a host audio callback pulls a
// chunk of PCM at a time rather than being pushed to directly.
type BufferedSink struct {
	left  []int16
	right []int16
}

// Append appends one stereo frame to the buffer.
func (b *BufferedSink) Append(left, right int16) {
	b.left = append(b.left, left)
	b.right = append(b.right, right)
}

// Len returns the number of buffered, undrained frames.
func (b *BufferedSink) Len() int { return len(b.left) }

// Drain returns all buffered frames as parallel left/right slices and
// empties the buffer. The returned slices are only valid until the next
// call to Append or Drain.
func (b *BufferedSink) Drain() (left, right []int16) {
	left, right = b.left, b.right
	b.left, b.right = nil, nil
	return left, right
}
