package vsu

// Clock periods, all expressed in master (20 MHz) cycles. Each is an
// independent free-running divider; the dispatcher in Advance compares a
// running cycle counter against each period rather than chaining them off
// one another, mirroring rustual-boy-core's Vsu::cycles.
const (
	durationClockPeriod = 76805
	envelopeClockPeriod = 307218
	frequencyClockPeriod = 4
	noiseClockPeriod     = 40
	sampleClockPeriod    = 480

	// sweepModSmallPeriod and sweepModLargePeriod are voice 5's two
	// selectable base periods for the sweep/mod clock (SweepBaseInterval
	// false/true respectively). The dispatcher resolves the active one
	// per-cycle via SweepModVoice.SweepModPeriod.
	sweepModSmallPeriod = 19200
	sweepModLargePeriod = 153600
)

// clocks tracks the running cycle counters for every independent divider
// the dispatcher advances. Each one free-runs and wraps back to zero on
// firing; they are never reset by register writes.
type clocks struct {
	duration uint32
	envelope uint32
	frequency uint32
	sweepMod  uint32
	noise     uint32
	sample    uint32
}
