package osc

// Square is a pulse oscillator with a per-sample duty cycle.
type Square struct {
	dt    float64
	phase float64
}

// NewSquare creates a pulse oscillator.
func NewSquare(sampleRate float64) (*Square, error) {
	if err := validateSampleRate("square oscillator", sampleRate); err != nil {
		return nil, err
	}

	return &Square{dt: 1 / sampleRate}, nil
}

// Process advances one sample and returns +1 while the phase is below duty,
// -1 otherwise.
func (o *Square) Process(freqHz, duty float64) float64 {
	o.phase = advance(o.phase, freqHz, o.dt)
	if o.phase < duty {
		return 1
	}

	return -1
}

// Next implements Voice.
func (o *Square) Next(freqHz, duty float64) float64 {
	return o.Process(freqHz, duty)
}

// Reset rewinds the phase to zero.
func (o *Square) Reset() {
	o.phase = 0
}

// Reseed restarts the oscillator at phase 0.
func (o *Square) Reseed(uint64) {
	o.Reset()
}

// Phase returns the current normalized phase.
func (o *Square) Phase() float64 { return o.phase }
