package filter

// Pink turns white noise into pink noise (-3 dB/octave) using Paul Kellet's
// refined filter.
type Pink struct {
	b [7]float64
}

const pinkGain = 0.11

// Process filters one white-noise sample.
func (p *Pink) Process(white float64) float64 {
	b := &p.b
	b[0] = 0.99886*b[0] + white*0.0555179
	b[1] = 0.99332*b[1] + white*0.0750759
	b[2] = 0.96900*b[2] + white*0.1538520
	b[3] = 0.86650*b[3] + white*0.3104856
	b[4] = 0.55000*b[4] + white*0.5329522
	b[5] = -0.7616*b[5] - white*0.0168980
	out := b[0] + b[1] + b[2] + b[3] + b[4] + b[5] + b[6] + white*0.5362
	b[6] = white * 0.115926

	return out * pinkGain
}

// Reset clears the filter state.
func (p *Pink) Reset() {
	p.b = [7]float64{}
}

const (
	brownCutoffHz = 10.0
	brownGain     = 13.7
)

// Brown turns white noise into brown noise with a 10 Hz one-pole low-pass
// and a fixed make-up gain.
type Brown struct {
	lp onePole
}

// NewBrown creates a brown noise filter.
func NewBrown(sampleRate float64) (*Brown, error) {
	if err := validateSampleRate("brown", sampleRate); err != nil {
		return nil, err
	}

	return &Brown{lp: newOnePole(sampleRate)}, nil
}

// Process filters one white-noise sample.
func (b *Brown) Process(white float64) float64 {
	return brownGain * b.lp.process(white, brownCutoffHz)
}

// Reset clears the filter state.
func (b *Brown) Reset() { b.lp.reset() }
