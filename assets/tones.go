package assets

import (
	"encoding/binary"
	"math"
	"math/rand/v2"
	"time"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// Tone is a synthesised effect: a linear frequency sweep that fades out.
type Tone struct {
	From     float64
	To       float64
	Duration time.Duration
	Wave     Wave
	Volume   float64
}

// Tones maps effect names to their tone. Names match the game's sound
// effect names.
var Tones = map[string]Tone{
	"coin":   {From: 988, To: 1319, Duration: 90 * time.Millisecond, Wave: WaveSquare, Volume: 0.25},
	"hit":    {From: 220, To: 110, Duration: 180 * time.Millisecond, Wave: WaveNoise, Volume: 0.35},
	"heart":  {From: 523, To: 1047, Duration: 200 * time.Millisecond, Wave: WaveSine, Volume: 0.4},
	"shield": {From: 330, To: 660, Duration: 250 * time.Millisecond, Wave: WaveSquare, Volume: 0.2},
	"slug":   {From: 400, To: 80, Duration: 150 * time.Millisecond, Wave: WaveSquare, Volume: 0.25},
	"cannon": {From: 120, To: 40, Duration: 220 * time.Millisecond, Wave: WaveNoise, Volume: 0.4},
	"win":    {From: 523, To: 1568, Duration: 600 * time.Millisecond, Wave: WaveSine, Volume: 0.4},
	"lose":   {From: 392, To: 98, Duration: 700 * time.Millisecond, Wave: WaveSine, Volume: 0.4},
}

// Samples renders t as mono samples in [-1, 1] at rate.
func (t Tone) Samples(rate int) []float64 {
	n := int(t.Duration.Seconds() * float64(rate))
	out := make([]float64, n)
	// fixed seed so every play of a noise tone sounds the same
	rng := rand.New(rand.NewPCG(1, 2))
	phase := 0.0
	for i := range out {
		p := float64(i) / float64(max(n, 1))
		freq := t.From + (t.To-t.From)*p
		var v float64
		switch t.Wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * phase)
		case WaveSquare:
			v = 1
			if phase >= 0.5 {
				v = -1
			}
		case WaveNoise:
			v = rng.Float64()*2 - 1
		}
		out[i] = v * t.Volume * (1 - p)
		phase += freq / float64(rate)
		phase -= math.Floor(phase)
	}
	return out
}

// PCM16 renders t as 16-bit little-endian stereo.
func (t Tone) PCM16(rate int) []byte {
	samples := t.Samples(rate)
	b := make([]byte, len(samples)*4)
	for i, s := range samples {
		v := uint16(int16(s * math.MaxInt16))
		binary.LittleEndian.PutUint16(b[i*4:], v)
		binary.LittleEndian.PutUint16(b[i*4+2:], v)
	}
	return b
}
