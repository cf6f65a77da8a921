package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/milk9111/pixel/assets"
	"github.com/milk9111/pixel/obj"
)

const sampleRate = beep.SampleRate(44100)

// tone streams pre-rendered mono samples to both channels.
type tone struct {
	samples []float64
	pos     int
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= len(t.samples) {
			return i, i > 0
		}
		v := t.samples[t.pos]
		samples[i][0], samples[i][1] = v, v
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Sound plays effects through the speaker.
type Sound struct {
	mixer   *beep.Mixer
	samples map[obj.SoundName][]float64
}

func NewSound() (*Sound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	s := &Sound{
		mixer:   &beep.Mixer{},
		samples: make(map[obj.SoundName][]float64, len(assets.Tones)),
	}
	for name, t := range assets.Tones {
		s.samples[obj.SoundName(name)] = t.Samples(int(sampleRate))
	}
	speaker.Play(s.mixer)
	return s, nil
}

func (s *Sound) Play(name obj.SoundName) {
	samples, ok := s.samples[name]
	if !ok {
		return
	}
	speaker.Lock()
	s.mixer.Add(&tone{samples: samples})
	speaker.Unlock()
}

func (s *Sound) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}
