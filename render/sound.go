package render

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/pixel/assets"
	"github.com/milk9111/pixel/logger"
	"github.com/milk9111/pixel/obj"
)

const sampleRate = 44100

// Sound plays the synthesised effects through ebiten's audio context.
type Sound struct {
	ctx   *audio.Context
	pcm   map[obj.SoundName][]byte
	muted bool
	log   *logrus.Entry
}

// NewSound renders every tone once. There can be only one audio context per
// process, so call it once.
func NewSound() *Sound {
	s := &Sound{
		ctx: audio.NewContext(sampleRate),
		pcm: make(map[obj.SoundName][]byte, len(assets.Tones)),
		log: logger.For("sound"),
	}
	for name, tone := range assets.Tones {
		s.pcm[obj.SoundName(name)] = tone.PCM16(sampleRate)
	}
	return s
}

// SetMuted silences further effects.
func (s *Sound) SetMuted(muted bool) { s.muted = muted }

func (s *Sound) Play(name obj.SoundName) {
	if s.muted {
		return
	}
	b, ok := s.pcm[name]
	if !ok {
		s.log.WithField("sound", name).Warn("unknown sound")
		return
	}
	s.ctx.NewPlayerFromBytes(b).Play()
}
