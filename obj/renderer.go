package obj

import "github.com/milk9111/pixel/common"

// DrawOpts tweaks a sprite draw.
type DrawOpts struct {
	Frame   int
	Variant int
	FlipX   bool
	// White draws the hit flash silhouette.
	White bool
	// Alpha in [0,1]; zero means opaque.
	Alpha float64
}

// HUD is the overlay state drawn on top of the level.
type HUD struct {
	HP     int
	MaxHP  int
	Shield bool
	Coins  int
}

// Renderer is a backend that can draw sprites and text. Rects are in screen
// space.
type Renderer interface {
	DrawSprite(kind Kind, dst common.Rect, opts DrawOpts)
	DrawText(text string, x, y int)
	DrawHUD(h HUD)
}

// SoundName identifies a one-shot effect.
type SoundName string

const (
	SoundCoin   SoundName = "coin"
	SoundHit    SoundName = "hit"
	SoundHeart  SoundName = "heart"
	SoundShield SoundName = "shield"
	SoundSlug   SoundName = "slug"
	SoundCannon SoundName = "cannon"
	SoundWin    SoundName = "win"
	SoundLose   SoundName = "lose"
)

// Sound plays one-shot effects.
type Sound interface {
	Play(name SoundName)
}

type nopSound struct{}

func (nopSound) Play(SoundName) {}
