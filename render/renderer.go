// Package render draws the game with ebiten. Sprites are flat colored
// rectangles keyed by object kind.
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/pixel/common"
	"github.com/milk9111/pixel/obj"
)

var (
	Background = color.NRGBA{R: 0x6b, G: 0x8c, B: 0xc4, A: 0xff}
	white      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	outline    = color.NRGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}
)

var kindColors = map[obj.Kind]color.NRGBA{
	obj.KindPlayer:           {R: 0xe8, G: 0xd0, B: 0x3a, A: 0xff},
	obj.KindDirt:             {R: 0x6b, G: 0x4a, B: 0x2b, A: 0xff},
	obj.KindBackgroundDirt:   {R: 0x4a, G: 0x35, B: 0x22, A: 0xff},
	obj.KindBricks:           {R: 0x8a, G: 0x3b, B: 0x2e, A: 0xff},
	obj.KindBackgroundBricks: {R: 0x55, G: 0x2a, B: 0x24, A: 0xff},
	obj.KindTree:             {R: 0x2f, G: 0x6b, B: 0x2f, A: 0xff},
	obj.KindWeb:              {R: 0xdd, G: 0xdd, B: 0xdd, A: 0x80},
	obj.KindOverlay:          {R: 0x10, G: 0x10, B: 0x20, A: 0xff},
	obj.KindCoin:             {R: 0xff, G: 0xc8, B: 0x00, A: 0xff},
	obj.KindChest:            {R: 0x9c, G: 0x6a, B: 0x1e, A: 0xff},
	obj.KindHeart:            {R: 0xe0, G: 0x20, B: 0x40, A: 0xff},
	obj.KindShield:           {R: 0x40, G: 0xa0, B: 0xe0, A: 0xff},
	obj.KindSpike:            {R: 0xb0, G: 0xb0, B: 0xb8, A: 0xff},
	obj.KindLadder:           {R: 0xa0, G: 0x78, B: 0x40, A: 0xff},
	obj.KindWater:            {R: 0x20, G: 0x50, B: 0xc0, A: 0xa0},
	obj.KindFinish:           {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	obj.KindHint:             {R: 0xf0, G: 0xf0, B: 0x90, A: 0xff},
	obj.KindSlug:             {R: 0x80, G: 0xc0, B: 0x40, A: 0xff},
	obj.KindBat:              {R: 0x40, G: 0x30, B: 0x50, A: 0xff},
	obj.KindSkeleton:         {R: 0xe0, G: 0xe0, B: 0xd0, A: 0xff},
	obj.KindSpider:           {R: 0x20, G: 0x20, B: 0x20, A: 0xff},
	obj.KindSpiderThread:     {R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff},
	obj.KindGhost:            {R: 0xc8, G: 0xd8, B: 0xff, A: 0xc0},
	obj.KindCannon:           {R: 0x30, G: 0x30, B: 0x30, A: 0xff},
	obj.KindCannonball:       {R: 0x10, G: 0x10, B: 0x10, A: 0xff},
}

// KindColor returns the fill color for kind. Unknown kinds are drawn magenta.
func KindColor(kind obj.Kind) color.NRGBA {
	if c, ok := kindColors[kind]; ok {
		return c
	}
	return outline
}

// Screen implements obj.Renderer over an ebiten image. Set Target before
// each frame's draw.
type Screen struct {
	Target *ebiten.Image
	// Debug outlines every sprite.
	Debug bool
}

func (s *Screen) DrawSprite(kind obj.Kind, dst common.Rect, opts obj.DrawOpts) {
	if s.Target == nil || kind == obj.KindBarrier && !s.Debug {
		return
	}
	c := KindColor(kind)
	if opts.White {
		c = white
	}
	if opts.Alpha > 0 {
		c.A = uint8(float64(c.A) * common.Clamp(opts.Alpha, 0, 1))
	}
	// animation frames darken slightly so movement reads without sprites
	if opts.Frame%2 == 1 && !opts.White {
		c.R, c.G, c.B = c.R-c.R/8, c.G-c.G/8, c.B-c.B/8
	}

	x, y := float32(dst.X), float32(dst.Y)
	w, h := float32(dst.W), float32(dst.H)
	vector.FillRect(s.Target, x, y, w, h, c, false)

	if kind == obj.KindPlayer || kind == obj.KindGhost || kind == obj.KindSlug {
		// facing marker
		ex := x + w*3/4 - 2
		if opts.FlipX {
			ex = x + w/4 - 2
		}
		vector.FillRect(s.Target, ex, y+h/4, 4, 4, color.Black, false)
	}

	if s.Debug {
		vector.StrokeRect(s.Target, x, y, w, h, 1, outline, false)
	}
}

func (s *Screen) DrawText(text string, x, y int) {
	if s.Target == nil {
		return
	}
	ebitenutil.DebugPrintAt(s.Target, text, x, y)
}

func (s *Screen) DrawHUD(h obj.HUD) {
	if s.Target == nil {
		return
	}
	const size, gap = 16, 6
	for i := 0; i < h.MaxHP; i++ {
		c := KindColor(obj.KindHeart)
		if i >= h.HP {
			c = color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
		}
		vector.FillRect(s.Target, float32(gap+i*(size+gap)), gap, size, size, c, false)
	}
	if h.Shield {
		vector.StrokeRect(s.Target, float32(gap+h.MaxHP*(size+gap)), gap, size, size, 2, KindColor(obj.KindShield), false)
	}
	vector.FillRect(s.Target, gap, 2*gap+size, size, size, KindColor(obj.KindCoin), false)
	ebitenutil.DebugPrintAt(s.Target, fmt.Sprintf("x %d", h.Coins), 2*gap+size, 2*gap+size)
}
