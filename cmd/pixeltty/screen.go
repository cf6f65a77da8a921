package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/pixel/common"
	"github.com/milk9111/pixel/obj"
)

type glyph struct {
	r     rune
	color tcell.Color
}

var glyphs = map[obj.Kind]glyph{
	obj.KindPlayer:           {'@', tcell.ColorYellow},
	obj.KindDirt:             {'#', tcell.ColorSaddleBrown},
	obj.KindBackgroundDirt:   {'.', tcell.ColorSaddleBrown},
	obj.KindBricks:           {'=', tcell.ColorFireBrick},
	obj.KindBackgroundBricks: {'.', tcell.ColorMaroon},
	obj.KindTree:             {'T', tcell.ColorGreen},
	obj.KindWeb:              {'%', tcell.ColorSilver},
	obj.KindOverlay:          {' ', tcell.ColorDefault},
	obj.KindCoin:             {'o', tcell.ColorGold},
	obj.KindChest:            {'C', tcell.ColorOrange},
	obj.KindHeart:            {'+', tcell.ColorRed},
	obj.KindShield:           {'O', tcell.ColorDeepSkyBlue},
	obj.KindSpike:            {'^', tcell.ColorSilver},
	obj.KindLadder:           {'H', tcell.ColorTan},
	obj.KindWater:            {'~', tcell.ColorBlue},
	obj.KindFinish:           {'F', tcell.ColorWhite},
	obj.KindHint:             {'?', tcell.ColorLightYellow},
	obj.KindSlug:             {'s', tcell.ColorLimeGreen},
	obj.KindBat:              {'v', tcell.ColorPurple},
	obj.KindSkeleton:         {'S', tcell.ColorWhite},
	obj.KindSpider:           {'X', tcell.ColorGray},
	obj.KindSpiderThread:     {'|', tcell.ColorWhite},
	obj.KindGhost:            {'G', tcell.ColorLightCyan},
	obj.KindCannon:           {'K', tcell.ColorGray},
	obj.KindCannonball:       {'*', tcell.ColorDarkGray},
}

// cellSurface is the part of tcell.Screen the renderer draws on.
type cellSurface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// Screen implements obj.Renderer on a terminal. The level's screen space is
// scaled down so it fits the terminal.
type Screen struct {
	term cellSurface
	// world size in pixels
	worldW, worldH int
}

func NewScreen(term cellSurface, worldW, worldH int) *Screen {
	return &Screen{term: term, worldW: worldW, worldH: worldH}
}

// cells maps a screen-space rect onto the terminal. Every visible rect covers
// at least one cell.
func (s *Screen) cells(r common.Rect) (x0, y0, x1, y1 int) {
	cols, rows := s.term.Size()
	x0 = common.FloorDiv(r.X*cols, s.worldW)
	y0 = common.FloorDiv(r.Y*rows, s.worldH)
	x1 = max(common.CeilDiv(r.Right()*cols, s.worldW), x0+1)
	y1 = max(common.CeilDiv(r.Bottom()*rows, s.worldH), y0+1)
	return max(x0, 0), max(y0, 0), min(x1, cols), min(y1, rows)
}

func (s *Screen) DrawSprite(kind obj.Kind, dst common.Rect, opts obj.DrawOpts) {
	g, ok := glyphs[kind]
	if !ok {
		return
	}
	style := tcell.StyleDefault.Foreground(g.color)
	switch {
	case opts.White:
		style = style.Foreground(tcell.ColorWhite).Reverse(true)
	case kind == obj.KindOverlay, opts.Alpha > 0 && opts.Alpha < 0.5:
		style = style.Dim(true)
	}
	r := g.r
	if kind == obj.KindPlayer && opts.FlipX {
		r = '&'
	}

	x0, y0, x1, y1 := s.cells(dst)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.term.SetContent(x, y, r, nil, style)
		}
	}
}

func (s *Screen) DrawText(text string, x, y int) {
	cols, rows := s.term.Size()
	cx := x * cols / s.worldW
	cy := y * rows / s.worldH
	for i, line := range strings.Split(text, "\n") {
		s.puts(cx, cy+i, line, tcell.StyleDefault.Bold(true))
	}
}

func (s *Screen) DrawHUD(h obj.HUD) {
	hearts := strings.Repeat("+", h.HP) + strings.Repeat("-", max(h.MaxHP-h.HP, 0))
	shield := ""
	if h.Shield {
		shield = " [O]"
	}
	s.puts(0, 0, fmt.Sprintf(" %s%s  o x %d ", hearts, shield, h.Coins), tcell.StyleDefault.Reverse(true))
}

func (s *Screen) puts(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.term.SetContent(x+i, y, r, nil, style)
	}
}
