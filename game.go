package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/pixel/logger"
	"github.com/milk9111/pixel/obj"
	"github.com/milk9111/pixel/render"
	"github.com/milk9111/pixel/session"
)

// Game adapts a session to ebiten's game loop.
type Game struct {
	frames int
	debug  bool

	session *session.Session
	screen  render.Screen

	// ui is rebuilt whenever the scene or the level list changes.
	ui      *ebitenui.UI
	uiScene session.Scene
	uiKey   string
	// clicked carries edges from menu buttons into the next session update.
	clicked obj.InputState
}

func NewGame(s *session.Session, debug bool) *Game {
	g := &Game{
		debug:   debug,
		session: s,
		screen:  render.Screen{Debug: debug},
		uiScene: -1,
	}
	g.refreshUI()
	return g
}

func (g *Game) Update() error {
	g.frames++
	if tps := g.session.Specs().Game.MaxFPS; tps != ebiten.TPS() {
		ebiten.SetTPS(tps)
	}

	if g.ui != nil {
		g.ui.Update()
	}

	in := render.PollInput()
	in = merge(in, g.clicked)
	g.clicked = obj.InputState{}

	if err := g.session.Update(in); err != nil {
		logger.For("game").WithError(err).Warn("update")
	}
	g.refreshUI()
	return nil
}

func merge(a, b obj.InputState) obj.InputState {
	a.PausePressed = a.PausePressed || b.PausePressed
	a.RestartPressed = a.RestartPressed || b.RestartPressed
	a.ConfirmPressed = a.ConfirmPressed || b.ConfirmPressed
	a.BackPressed = a.BackPressed || b.BackPressed
	return a
}

func (g *Game) refreshUI() {
	scene := g.session.Scene()
	key := fmt.Sprint(g.session.MenuLines(), g.session.Err())
	if scene == g.uiScene && key == g.uiKey {
		return
	}
	g.uiScene, g.uiKey = scene, key
	switch scene {
	case session.SceneMenu:
		g.ui = NewMenuUI(g)
	case session.ScenePause:
		g.ui = NewPauseUI(g)
	default:
		g.ui = nil
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	g.screen.Target = screen

	scene := g.session.Scene()
	if scene != session.SceneMenu {
		g.session.Map.Draw(&g.screen)
	}
	switch scene {
	case session.SceneCompleted, session.SceneLost:
		g.screen.DrawText(g.session.Banner(), 40, 80)
	}
	if g.ui != nil {
		g.ui.Draw(screen)
	}

	if g.debug {
		wx, wy := g.session.Map.Camera.ScreenToWorld(ebiten.CursorPosition())
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Map: %d    Cursor: %d,%d", g.frames, ebiten.ActualFPS(), g.session.Map.Frame(), wx, wy), 0, screen.Bounds().Dy()-16)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	spec := g.session.Specs().Game
	return float64(spec.ScreenW), float64(spec.ScreenH)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
