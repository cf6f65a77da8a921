package main

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/milk9111/pixel/logger"
)

var (
	panelColor    = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	buttonColor   = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	lockedColor   = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 255}
	selectedColor = color.NRGBA{R: 0x55, G: 0x55, B: 0x22, A: 255}
	textColor     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	errorColor    = color.NRGBA{R: 0xff, G: 0x60, B: 0x60, A: 0xff}
)

type menuItem struct {
	label   string
	enabled bool
	onClick func()
}

// NewMenuUI lists the levels. Locked levels are shown but cannot be clicked.
func NewMenuUI(g *Game) *ebitenui.UI {
	s := g.session
	title := fmt.Sprintf("PIXEL    coins: %d", s.Save.CoinsCount)

	var items []menuItem
	for _, l := range s.Levels.Levels() {
		index := l.Index()
		state := "locked"
		switch {
		case l.IsCompleted():
			state = "done"
		case l.IsAvailable():
			state = "open"
		}
		items = append(items, menuItem{
			label:   fmt.Sprintf("Level %d  [%s]", index+1, state),
			enabled: l.IsAvailable(),
			onClick: func() {
				if err := s.StartLevel(index); err != nil {
					logger.For("menu").WithError(err).WithField("level", index).Warn("cannot start level")
				}
			},
		})
	}

	footer := ""
	if err := s.Err(); err != nil {
		footer = "error: " + err.Error()
	}
	return newPanelUI(g, title, items, s.Selected(), footer)
}

// NewPauseUI builds the pause menu. Buttons feed the same edges the keyboard
// would so the session handles both the same way.
func NewPauseUI(g *Game) *ebitenui.UI {
	items := []menuItem{
		{label: "Resume", enabled: true, onClick: func() { g.clicked.PausePressed = true }},
		{label: "Restart", enabled: true, onClick: func() { g.clicked.RestartPressed = true }},
		{label: "Menu", enabled: true, onClick: func() { g.clicked.BackPressed = true }},
	}
	return newPanelUI(g, "Paused", items, -1, "")
}

func newPanelUI(g *Game, title string, items []menuItem, selected int, footer string) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(panelColor)
	btnImg := imageui.NewNineSliceColor(buttonColor)
	lockedImg := imageui.NewNineSliceColor(lockedColor)
	selectedImg := imageui.NewNineSliceColor(selectedColor)

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace
	btnTextColor := &widget.ButtonTextColor{Idle: textColor, Disabled: color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	spec := g.session.Specs().Game
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(spec.ScreenW/2, spec.ScreenH/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, &face, textColor),
		widget.TextOpts.WidgetOpts(center),
	))

	for i, item := range items {
		idle := btnImg
		switch {
		case !item.enabled:
			idle = lockedImg
		case i == selected:
			idle = selectedImg
		}
		onClick := item.onClick
		btn := widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: idle, Pressed: btnImg, Disabled: lockedImg}),
			widget.ButtonOpts.Text(item.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
		btn.GetWidget().Disabled = !item.enabled
		panel.AddChild(btn)
	}

	if footer != "" {
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(footer, &face, errorColor),
			widget.TextOpts.WidgetOpts(center),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}
