package main

import (
	"flag"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/pixel/logger"
	"github.com/milk9111/pixel/render"
	"github.com/milk9111/pixel/session"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	level := flag.Int("level", -1, "start directly in this level index")
	dataDir := flag.String("data", session.DefaultDir(), "directory for levels and the save file")
	levelsDir := flag.String("levels-dir", "", "levels directory (default <data>/levels)")
	savePath := flag.String("save", "", "save file (default <data>/save.json)")
	watch := flag.Bool("watch", false, "hot reload prefabs, scripts and levels")
	fps := flag.Int("fps", 0, "override max_fps")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	logger.Init(*debug)
	log := logger.For("main")

	if *levelsDir == "" {
		*levelsDir = filepath.Join(*dataDir, "levels")
	}
	if *savePath == "" {
		*savePath = filepath.Join(*dataDir, "save.json")
	}

	s, err := session.New(session.Config{
		LevelsDir: *levelsDir,
		SavePath:  *savePath,
		Watch:     *watch,
		FPS:       *fps,
	})
	if err != nil {
		log.WithError(err).Fatal("cannot start")
	}
	defer s.Close()

	snd := render.NewSound()
	snd.SetMuted(*mute)
	s.SetSound(snd)

	if *level >= 0 {
		if err := s.StartLevel(*level); err != nil {
			log.WithError(err).WithField("level", *level).Warn("falling back to the menu")
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	spec := s.Specs().Game
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(spec.ScreenW, spec.ScreenH)
	ebiten.SetWindowTitle(spec.Name)
	ebiten.SetTPS(spec.MaxFPS)

	if err := ebiten.RunGame(NewGame(s, *debug)); err != nil {
		log.WithError(err).Fatal("game loop")
	}
}
