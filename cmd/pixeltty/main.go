// Command pixeltty plays the game in a terminal.
package main

import (
	"flag"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/pixel/logger"
	"github.com/milk9111/pixel/session"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	level := flag.Int("level", -1, "start directly in this level index")
	dataDir := flag.String("data", session.DefaultDir(), "directory for levels and the save file")
	watch := flag.Bool("watch", false, "hot reload prefabs, scripts and levels")
	fps := flag.Int("fps", 0, "override max_fps")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	// the terminal owns stdout and stderr while running
	logger.Init(*debug)
	log := logger.For("pixeltty")
	logFile, err := openLog(*dataDir)
	if err == nil {
		logger.Log.SetOutput(logFile)
		defer logFile.Close()
	}

	s, err := session.New(session.Config{
		LevelsDir: filepath.Join(*dataDir, "levels"),
		SavePath:  filepath.Join(*dataDir, "save.json"),
		Watch:     *watch,
		FPS:       *fps,
	})
	if err != nil {
		log.WithError(err).Fatal("cannot start")
	}
	defer s.Close()

	if !*mute {
		snd, err := NewSound()
		if err != nil {
			log.WithError(err).Warn("sound disabled")
		} else {
			s.SetSound(snd)
			defer snd.Close()
		}
	}

	if *level >= 0 {
		if err := s.StartLevel(*level); err != nil {
			log.WithError(err).WithField("level", *level).Warn("falling back to the menu")
		}
	}

	term, err := tcell.NewScreen()
	if err != nil {
		log.WithError(err).Fatal("no terminal")
	}
	if err := term.Init(); err != nil {
		log.WithError(err).Fatal("no terminal")
	}
	defer term.Fini()

	run(term, s)
}

func run(term tcell.Screen, s *session.Session) {
	log := logger.For("pixeltty")
	spec := s.Specs().Game
	screen := NewScreen(term, spec.ScreenW, spec.ScreenH)
	var input Input

	fps := spec.MaxFPS
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := term.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !input.HandleKey(ev) {
					return
				}
			case *tcell.EventResize:
				term.Sync()
			}

		case <-ticker.C:
			if err := s.Update(input.Next()); err != nil {
				log.WithError(err).Warn("update")
			}
			if f := s.Specs().Game.MaxFPS; f != fps {
				fps = f
				ticker.Reset(time.Second / time.Duration(fps))
			}
			term.Clear()
			s.Draw(screen)
			term.Show()
		}
	}
}
