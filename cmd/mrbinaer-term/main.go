// Mrbinaer-term plays the binary-guessing puzzle in a terminal.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/mrbinaer"
	"github.com/phanxgames/mrbinaer/term"
)

func main() {
	configPath := flag.String("config", "", "YAML config file overlaid on the defaults")
	verbose := flag.Bool("v", false, "log puzzle events and state transitions to the -log file")
	logPath := flag.String("log", "mrbinaer-term.log", "file that -v writes to; the terminal is busy drawing")
	mute := flag.Bool("mute", false, "do not open the audio device")
	flag.Parse()

	var logger *mrbinaer.Logger
	if *verbose {
		l, closeLog, err := mrbinaer.OpenLogFile(*logPath)
		if err != nil {
			log.Fatal(err)
		}
		defer closeLog()
		logger = l
	}

	cfg, err := mrbinaer.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	settings := mrbinaer.OpenSettings("mrbinaer", logger)

	var feedback mrbinaer.Feedback = mrbinaer.NopFeedback{}
	if !*mute {
		b, err := term.NewBeeper(settings, logger)
		if err != nil {
			logger.Printf("audio disabled: %v", err)
		} else {
			defer b.Close()
			feedback = b
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	t, err := term.Open(screen, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	game := mrbinaer.NewGame(mrbinaer.GameOptions{
		Config:   &cfg,
		Feedback: feedback,
		Settings: settings,
		Log:      logger,
	})
	reason, err := game.Play(ctx, t, t, ticker.C)
	t.Close()
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
	sessions, wins := game.Stats()
	logger.Printf("exit: %v after %d sessions, %d won", reason, sessions, wins)
}
