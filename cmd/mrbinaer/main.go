// Mrbinaer is a binary-guessing puzzle: type the secret number's binary
// digits, most significant first, and the snowman turns into a tree.
// Clicking the tree ends the round and starts the next.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/phanxgames/mrbinaer"
	"github.com/phanxgames/mrbinaer/window"
)

func main() {
	configPath := flag.String("config", "", "YAML config file overlaid on the defaults")
	verbose := flag.Bool("v", false, "log puzzle events and state transitions to stderr")
	scriptPath := flag.String("script", "", "JSON input script to replay")
	shotDir := flag.String("screenshots", "screenshots", "directory for screenshots")
	flag.Parse()

	logger := mrbinaer.StderrLogger(*verbose)

	cfg, err := mrbinaer.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	var script *mrbinaer.TestRunner
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("read script: %v", err)
		}
		if script, err = mrbinaer.LoadTestScript(data); err != nil {
			log.Fatalf("load script: %v", err)
		}
	}

	app, err := window.NewApp(window.Config{
		Game:          &cfg,
		Settings:      mrbinaer.OpenSettings("mrbinaer", logger),
		Log:           logger,
		ScreenshotDir: *shotDir,
		Script:        script,
	})
	if err != nil {
		log.Fatal(err)
	}
	reason, err := app.Run()
	if err != nil {
		log.Fatal(err)
	}
	logger.Printf("exit: %v", reason)
}
