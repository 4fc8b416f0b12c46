package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"blockly/internal/app"
	"blockly/internal/logger"
	"blockly/pkg/color"

	"github.com/charmbracelet/log"
)

// Main entry point for the Blockly dungeon server.
func main() {
	options := app.App{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode (trace every dispatched line)")
	flag.BoolVar(&options.NoColor, "n", false, "No color")
	flag.BoolVar(&options.Window, "w", false, "Open the game window")
	flag.StringVar(&options.ConfigFile, "c", "", "YAML config file")
	flag.StringVar(&options.Listen, "l", "", "Listen address (default from config, localhost:8080)")
	flag.StringVar(&options.ProgramFile, "r", "", "Run a program file instead of serving")

	flag.Parse()

	// App.Run initializes again once the config file is merged in
	logger.Init(options.Verbose, options.NoColor)
	if options.Help {
		fmt.Printf("Usage: %s [options]\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if options.NoColor {
		color.EnableColor(false)
	}

	if flag.NArg() > 0 {
		log.Fatal("Unexpected arguments", "args", flag.Args(), "help", fmt.Sprintf("%s -h", os.Args[0]))
	}

	if err := options.Run(); err != nil {
		if errors.Is(err, app.ErrProgramFailed) {
			os.Exit(1)
		}
		log.Fatal("Failed", "error", err)
	}
}
