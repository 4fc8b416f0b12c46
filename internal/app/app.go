package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"blockly/internal/config"
	"blockly/internal/logger"
	"blockly/internal/server"
	"blockly/internal/view"
	"blockly/pkg/color"
	"blockly/pkg/hud"
	"blockly/pkg/interpreter"
	"blockly/pkg/world"

	"github.com/charmbracelet/log"
)

// ErrProgramFailed is returned when a program run from a file faults
var ErrProgramFailed = errors.New("program failed")

type App struct {
	Help        bool      // Show help message
	Verbose     bool      // Enable verbose output
	NoColor     bool      // Disable colored output
	Window      bool      // Open the game window
	ConfigFile  string    // Path to the YAML config
	Listen      string    // HTTP listen address, overrides the config
	ProgramFile string    // Run this program instead of serving
	Out         io.Writer // Program results; stdout if nil
}

// runtime is everything a run needs, built from the config
type runtime struct {
	cfg   *config.Config
	world *world.World
	board *hud.Board
	it    *interpreter.Interpreter
}

// Config loads the config file and applies the command line overrides
func (a *App) Config() (*config.Config, error) {
	cfg := config.Default()
	if a.ConfigFile != "" {
		var err error
		if cfg, err = config.Load(a.ConfigFile); err != nil {
			return nil, err
		}
	}

	if a.Listen != "" {
		cfg.Listen = a.Listen
	}
	cfg.Verbose = cfg.Verbose || a.Verbose
	cfg.NoColor = cfg.NoColor || a.NoColor

	return cfg, nil
}

// setup loads the config and applies its logging and colour settings
func (a *App) setup() (*config.Config, error) {
	cfg, err := a.Config()
	if err != nil {
		return nil, err
	}

	logger.Init(cfg.Verbose, cfg.NoColor)
	if cfg.NoColor {
		color.EnableColor(false)
	}

	return cfg, nil
}

func (a *App) build(cfg *config.Config) (*runtime, error) {
	text, err := cfg.LevelText()
	if err != nil {
		return nil, err
	}
	if text == "" {
		text = world.DefaultLevel
	}
	level, err := world.ParseLevel(text)
	if err != nil {
		return nil, fmt.Errorf("level: %w", err)
	}

	w := world.New(level, world.WithLogger(logger.For("world")))
	board := hud.NewBoard()
	it := interpreter.NewInterpreter(
		interpreter.WithActuator(w),
		interpreter.WithSensor(w),
		interpreter.WithHUD(board),
		interpreter.WithLogger(logger.For("interpreter")),
		interpreter.WithMaxCallDepth(cfg.MaxCallDepth),
	)

	return &runtime{cfg: cfg, world: w, board: board, it: it}, nil
}

// Run serves the HTTP API or runs ProgramFile, optionally with the game window.
// It returns when the work is done, the window is closed or the process is interrupted.
func (a *App) Run() error {
	cfg, err := a.setup()
	if err != nil {
		return err
	}

	rt, err := a.build(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	work := func(ctx context.Context) error {
		if a.ProgramFile != "" {
			return a.runFile(ctx, rt)
		}
		return server.New(rt.it, rt.world, logger.For("server")).ListenAndServe(ctx, cfg.Listen)
	}

	if !a.Window {
		go rt.world.Drive(ctx, cfg.FrameRate)
		return work(ctx)
	}

	// the window owns the main goroutine and the frame clock
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, 1)
	go func() {
		errc <- work(ctx)
		if a.ProgramFile == "" {
			cancel()
		}
	}()

	if err := view.Run(ctx, rt.world, rt.board, cfg.FrameRate); err != nil {
		return err
	}
	cancel()
	return <-errc
}

// runFile executes a program from disk and prints the outcome and the variables
func (a *App) runFile(ctx context.Context, rt *runtime) error {
	out := a.Out
	if out == nil {
		out = os.Stdout
	}

	log.Info("Processing file", "file", a.ProgramFile)
	input, err := os.ReadFile(a.ProgramFile)
	if err != nil {
		return fmt.Errorf("read program: %w", err)
	}

	outcome := rt.it.Run(ctx, interpreter.SplitProgram(string(input)))

	switch outcome.Status {
	case interpreter.Failed:
		fmt.Fprintln(out, color.Diagnostic(outcome.Action, outcome.Message))
	case interpreter.Interrupted:
		fmt.Fprintln(out, color.Interrupted())
	default:
		fmt.Fprintln(out, color.Success(fmt.Sprintf("hero at %s", rt.world.Hero())))
	}
	fmt.Fprint(out, color.Variables(rt.board.String()))

	if outcome.Status == interpreter.Failed {
		return fmt.Errorf("%w: %w", ErrProgramFailed, outcome.Err)
	}
	return nil
}
