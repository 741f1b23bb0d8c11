package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"

	"github.com/lixenwraith/reel-spin/audio"
	"github.com/lixenwraith/reel-spin/config"
	"github.com/lixenwraith/reel-spin/core"
	"github.com/lixenwraith/reel-spin/engine"
)

// newScreen is replaced in tests with a simulation screen
var newScreen = tcell.NewScreen

func main() {
	// Deferred cleanup inside run completes before the process exits
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "reel-spin: %v\n", err)
		os.Exit(1)
	}
}

// run owns every resource of the process; errors are returned after the terminal is restored
func run(args []string) error {
	// Panic Recovery: ensure terminal is reset even if the main goroutine crashes
	defer core.Recover()

	fs := flag.NewFlagSet("reel-spin", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to YAML config file")
	envPath := fs.String("env", ".env", "Path to .env overrides file")
	debug := fs.Bool("debug", false, "Write debug log to the log directory")
	mute := fs.Bool("mute", false, "Disable audio regardless of config")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(*configPath, *envPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *mute {
		cfg.Audio.Enabled = false
	}

	logger, closeLog, err := setupLogging(*debug || cfg.Logging.Debug, cfg.Logging.Dir)
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer closeLog()

	logger.Info("starting",
		zap.String("config", *configPath),
		zap.Int("reels", cfg.Reels.Count),
		zap.Ints("targets", cfg.Reels.Targets),
		zap.Duration("stagger", cfg.Spin.Stagger),
	)

	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	core.SetCrashScreen(screen)
	// Normal exit terminal cleanup
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()
	screen.EnableMouse()
	screen.HideCursor()

	opts := []engine.Option{engine.WithLogger(logger)}

	// Audio is optional; the machine runs silent when no output device is available
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			defer sm.Cleanup()
			opts = append(opts, engine.WithHandler(audio.NewHandler(sm)))
		}
	}

	game, err := engine.NewGame(screen, cfg, opts...)
	if err != nil {
		logger.Error("invalid machine configuration", zap.Error(err))
		return fmt.Errorf("invalid machine configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game.Run(ctx)

	fields := []zap.Field{zap.Int64("spins", game.Choreographer().Metrics().Completed.Load())}
	if s := game.Choreographer().Current(); s != nil {
		fields = append(fields, zap.String("last_session", s.ID), zap.Duration("last_elapsed", s.Elapsed()))
	}
	logger.Info("exiting", fields...)
	return nil
}
