package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/status"
	"github.com/lixenwraith/vi-snake/vmath"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code: 0 on quit, 1 on help or failure, 2 on a bad flag
func run(args []string) (code int) {
	cfg, err := config.Parse("vi-snake", args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 1
		}
		return 2
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("starting: wrap=%t difficulty=%s seed=%d", cfg.Wrap, cfg.Difficulty, seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	var finiOnce sync.Once
	fini := func() { finiOnce.Do(screen.Fini) }
	defer fini()

	// Panic Recovery: restore the terminal before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-SNAKE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			log.Printf("crash: %v", r)
			code = 1
		}
	}()

	screen.HideCursor()
	screen.Clear()

	reg := status.NewRegistry()
	observers := []engine.Observer{engine.NewTelemetry(reg)}

	audioCfg := audio.LoadAudioConfig()
	if cfg.Mute {
		audioCfg.Enabled = false
	}
	sounds := audio.NewSoundManager(audioCfg)
	if err := sounds.Initialize(); err != nil {
		log.Printf("audio unavailable: %v (continuing without audio)", err)
	} else {
		defer sounds.Cleanup()
		observers = append(observers, sounds)
	}

	src := input.NewSource(screen)
	defer src.Close()

	state := engine.NewGameState(cfg.StateConfig(), vmath.NewFastRand(seed))
	loop := engine.NewLoop(state, render.NewRenderer(screen), src, engine.NewTimeProvider(), observers...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = loop.Run(ctx)
	log.Printf("exit: %s", reg.Summary())

	if err != nil && !errors.Is(err, context.Canceled) {
		fini()
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		return 1
	}
	return 0
}
