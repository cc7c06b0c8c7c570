package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/language"

	"github.com/lixenwraith/debuff-tracker/audio"
	"github.com/lixenwraith/debuff-tracker/config"
	"github.com/lixenwraith/debuff-tracker/constants"
	"github.com/lixenwraith/debuff-tracker/effect"
	"github.com/lixenwraith/debuff-tracker/event"
	"github.com/lixenwraith/debuff-tracker/input"
	"github.com/lixenwraith/debuff-tracker/render"
	"github.com/lixenwraith/debuff-tracker/tracker"
)

func main() {
	cfg, err := config.Load(constants.AppName, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", constants.AppName, err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", constants.AppName, err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	table, err := effect.LoadTable(cfg.TablePath)
	if err != nil {
		return err
	}
	if cfg.Sort == config.SortName {
		table.Effects = effect.SortByName(table.Effects, language.Russian)
	}
	registry, err := effect.NewRegistry(table)
	if err != nil {
		return fmt.Errorf("effect table: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: runs ahead of the Fini above; os.Exit skips every other defer
	defer func() {
		if r := recover(); r != nil {
			reportCrash(r, debug.Stack(), screen, logFile, os.Stderr)
			os.Exit(1)
		}
	}()

	screen.EnableMouse()

	var opts []tracker.Option
	if cfg.Sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			// Non-fatal, tracker runs without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer sm.Cleanup()
			opts = append(opts, tracker.WithObserver(sm))
		}
	}

	renderer := render.NewTerminalRenderer(screen, registry.Definitions())
	ctrl := tracker.New(registry, renderer, opts...)
	bus := event.NewBus()
	ctrl.Attach(bus)
	handler := input.NewHandler(registry.IDs(), bus, renderer)

	log.Printf("started: %d effects, sort=%s, sound=%v", registry.Len(), cfg.Sort, cfg.Sound)
	eventLoop(screen, handler, bus, ctrl)
	log.Printf("exit: levels %v", ctrl.Snapshot())
	return nil
}

// reportCrash restores the terminal, then writes the panic and stack to the log and to w
// The log file is synced and closed here since the caller exits without running defers
func reportCrash(r any, stack []byte, screen tcell.Screen, logFile *os.File, w io.Writer) {
	screen.Fini()

	log.Printf("CRASHED: %v\n%s", r, stack)
	if logFile != nil {
		logFile.Sync()
		logFile.Close()
	}

	fmt.Fprintf(w, "\n%s CRASHED: %v\n", constants.AppName, r)
	fmt.Fprintf(w, "Stack Trace:\n%s\n", stack)
}

// eventLoop handles one terminal event at a time until quit or screen shutdown
// Each event's UI events are dispatched to completion before the next poll
func eventLoop(screen tcell.Screen, handler *input.Handler, bus *event.Bus, ctrl *tracker.Controller) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if !handler.HandleEvent(ev) {
			return
		}
		if n := bus.Dispatch(); n > 0 {
			log.Printf("dispatched %d: %s at level %d", n, ctrl.Selected(), ctrl.CurrentLevel())
		}
	}
}
