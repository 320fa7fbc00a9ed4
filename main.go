package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"rogue/pkg/engine/locale"
	"rogue/pkg/engine/logger"
	"rogue/pkg/engine/terminal"
	"rogue/pkg/game/balance"
	"rogue/pkg/game/config"
	"rogue/pkg/game/devtools"
	"rogue/pkg/game/generator"
	"rogue/pkg/game/level"
	"rogue/pkg/game/raster"
	"rogue/pkg/game/renderer"
	ebitenrenderer "rogue/pkg/game/renderer/ebiten"
	"rogue/pkg/game/state"
	"rogue/pkg/game/storage"
)

// saveTimeout bounds how long the program waits for a background save
// before exiting.
const saveTimeout = 5 * time.Second

type options struct {
	seed       uint64
	level      int
	count      int
	colors     int
	difficulty string
	dump       string
	html       bool
	validate   bool
	view       bool
	redis      string
}

// checkLevel verifies the generated level: structure, connectivity,
// solvability and walkable corridors.
func checkLevel(lv *level.Level, start int) error {
	if err := lv.Validate(); err != nil {
		return err
	}
	if !lv.Reachable(start) {
		return fmt.Errorf("rooms unreachable from room %d", start)
	}
	if !lv.Solvable(start) {
		return fmt.Errorf("puzzle unsolvable from room %d", start)
	}
	gd := raster.Render(lv)
	for i, c := range lv.Corridors {
		if !raster.CorridorWalkable(gd, c) {
			return fmt.Errorf("corridor %d between rooms %d and %d is blocked", i, c.Rooms[0], c.Rooms[1])
		}
	}
	return nil
}

func run(ctx context.Context, log *slog.Logger, opts options) error {
	difficulty, err := balance.ParseDifficulty(opts.difficulty)
	if err != nil {
		return err
	}
	b := balance.New(difficulty)

	genOpts := []generator.Option{
		generator.WithLogger(log),
		generator.WithStrategy(b),
		generator.WithLockColors(opts.colors),
	}
	if opts.seed != 0 {
		genOpts = append(genOpts, generator.WithSeed(opts.seed))
	}
	session := state.NewSession(generator.New(genOpts...), b)

	var store *storage.RedisStore
	var pending []<-chan error
	if opts.redis != "" {
		store = storage.NewRedisStore(opts.redis, log)
		defer store.Close()
	}
	save := func(lv *level.Level) {
		if store == nil {
			return
		}
		renderer.PrintString("SUBTLE{%s}\n", gotext.Get("LEVEL_SAVED", lv.ID))
		pending = append(pending, storage.SaveAsync(ctx, store, lv, log))
	}

	for i := 0; i < max(1, opts.count); i++ {
		if i == 0 {
			err = session.Start(opts.level)
		} else {
			err = session.Advance()
		}
		if err != nil {
			return err
		}
		lv := session.Current()
		logger.WithLevel(log, lv.Number).Debug("level ready", "id", lv.ID, "start_room", session.StartRoom)
		renderer.PrintBullet(gotext.Get("LEVEL_GENERATED", lv.Number, session.StartRoom))

		if opts.validate {
			if err := checkLevel(lv, session.StartRoom); err != nil {
				renderer.PrintString("DENIED{invalid} %s\n", gotext.Get("LEVEL_INVALID", lv.Number, err))
				return fmt.Errorf("level %d: %w", lv.Number, err)
			}
			renderer.PrintString("ITEM{ok} %s\n", gotext.Get("LEVEL_VALID", lv.Number))
		}
		save(lv)
	}

	lv := session.Current()
	dumpOpts := devtools.DumpOptions{
		StartRoom:  session.StartRoom,
		Player:     session.Player,
		ShowPlayer: true,
	}
	switch opts.dump {
	case "":
	case "-":
		dumpOpts.Color = terminal.IsTerminal(os.Stdout)
		if err := devtools.Dump(os.Stdout, lv, dumpOpts); err != nil {
			return err
		}
	default:
		path, err := devtools.DumpToFile(opts.dump, lv, dumpOpts)
		if err != nil {
			return fmt.Errorf("failed to write map dump: %w", err)
		}
		fmt.Println(gotext.Get("DUMP_WRITTEN", path))
	}
	if opts.html {
		path, err := devtools.SaveScreenshotHTML(lv, dumpOpts)
		if err != nil {
			return fmt.Errorf("failed to write screenshot: %w", err)
		}
		fmt.Println(gotext.Get("DUMP_WRITTEN", path))
	}

	if opts.view {
		renderer.PrintString("ACTION{view} GT{VIEW_HINT}\n")
		viewer := ebitenrenderer.New(session,
			ebitenrenderer.WithLogger(log),
			ebitenrenderer.OnLevel(save),
		)
		if err := viewer.Run(); err != nil {
			return err
		}
	}

	waitForSaves(log, pending)
	return nil
}

// waitForSaves gives background saves a bounded chance to finish.
func waitForSaves(log *slog.Logger, pending []<-chan error) {
	deadline := time.After(saveTimeout)
	for _, done := range pending {
		select {
		case <-done:
		case <-deadline:
			log.Warn("Gave up waiting for background saves", "timeout", saveTimeout)
			return
		}
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, renderer.ColorDenied.Sprint(err))
		os.Exit(2)
	}

	var opts options
	flag.Uint64Var(&opts.seed, "seed", cfg.Seed, "random seed (0 picks one)")
	flag.IntVar(&opts.level, "level", cfg.Level, "level number to generate (for developer testing)")
	flag.IntVar(&opts.count, "count", 1, "number of consecutive levels to generate")
	flag.IntVar(&opts.colors, "colors", cfg.LockColors, "number of lock colours per level")
	flag.StringVar(&opts.difficulty, "difficulty", cfg.Difficulty.String(), "easy, normal or hard")
	flag.StringVar(&opts.dump, "dump", "", "write a map dump to this file (- for stdout)")
	flag.BoolVar(&opts.html, "html", false, "save an HTML screenshot of the last level")
	flag.BoolVar(&opts.validate, "validate", false, "check every generated level and fail on the first broken one")
	flag.BoolVar(&opts.view, "view", false, "open a window showing the level (R for the next one)")
	flag.StringVar(&opts.redis, "redis", cfg.RedisAddr, "Redis address to save levels to (empty disables)")
	localeName := flag.String("locale", cfg.Locale.String(), "language for labels and messages")
	flag.Parse()

	log := logger.Setup(cfg.Environment, cfg.LogLevel)

	tag, err := config.ParseLocale(*localeName)
	if err != nil {
		log.Warn("Invalid locale, using default", "locale", *localeName, "error", err)
	}
	if _, err := locale.Setup(tag); err != nil {
		log.Warn("Failed to load message catalog", "error", err)
	}

	if err := run(context.Background(), log, opts); err != nil {
		if errors.Is(err, generator.ErrGenerationFailed) {
			log.Error("Level generation failed", "error", err)
		}
		fmt.Fprintln(os.Stderr, renderer.ColorDenied.Sprint(err))
		os.Exit(1)
	}
}
