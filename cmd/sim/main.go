package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"entity-engine/internal/commands"
	"entity-engine/internal/debug"
	"entity-engine/internal/engineconfig"
	"entity-engine/internal/logger"
	"entity-engine/internal/mapgen"
	"entity-engine/internal/render"
	"entity-engine/internal/terminal"

	"github.com/pkg/profile"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "sim:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("sim", flag.ContinueOnError)
	configPath := fs.String("config", engineconfig.EngineConfigPath, "engine config file")
	ticks := fs.Int("ticks", -1, "ticks to run headless (overrides config)")
	levelPath := fs.String("level", "", "grid level file; empty generates one")
	seed := fs.Uint64("seed", 0, "world and level seed (overrides config)")
	scriptPath := fs.String("script", "", "command script file")
	window := fs.Bool("window", false, "open a window instead of running headless")
	watch := fs.Bool("watch", false, "reload the config file when it changes")
	profileMode := fs.String("profile", "", "write a cpu or mem profile to the working directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", *profileMode)
	}

	cfg, err := engineconfig.Load(*configPath)
	if err != nil {
		return err
	}
	if *ticks >= 0 {
		cfg.Simulation.Ticks = *ticks
	}
	if *seed != 0 {
		cfg.Simulation.Seed = *seed
	}
	if *levelPath != "" {
		cfg.Simulation.Level = *levelPath
	}

	lg := logger.New(cfg.Logging.FilePath, cfg.Logging.Level)
	log := lg.Slog()

	grid, err := loadGrid(cfg.Simulation)
	if err != nil {
		return err
	}
	g := newGame(cfg, mapgen.Build(grid, mapgen.DefaultBuildOptions()), log)

	reg := commands.NewRegistry()
	registerCommands(reg, g)
	script, err := loadScript(*scriptPath)
	if err != nil {
		return err
	}

	var reloads <-chan engineconfig.Reload
	if *watch {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if reloads, err = engineconfig.Watch(ctx, *configPath); err != nil {
			return err
		}
	}

	dt := cfg.Simulation.TickDuration()
	meshes := render.NewRegistry()
	meshes.ShowBounds = cfg.Render.ShowBounds
	update := func(float32) bool {
		select {
		case r := <-reloads:
			if r.Err != nil {
				log.Warn("config reload", "err", r.Err)
				break
			}
			g.applyConfig(r.Config)
			meshes.ShowBounds = r.Config.Render.ShowBounds
		default:
		}
		if err := script.Run(reg, g.tick); err != nil {
			log.Warn("script", "err", err)
		}
		return g.step(dt)
	}

	if *window {
		term := terminal.New(lg, reg)
		hud := debug.New(g.status)
		hud.ShowFPS = true
		render.Run("entity-engine", cfg.Render.Width, cfg.Render.Height, render.Loop{
			Update: update,
			Scene:  g.drawables,
			Input:  term.Update,
			Overlay: func() {
				hud.Draw()
				term.Draw()
			},
		}, meshes)
	} else {
		for i := 0; i < cfg.Simulation.Ticks; i++ {
			if !update(dt) {
				break
			}
		}
	}
	log.Info("round over", "state", g.state.String(), "ticks", g.tick, "score", g.score, "contacts", g.physics.Stats().Contacts)
	return nil
}

func loadGrid(sim engineconfig.Simulation) (mapgen.Grid, error) {
	if sim.Level == "" {
		opts := mapgen.DefaultGenerateOptions()
		opts.Seed = int64(sim.Seed)
		return mapgen.Generate(opts), nil
	}
	f, err := os.Open(sim.Level)
	if err != nil {
		return mapgen.Grid{}, fmt.Errorf("open level: %w", err)
	}
	defer f.Close()
	return mapgen.ParseGrid(f)
}

func loadScript(path string) (commands.Script, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	return commands.ParseScript(f)
}
