package main

import (
	"flag"
	"fmt"
	"strconv"

	"entity-engine/internal/commands"
	"entity-engine/internal/mapgen"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// registerCommands wires the console/script surface to g.
func registerCommands(reg *commands.Registry, g *game) {
	gfs := flag.NewFlagSet("gravity", flag.ContinueOnError)
	gOn := gfs.Bool("on", false, "enable gravity")
	gOff := gfs.Bool("off", false, "disable gravity")
	reg.Register("gravity", "--on | --off", gfs, func([]string) error {
		on, off := *gOn, *gOff
		*gOn, *gOff = false, false
		if on == off {
			return fmt.Errorf("gravity: want exactly one of --on, --off")
		}
		g.physics.UseGravity(on)
		g.log.Info("gravity", "on", on)
		return nil
	})

	sfs := flag.NewFlagSet("shuffle", flag.ContinueOnError)
	sOff := sfs.Bool("off", false, "stop shuffling")
	reg.Register("shuffle", "[--off] randomise object order every tick", sfs, func([]string) error {
		off := *sOff
		*sOff = false
		g.world.ShuffleObjects(!off)
		g.log.Info("shuffle", "on", !off)
		return nil
	})

	reg.Register("spawn", "coin <x> <y> <z>", nil, func(args []string) error {
		if len(args) != 4 || args[0] != "coin" {
			return fmt.Errorf("spawn: usage coin <x> <y> <z>")
		}
		p, err := parseVec(args[1:])
		if err != nil {
			return fmt.Errorf("spawn: %w", err)
		}
		c := mapgen.Coin(p)
		c.UpdateBroadphaseAABB()
		g.world.AddGameObject(c)
		g.log.Info("spawned", "object", c.Name(), "id", c.ID(), "at", fmtVec(p))
		return nil
	})

	reg.Register("push", "<x> <y> <z> add a force to the player", nil, func(args []string) error {
		f, err := parseVec(args)
		if err != nil {
			return fmt.Errorf("push: %w", err)
		}
		g.player.PhysicsObject().AddForce(f)
		return nil
	})

	afs := flag.NewFlagSet("autopilot", flag.ContinueOnError)
	aOff := afs.Bool("off", false, "stop steering")
	reg.Register("autopilot", "[--off] steer the player towards the finish", afs, func([]string) error {
		g.autopilot = !*aOff
		*aOff = false
		return nil
	})
}

func parseVec(args []string) (rl.Vector3, error) {
	if len(args) != 3 {
		return rl.Vector3{}, fmt.Errorf("want 3 components, got %d", len(args))
	}
	var v [3]float32
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return rl.Vector3{}, fmt.Errorf("component %d: %w", i, err)
		}
		v[i] = float32(f)
	}
	return rl.NewVector3(v[0], v[1], v[2]), nil
}
