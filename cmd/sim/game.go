package main

import (
	"fmt"
	"log/slog"

	"entity-engine/internal/engineconfig"
	"entity-engine/internal/mapgen"
	"entity-engine/internal/motion"
	"entity-engine/internal/object"
	"entity-engine/internal/physics"
	"entity-engine/internal/physics/solver"
	"entity-engine/internal/render"
	"entity-engine/internal/volume"
	"entity-engine/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// state is where the round is.
type state int

const (
	playing state = iota
	won
	lost
)

func (s state) String() string {
	switch s {
	case won:
		return "won"
	case lost:
		return "lost"
	}
	return "playing"
}

const (
	playerName   = "Player"
	playerRadius = 0.5
	// loseHeight is how far the player may fall before the round is lost.
	loseHeight = -5
	// steerForce pushes the player towards the finish each tick when autopilot is on.
	steerForce = 6
)

// game is one round: a level, the player ball and the rules that end the round.
type game struct {
	log     *slog.Logger
	world   *world.World
	physics *solver.System

	player    *object.Object
	finish    *object.Object
	patrols   []*motion.Patrol
	score     int
	state     state
	tick      int
	autopilot bool
}

func newGame(cfg engineconfig.Config, lvl mapgen.Level, log *slog.Logger) *game {
	w := world.NewSeeded(cfg.Simulation.Seed)
	w.ShuffleObjects(cfg.Simulation.Shuffle)
	for _, o := range lvl.Objects {
		w.AddGameObject(o)
	}
	g := &game{
		log:       log,
		world:     w,
		physics:   solver.New(w, cfg.Physics),
		patrols:   lvl.Patrols,
		autopilot: true,
	}
	for _, l := range lvl.Links {
		g.physics.AddConstraint(solver.NewDistanceConstraint(l.A, l.B, l.MaxDistance))
	}
	g.finish = w.FindByName(mapgen.NameFinish)
	g.player = newPlayer(lvl.Start)
	w.AddGameObject(g.player)
	g.player.OnCollisionBegin(func(other *object.Object) {
		if other.Name() == mapgen.NameWall || other.Name() == mapgen.NameObstacle {
			log.Debug("bump", "tick", g.tick, "object", other.Name(), "id", other.ID())
		}
	})
	log.Info("level ready", "objects", w.Len(), "links", len(lvl.Links), "patrols", len(lvl.Patrols), "start", fmtVec(lvl.Start), "gravity", g.physics.GravityEnabled())
	return g
}

func newPlayer(at rl.Vector3) *object.Object {
	p := object.New(playerName)
	p.SetTag(playerName)
	p.SetBoundingVolume(volume.NewSphere(playerRadius))
	p.Transform().SetPosition(at).SetScale(rl.NewVector3(playerRadius, playerRadius, playerRadius))
	body := physics.NewBody(1)
	body.InitSphereInertia(playerRadius)
	p.SetPhysicsObject(body)
	p.SetRenderObject(render.NewObject(render.Sphere, rl.SkyBlue))
	return p
}

// step runs one fixed tick. It returns false once the round is over.
func (g *game) step(dt float32) bool {
	if g.state != playing {
		return false
	}
	g.tick++
	g.steer()
	for _, p := range g.patrols {
		p.Update(dt)
	}
	g.world.Update()
	g.physics.Update(dt)
	g.bonusCollect()
	g.gameWin()
	g.gameLose()
	return g.state == playing
}

func (g *game) steer() {
	if !g.autopilot || g.finish == nil {
		return
	}
	d := rl.Vector3Subtract(g.finish.Transform().Position, g.player.Transform().Position)
	d.Y = 0
	if rl.Vector3Length(d) < 1e-3 {
		return
	}
	g.player.PhysicsObject().AddForce(rl.Vector3Scale(rl.Vector3Normalize(d), steerForce))
}

func (g *game) bonusCollect() {
	if !g.player.OnTriggerEnter(g.world.GetAllObjs(), mapgen.NameCoin) {
		return
	}
	coin, ok := g.world.ConsumeTriggerTarget(g.player, true)
	if !ok {
		return
	}
	g.score++
	g.log.Info("coin collected", "tick", g.tick, "id", coin.ID(), "score", g.score)
}

func (g *game) gameWin() {
	if !g.player.OnTriggerEnter(g.world.GetAllObjs(), mapgen.NameFinish) {
		return
	}
	g.player.ClearTriggerTarget()
	g.state = won
	g.log.Info("finish reached", "tick", g.tick, "score", g.score)
}

func (g *game) gameLose() {
	if g.state != playing || g.player.Transform().Position.Y > loseHeight {
		return
	}
	g.state = lost
	g.log.Info("fell off the level", "tick", g.tick, "score", g.score)
}

// drawables lists every object for the window loop.
func (g *game) drawables() []render.Drawable {
	objs := g.world.GetAllObjs()
	out := make([]render.Drawable, 0, len(objs))
	for _, o := range objs {
		out = append(out, o)
	}
	return out
}

// applyConfig takes the runtime-adjustable parts of a reloaded config.
func (g *game) applyConfig(cfg engineconfig.Config) {
	p := cfg.Physics
	g.physics.UseGravity(p.UseGravity)
	g.physics.SetGravity(rl.NewVector3(p.Gravity[0], p.Gravity[1], p.Gravity[2]))
	g.world.ShuffleObjects(cfg.Simulation.Shuffle)
	g.log.Info("config applied", "gravity", p.UseGravity, "shuffle", cfg.Simulation.Shuffle)
}

// status is the HUD text for the window.
func (g *game) status() []string {
	gravity := "off"
	if g.physics.GravityEnabled() {
		gravity = "on"
	}
	return []string{
		fmt.Sprintf("Score: %d", g.score),
		fmt.Sprintf("Tick: %d (%s)", g.tick, g.state),
		"Gravity: " + gravity,
	}
}

func fmtVec(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
