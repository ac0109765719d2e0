package mapgen

import (
	"entity-engine/internal/motion"
	"entity-engine/internal/object"
	"entity-engine/internal/physics"
	"entity-engine/internal/render"
	"entity-engine/internal/volume"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Object names the gameplay code queries for.
const (
	NameFloor    = "Floor"
	NameWall     = "Wall"
	NameCoin     = "Coin"
	NameFinish   = "Finish"
	NameProp     = "Prop"
	NameSlope    = "Slope"
	NameObstacle = "Obstacle"
	NameAnchor   = "Anchor"
	NameLink     = "Link"
)

// CoinRadius is the radius of the pickups placed over floor cells.
const CoinRadius = 0.25

// slopeDegrees is the tilt of slope cells about Z.
const slopeDegrees = 30

// Obstacle patrol: one cell per second along X, turning every second.
const (
	patrolSpeed = 1 // cells per second
	patrolLeg   = 1 // seconds
)

// Pendulum layout in cell units: the anchor hangs high over the cell, links follow at even
// spacing towards one side and each joint may stretch to twice that spacing.
const (
	pendulumHeight  = 13
	pendulumSpacing = 2
	pendulumLinks   = 2
	pendulumSlack   = 2
	pendulumCube    = 0.4
	pendulumBall    = 0.75
)

// BuildOptions controls how grid cells map to world space.
type BuildOptions struct {
	// NodeSize is the world width of one cell on X and Z.
	NodeSize float32
}

// DefaultBuildOptions returns the sizes the demo levels are authored for.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{NodeSize: 2}
}

// Link joins two level objects that may drift no further than MaxDistance apart.
type Link struct {
	A, B        *object.Object
	MaxDistance float32
}

// Level is the result of Build.
type Level struct {
	Objects []*object.Object
	// Links hold pendulum chains together; the caller hands them to the solver.
	Links []Link
	// Patrols move obstacles; the caller updates them every tick.
	Patrols []*motion.Patrol
	// Start is where the player should be placed: above the first Start cell, or above the
	// grid origin when there is none.
	Start rl.Vector3
}

// Build creates the objects for every cell of g. Cell (x, y) is centred on (x*NodeSize, 0,
// y*NodeSize). Everything is static except props and pendulum chains. Coins are trigger spheres.
// Obstacles patrol along X and pendulums hang from a chain of links.
func Build(g Grid, opts BuildOptions) Level {
	size := opts.NodeSize
	if size <= 0 {
		size = DefaultBuildOptions().NodeSize
	}
	floorHalf := rl.NewVector3(0.5*size, 0.1*size, 0.5*size)
	cubeHalf := rl.NewVector3(0.5*size, 0.5*size, 0.5*size)
	lift := func(p rl.Vector3, dy float32) rl.Vector3 { return rl.NewVector3(p.X, p.Y+dy*size, p.Z) }

	lvl := Level{Start: rl.NewVector3(0, 0.8*size, 0)}
	startFound := false
	add := func(o *object.Object) { lvl.Objects = append(lvl.Objects, o) }

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := rl.NewVector3(float32(x)*size, 0, float32(y)*size)
			switch g.At(x, y) {
			case Wall:
				add(box(NameWall, volume.NewAABB(cubeHalf), lift(p, 0.5), rl.Blue, 0))
			case Floor:
				add(box(NameFloor, volume.NewAABB(floorHalf), p, rl.LightGray, 0))
				add(Coin(lift(p, 0.5)))
			case PlainFloor:
				add(box(NameFloor, volume.NewAABB(floorHalf), p, rl.LightGray, 0))
			case Finish:
				add(box(NameFinish, volume.NewAABB(floorHalf), p, rl.Red, 0))
			case Prop:
				add(box(NameFloor, volume.NewAABB(floorHalf), p, rl.LightGray, 0))
				prop := box(NameProp, volume.NewOBB(rl.Vector3Scale(cubeHalf, 0.5)), lift(p, 0.6), rl.DarkGreen, 0.5)
				prop.SetTag(NameProp)
				prop.PhysicsObject().InitCubeInertia(rl.Vector3Scale(cubeHalf, 0.5))
				add(prop)
			case SlopeUp, SlopeDown:
				deg := float32(slopeDegrees)
				if g.At(x, y) == SlopeDown {
					deg = -deg
				}
				s := box(NameSlope, volume.NewOBB(floorHalf), lift(p, 0.3), rl.Maroon, 0)
				s.Transform().SetAxisAngle(rl.NewVector3(0, 0, 1), deg)
				add(s)
			case Obstacle:
				o := box(NameObstacle, volume.NewAABB(cubeHalf), lift(p, 0.5), rl.Orange, 0)
				add(o)
				lvl.Patrols = append(lvl.Patrols, motion.NewPatrol(o, rl.NewVector3(1, 0, 0), patrolSpeed*size, patrolLeg))
			case PendulumLeft, PendulumRight:
				add(box(NameFloor, volume.NewAABB(floorHalf), p, rl.LightGray, 0))
				add(Coin(lift(p, 0.5)))
				side := float32(1)
				if g.At(x, y) == PendulumLeft {
					side = -1
				}
				objs, links := pendulum(lift(p, pendulumHeight), side*pendulumSpacing*size, size)
				lvl.Objects = append(lvl.Objects, objs...)
				lvl.Links = append(lvl.Links, links...)
			case Start:
				add(box(NameFloor, volume.NewAABB(floorHalf), p, rl.LightGray, 0))
				if !startFound {
					lvl.Start = lift(p, 0.8)
					startFound = true
				}
			}
		}
	}
	for _, o := range lvl.Objects {
		o.UpdateBroadphaseAABB()
	}
	return lvl
}

// pendulum builds a static anchor at top, pendulumLinks loose cubes spaced step apart along X and
// a heavy ball at the far end, linked in a chain.
func pendulum(top rl.Vector3, step, size float32) ([]*object.Object, []Link) {
	cubeHalf := rl.NewVector3(pendulumCube*size, pendulumCube*size, pendulumCube*size)
	slack := pendulumSlack * math32.Abs(step)
	along := func(n int) rl.Vector3 { return rl.NewVector3(top.X+float32(n)*step, top.Y, top.Z) }

	anchor := box(NameAnchor, volume.NewAABB(cubeHalf), top, rl.DarkGray, 0)
	objs := []*object.Object{anchor}
	var links []Link
	prev := anchor
	for i := 1; i <= pendulumLinks; i++ {
		link := box(NameLink, volume.NewAABB(cubeHalf), along(i), rl.Gray, 1)
		link.PhysicsObject().InitCubeInertia(cubeHalf)
		objs = append(objs, link)
		links = append(links, Link{A: prev, B: link, MaxDistance: slack})
		prev = link
	}

	r := pendulumBall * size
	ball := object.New(NameObstacle)
	ball.SetBoundingVolume(volume.NewSphere(r))
	ball.Transform().SetPosition(along(pendulumLinks + 2)).SetScale(rl.NewVector3(r, r, r))
	body := physics.NewBody(1)
	body.InitSphereInertia(r)
	ball.SetPhysicsObject(body)
	ball.SetRenderObject(render.NewObject(render.Sphere, rl.Red))
	objs = append(objs, ball)
	links = append(links, Link{A: prev, B: ball, MaxDistance: slack})
	return objs, links
}

// Coin returns a static trigger sphere named NameCoin at position.
func Coin(position rl.Vector3) *object.Object {
	o := object.New(NameCoin)
	o.SetBoundingVolume(volume.NewSphere(CoinRadius))
	o.Transform().SetPosition(position).SetScale(rl.NewVector3(CoinRadius, CoinRadius, CoinRadius))
	body := physics.NewBody(0)
	body.SetTrigger(true)
	body.InitSphereInertia(CoinRadius)
	o.SetPhysicsObject(body)
	o.SetRenderObject(render.NewObject(render.Sphere, rl.Gold))
	return o
}

func box(name string, v *volume.Volume, position rl.Vector3, colour rl.Color, inverseMass float32) *object.Object {
	o := object.New(name)
	o.SetBoundingVolume(v)
	o.Transform().SetPosition(position).SetScale(rl.Vector3Scale(v.HalfSize, 2))
	o.SetPhysicsObject(physics.NewBody(inverseMass))
	o.SetRenderObject(render.NewObject(render.Cube, colour))
	return o
}
