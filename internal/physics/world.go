package physics

import (
	"github.com/mironco/blockbuilder/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TickRate is the reference rate, in ticks per second, that per-tick
// quantities such as a walk direction are expressed in.
const TickRate = 60.0

// MaxStepTime caps the time one Step simulates. Time beyond it is dropped,
// so a stalled frame slows the world down instead of tunnelling bodies.
const MaxStepTime = 0.25

// Collider is implemented by components that occupy space.
type Collider interface {
	Bounds() AABB
}

// Body is implemented by rigidbody components.
type Body interface {
	IsKinematic() bool
}

// Controller is implemented by components the physics world advances each
// step, such as character controllers.
type Controller interface {
	PhysicsStep(deltaTime float32, world *PhysicsWorld)
}

type PhysicsWorld struct {
	Gravity    rl.Vector3
	Kinematics []*engine.GameObject // moved by controllers (player)
	Statics    []*engine.GameObject // immovable (floor, placed boxes)
	members    map[*engine.GameObject]bool
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		Gravity:    rl.Vector3{X: 0, Y: -60.0, Z: 0},
		Kinematics: make([]*engine.GameObject, 0),
		Statics:    make([]*engine.GameObject, 0),
		members:    make(map[*engine.GameObject]bool),
	}
}

// AddObject registers g. Objects with a kinematic body are advanced by
// Step; everything else, mass-zero rigidbodies included, is static.
func (p *PhysicsWorld) AddObject(g *engine.GameObject) {
	if p.members[g] {
		return
	}
	p.members[g] = true
	if body, ok := engine.FindComponent[Body](g); ok && body.IsKinematic() {
		p.Kinematics = append(p.Kinematics, g)
		return
	}
	p.Statics = append(p.Statics, g)
}

// RemoveObject unregisters g and reports whether it was present.
func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) bool {
	if !p.members[g] {
		return false
	}
	delete(p.members, g)
	p.Kinematics = removeFrom(p.Kinematics, g)
	p.Statics = removeFrom(p.Statics, g)
	return true
}

func (p *PhysicsWorld) Contains(g *engine.GameObject) bool {
	return p.members[g]
}

func (p *PhysicsWorld) Count() int {
	return len(p.members)
}

// Step advances every kinematic controller by deltaTime, in ticks no longer
// than 1/TickRate.
func (p *PhysicsWorld) Step(deltaTime float32) {
	if deltaTime > MaxStepTime {
		deltaTime = MaxStepTime
	}
	const tick = float32(1.0 / TickRate)
	for deltaTime > 0 {
		dt := min(deltaTime, tick)
		p.advance(dt)
		deltaTime -= dt
	}
}

func (p *PhysicsWorld) advance(deltaTime float32) {
	for _, obj := range p.Kinematics {
		if !obj.Active {
			continue
		}
		for _, c := range obj.Components() {
			if ctrl, ok := c.(Controller); ok {
				ctrl.PhysicsStep(deltaTime, p)
			}
		}
	}
}

// StaticBounds returns the bounds of every active static collider.
func (p *PhysicsWorld) StaticBounds() []AABB {
	bounds := make([]AABB, 0, len(p.Statics))
	for _, obj := range p.Statics {
		if !obj.Active {
			continue
		}
		if col, ok := engine.FindComponent[Collider](obj); ok {
			bounds = append(bounds, col.Bounds())
		}
	}
	return bounds
}

func removeFrom(list []*engine.GameObject, g *engine.GameObject) []*engine.GameObject {
	for i, obj := range list {
		if obj == g {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
