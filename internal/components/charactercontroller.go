package components

import (
	"github.com/mironco/blockbuilder/internal/engine"
	"github.com/mironco/blockbuilder/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CharacterController moves a kinematic body through static colliders. The
// walk direction is a displacement per physics tick, like a capsule
// character control; gravity and jumping act on the vertical axis only.
type CharacterController struct {
	engine.BaseComponent

	Radius     float32 // capsule radius
	Height     float32 // total capsule height, caps included
	StepHeight float32 // max ledge climbed without jumping
	JumpSpeed  float32
	FallSpeed  float32 // terminal downward speed

	walkDirection rl.Vector3
	verticalSpeed float32
	grounded      bool
}

func NewCharacterController() *CharacterController {
	return &CharacterController{
		Radius:     1.5,
		Height:     6.0,
		StepHeight: 0.5,
		JumpSpeed:  20.0,
		FallSpeed:  30.0,
	}
}

// SetWalkDirection sets the per-tick displacement used until the next call.
func (c *CharacterController) SetWalkDirection(dir rl.Vector3) {
	c.walkDirection = dir
}

// Jump launches the character if it is standing on something.
func (c *CharacterController) Jump() {
	if !c.grounded {
		return
	}
	c.verticalSpeed = c.JumpSpeed
	c.grounded = false
}

func (c *CharacterController) OnGround() bool {
	return c.grounded
}

func (c *CharacterController) VerticalSpeed() float32 {
	return c.verticalSpeed
}

// PhysicsLocation returns the centre of the capsule.
func (c *CharacterController) PhysicsLocation() rl.Vector3 {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}
	return g.Transform.Position
}

// Bounds approximates the capsule by its bounding box.
func (c *CharacterController) Bounds() physics.AABB {
	return physics.NewAABBFromCenter(c.PhysicsLocation(), rl.Vector3{X: c.Radius * 2, Y: c.Height, Z: c.Radius * 2})
}

// PhysicsStep implements physics.Controller
func (c *CharacterController) PhysicsStep(deltaTime float32, world *physics.PhysicsWorld) {
	if c.GetGameObject() == nil {
		return
	}

	gravity := -world.Gravity.Y
	if c.grounded && c.verticalSpeed <= 0 {
		c.verticalSpeed = 0
	}
	c.verticalSpeed -= gravity * deltaTime
	if c.verticalSpeed < -c.FallSpeed {
		c.verticalSpeed = -c.FallSpeed
	}

	ticks := deltaTime * physics.TickRate
	motion := rl.Vector3{
		X: c.walkDirection.X * ticks,
		Y: c.verticalSpeed * deltaTime,
		Z: c.walkDirection.Z * ticks,
	}

	// Set again if we land
	c.grounded = false
	c.Move(motion, world.StaticBounds())
}

// Move moves the character by motion, resolving against colliders.
// Returns the actual displacement after collision resolution.
func (c *CharacterController) Move(motion rl.Vector3, colliders []physics.AABB) rl.Vector3 {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}

	originalPos := g.Transform.Position

	// Horizontal first so ledges can be stepped onto before falling
	if motion.X != 0 || motion.Z != 0 {
		c.moveWithCollision(g, rl.Vector3{X: motion.X, Z: motion.Z}, colliders)
	}
	if motion.Y != 0 {
		c.moveWithCollision(g, rl.Vector3{Y: motion.Y}, colliders)
	}

	return rl.Vector3Subtract(g.Transform.Position, originalPos)
}

func (c *CharacterController) moveWithCollision(g *engine.GameObject, motion rl.Vector3, colliders []physics.AABB) {
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, motion)
	halfHeight := c.Height / 2

	for _, static := range colliders {
		body := c.Bounds()
		if !body.Intersects(static) {
			continue
		}

		pushOut := body.Resolve(static)
		if pushOut.X == 0 && pushOut.Y == 0 && pushOut.Z == 0 {
			continue
		}

		isHorizontalCollision := (pushOut.X != 0 || pushOut.Z != 0) && pushOut.Y == 0
		if isHorizontalCollision && motion.Y == 0 {
			feetY := g.Transform.Position.Y - halfHeight
			stepHeight := static.Max.Y - feetY

			if stepHeight > 0 && stepHeight <= c.StepHeight {
				raised := body.Translate(rl.Vector3{Y: stepHeight + 0.01})
				if !raised.Intersects(static) {
					g.Transform.Position.Y += stepHeight + 0.01
					c.grounded = true
					continue
				}
			}
		}

		g.Transform.Position = rl.Vector3Add(g.Transform.Position, pushOut)

		if pushOut.Y > 0 {
			c.grounded = true
			c.verticalSpeed = 0
		}
		if pushOut.Y < 0 && c.verticalSpeed > 0 {
			c.verticalSpeed = 0
		}
	}
}
