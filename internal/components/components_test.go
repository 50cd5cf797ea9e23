package components

import (
	"math"
	"testing"

	"github.com/mironco/blockbuilder/internal/engine"
	"github.com/mironco/blockbuilder/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func near(a, b rl.Vector3) bool {
	const eps = 1e-4
	return math.Abs(float64(a.X-b.X)) < eps &&
		math.Abs(float64(a.Y-b.Y)) < eps &&
		math.Abs(float64(a.Z-b.Z)) < eps
}

func newFloor(w *physics.PhysicsWorld) *engine.GameObject {
	floor := engine.NewGameObject("Floor")
	floor.Transform.Position = rl.Vector3{Y: -0.5}
	floor.AddComponent(NewBoxCollider(rl.Vector3{X: 40, Y: 1, Z: 40}))
	floor.AddComponent(NewStaticBody())
	w.AddObject(floor)
	return floor
}

func newPlayer(w *physics.PhysicsWorld, pos rl.Vector3) *CharacterController {
	player := engine.NewGameObject("Player")
	player.Transform.Position = pos
	ctrl := NewCharacterController()
	player.AddComponent(ctrl)
	rb := NewRigidbody()
	rb.Kinematic = true
	player.AddComponent(rb)
	w.AddObject(player)
	return ctrl
}

func settle(w *physics.PhysicsWorld, frames int) {
	for range frames {
		w.Step(1.0 / 60)
	}
}

func TestBoxColliderBounds(t *testing.T) {
	parent := engine.NewGameObject("Shootables")
	parent.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}
	box := engine.NewGameObject("Box")
	box.Transform.Position = rl.Vector3{X: 1}
	parent.AddChild(box)
	col := NewBoxCollider(rl.Vector3{X: 1, Y: 1, Z: 1})
	box.AddComponent(col)

	b := col.Bounds()
	if !near(b.Center(), rl.Vector3{X: 2}) {
		t.Errorf("center = %+v, want (2,0,0)", b.Center())
	}
	if !near(b.Size(), rl.Vector3{X: 2, Y: 2, Z: 2}) {
		t.Errorf("size = %+v, want (2,2,2)", b.Size())
	}
}

func TestRigidbodyKinds(t *testing.T) {
	if s := NewStaticBody(); s.Mass != 0 || s.IsKinematic() {
		t.Error("static body should have zero mass and not be kinematic")
	}
	rb := NewRigidbody()
	if rb.Mass != 1 || rb.IsKinematic() {
		t.Error("default body should have unit mass")
	}
	rb.Kinematic = true
	if !rb.IsKinematic() {
		t.Error("IsKinematic should follow the field")
	}
}

func TestCharacterControllerLandsOnFloor(t *testing.T) {
	w := physics.NewPhysicsWorld()
	newFloor(w)
	ctrl := newPlayer(w, rl.Vector3{Y: 10})

	settle(w, 240)

	if !ctrl.OnGround() {
		t.Fatal("character should be grounded after falling")
	}
	feet := ctrl.PhysicsLocation().Y - ctrl.Height/2
	if math.Abs(float64(feet)) > 0.05 {
		t.Errorf("feet at %v, want ~0", feet)
	}
}

func TestCharacterControllerJumpOnlyWhenGrounded(t *testing.T) {
	w := physics.NewPhysicsWorld()
	newFloor(w)
	ctrl := newPlayer(w, rl.Vector3{Y: 10})

	ctrl.Jump()
	if ctrl.VerticalSpeed() == ctrl.JumpSpeed {
		t.Error("jump in mid-air should be ignored")
	}

	settle(w, 240)
	ctrl.Jump()
	if ctrl.VerticalSpeed() != ctrl.JumpSpeed {
		t.Errorf("vertical speed = %v, want %v", ctrl.VerticalSpeed(), ctrl.JumpSpeed)
	}

	before := ctrl.PhysicsLocation().Y
	w.Step(1.0 / 60)
	if ctrl.PhysicsLocation().Y <= before {
		t.Error("character should rise after a jump")
	}
}

func TestCharacterControllerWalks(t *testing.T) {
	w := physics.NewPhysicsWorld()
	newFloor(w)
	ctrl := newPlayer(w, rl.Vector3{Y: 10})
	settle(w, 240)

	start := ctrl.PhysicsLocation()
	ctrl.SetWalkDirection(rl.Vector3{X: 0.1, Y: 5, Z: 0})
	settle(w, 60)

	moved := rl.Vector3Subtract(ctrl.PhysicsLocation(), start)
	if math.Abs(float64(moved.X-6)) > 0.01 {
		t.Errorf("moved %v along X, want 6 (0.1 per tick for 60 ticks)", moved.X)
	}
	if math.Abs(float64(moved.Y)) > 0.05 {
		t.Errorf("vertical walk component should be ignored, moved %v", moved.Y)
	}
}

func TestCharacterControllerBlockedByWall(t *testing.T) {
	w := physics.NewPhysicsWorld()
	newFloor(w)
	wall := engine.NewGameObject("Wall")
	wall.Transform.Position = rl.Vector3{X: 5, Y: 5}
	wall.AddComponent(NewBoxCollider(rl.Vector3{X: 1, Y: 10, Z: 10}))
	w.AddObject(wall)

	ctrl := newPlayer(w, rl.Vector3{Y: 10})
	settle(w, 240)
	ctrl.SetWalkDirection(rl.Vector3{X: 0.2})
	settle(w, 120)

	maxX := float32(4.5) - ctrl.Radius
	if ctrl.PhysicsLocation().X > maxX+0.01 {
		t.Errorf("character passed through wall: x=%v", ctrl.PhysicsLocation().X)
	}
}

func TestCharacterControllerStepsUpLedge(t *testing.T) {
	w := physics.NewPhysicsWorld()
	newFloor(w)
	ledge := engine.NewGameObject("Ledge")
	ledge.Transform.Position = rl.Vector3{X: 10, Y: 0.15}
	ledge.AddComponent(NewBoxCollider(rl.Vector3{X: 10, Y: 0.3, Z: 10}))
	w.AddObject(ledge)

	ctrl := newPlayer(w, rl.Vector3{Y: 10})
	settle(w, 240)
	ctrl.SetWalkDirection(rl.Vector3{X: 0.1})
	settle(w, 90)

	feet := ctrl.PhysicsLocation().Y - ctrl.Height/2
	if feet < 0.25 {
		t.Errorf("character should stand on the ledge, feet at %v", feet)
	}
}

func TestCameraBasis(t *testing.T) {
	cam := NewCamera()
	cam.Yaw = 90

	if !near(cam.Direction(), rl.Vector3{Z: 1}) {
		t.Errorf("Direction() = %+v, want +Z", cam.Direction())
	}
	if !near(cam.Left(), rl.Vector3{X: 1}) {
		t.Errorf("Left() = %+v, want +X", cam.Left())
	}

	up := rl.Vector3{Y: 1}
	want := rl.Vector3Normalize(rl.Vector3CrossProduct(up, cam.Direction()))
	if !near(cam.Left(), want) {
		t.Errorf("Left() should equal up × forward, got %+v want %+v", cam.Left(), want)
	}
}

func TestCameraRotateClampsPitch(t *testing.T) {
	cam := NewCamera()
	cam.Rotate(100, -10000)
	if cam.Pitch != MaxPitch {
		t.Errorf("Pitch = %v, want %v", cam.Pitch, MaxPitch)
	}
	if cam.Yaw != -90+100*cam.LookSpeed {
		t.Errorf("Yaw = %v", cam.Yaw)
	}
	cam.Rotate(0, 10000)
	if cam.Pitch != -MaxPitch {
		t.Errorf("Pitch = %v, want %v", cam.Pitch, -MaxPitch)
	}
}

func TestCameraLookAt(t *testing.T) {
	cam := NewCamera()
	cam.LookAt(rl.Vector3{Z: 3})
	if !near(cam.Direction(), rl.Vector3{Z: 1}) {
		t.Errorf("Direction() = %+v, want +Z", cam.Direction())
	}
	cam.LookAt(rl.Vector3{})
	if !near(cam.Direction(), rl.Vector3{Z: 1}) {
		t.Error("zero LookAt should leave the camera unchanged")
	}
}

func TestCameraFollowsGameObject(t *testing.T) {
	obj := engine.NewGameObject("MainCamera")
	cam := NewCamera()
	obj.AddComponent(cam)
	obj.Transform.Position = rl.Vector3{X: 1, Y: 2, Z: 3}

	rc := cam.GetRaylibCamera()
	if !near(rc.Position, obj.Transform.Position) {
		t.Errorf("camera position = %+v", rc.Position)
	}
	if !near(rl.Vector3Subtract(rc.Target, rc.Position), cam.Direction()) {
		t.Error("target should be one unit along the look direction")
	}
}
