package world

import (
	"fmt"

	"github.com/mironco/blockbuilder/internal/components"
	"github.com/mironco/blockbuilder/internal/config"
	"github.com/mironco/blockbuilder/internal/engine"
	"github.com/mironco/blockbuilder/internal/logger"
	"github.com/mironco/blockbuilder/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	FloorName      = "Floor"
	ShootablesName = "Shootables"
	BoxTag         = "box"
)

// FloorThickness is the height of the floor slab; its top sits at Y=0.
const FloorThickness = 1.0

var boxColors = []rl.Color{
	rl.Red, rl.Blue, rl.Green, rl.Purple, rl.Orange,
	rl.Yellow, rl.Pink, rl.SkyBlue, rl.Lime, rl.Magenta,
}

// World owns the scene graph and physics world. Every placed box is either
// registered in both or in neither.
type World struct {
	Scene      *engine.Scene
	Physics    *physics.PhysicsWorld
	Shootables *engine.GameObject
	Floor      *engine.GameObject
	BoxSize    float32

	log    *zap.Logger
	placed int
}

func New(cfg config.BuildConfig, gravity float32, log *zap.Logger) *World {
	w := &World{
		Scene:   engine.NewScene("Main"),
		Physics: physics.NewPhysicsWorld(),
		BoxSize: cfg.BoxSize,
		log:     log,
	}
	w.Physics.Gravity = rl.Vector3{Y: -gravity}

	w.Shootables = engine.NewGameObject(ShootablesName)
	w.Scene.AddGameObject(w.Shootables)

	w.Floor = engine.NewGameObject(FloorName)
	w.Floor.Transform.Position = rl.Vector3{Y: -FloorThickness / 2}
	size := rl.Vector3{X: cfg.FloorSize, Y: FloorThickness, Z: cfg.FloorSize}
	w.Floor.AddComponent(components.NewBoxCollider(size))
	w.Floor.AddComponent(components.NewStaticBody())
	renderer := components.NewMeshRenderer(rl.LightGray, size)
	renderer.WireColor = rl.Gray
	w.Floor.AddComponent(renderer)
	w.attach(w.Floor)

	return w
}

// Add registers a non-shootable object, such as the player, with the scene
// and, when it has a collider or body, the physics world.
func (w *World) Add(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	if _, ok := engine.FindComponent[physics.Collider](g); ok {
		w.Physics.AddObject(g)
	}
}

// AddBox places a static box centred on pos and returns it.
func (w *World) AddBox(pos rl.Vector3) *engine.GameObject {
	box := engine.NewGameObject(fmt.Sprintf("Box_%s", uuid.NewString()[:8]))
	box.Tags = []string{BoxTag}
	box.Transform.Position = pos

	size := rl.Vector3{X: w.BoxSize, Y: w.BoxSize, Z: w.BoxSize}
	box.AddComponent(components.NewBoxCollider(size))
	box.AddComponent(components.NewStaticBody())
	renderer := components.NewMeshRenderer(boxColors[w.placed%len(boxColors)], size)
	renderer.WireColor = rl.DarkGray
	box.AddComponent(renderer)

	w.attach(box)
	w.placed++

	w.log.Info("box placed", zap.String("name", box.Name), logger.Vec3("at", pos.X, pos.Y, pos.Z))
	return box
}

// IsPlacedBox reports whether g is a box the player may remove: a child of
// the shootables node, tagged as a box, and not the floor.
func (w *World) IsPlacedBox(g *engine.GameObject) bool {
	if g == nil || g == w.Floor || g.Name == FloorName {
		return false
	}
	return w.Shootables.HasChild(g) && g.HasTag(BoxTag)
}

// RemoveBox detaches g from the scene and physics world. It reports false
// and changes nothing when g is not a placed box.
func (w *World) RemoveBox(g *engine.GameObject) bool {
	if !w.IsPlacedBox(g) {
		return false
	}
	w.Scene.RemoveGameObject(g)
	w.Physics.RemoveObject(g)
	w.log.Info("box removed", zap.String("name", g.Name))
	return true
}

// Boxes returns the placed boxes in placement order.
func (w *World) Boxes() []*engine.GameObject {
	var boxes []*engine.GameObject
	for _, g := range w.Scene.FindByTag(BoxTag) {
		if w.IsPlacedBox(g) {
			boxes = append(boxes, g)
		}
	}
	return boxes
}

func (w *World) BoxCount() int {
	return len(w.Boxes())
}

// Raycast finds the nearest shootable hit along a ray.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32) (physics.RaycastHit, bool) {
	return physics.RaycastObjects(origin, direction, maxDistance, []*engine.GameObject{w.Shootables})
}

func (w *World) Start() {
	w.Scene.Start()
}

// Update runs component updates, then advances physics.
func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
	w.Physics.Step(deltaTime)
}

// Draw renders every MeshRenderer in the scene. Call between BeginMode3D
// and EndMode3D.
func (w *World) Draw() {
	for _, g := range w.Scene.GameObjects {
		if renderer := engine.GetComponent[*components.MeshRenderer](g); renderer != nil {
			renderer.Draw()
		}
	}
}

func (w *World) attach(g *engine.GameObject) {
	w.Shootables.AddChild(g)
	w.Scene.AddGameObject(g)
	w.Physics.AddObject(g)
}
