package game

import (
	"fmt"
	"time"

	"github.com/mironco/blockbuilder/internal/components"
	"github.com/mironco/blockbuilder/internal/config"
	"github.com/mironco/blockbuilder/internal/engine"
	"github.com/mironco/blockbuilder/internal/input"
	"github.com/mironco/blockbuilder/internal/logger"
	"github.com/mironco/blockbuilder/internal/world"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// skyColor is the clear colour behind the world.
var skyColor = rl.NewColor(178, 204, 255, 255)

// walker is the part of a character controller the game drives.
type walker interface {
	SetWalkDirection(dir rl.Vector3)
	PhysicsLocation() rl.Vector3
	Jump()
}

// MoveState is the level-triggered directional input.
type MoveState struct {
	Left, Right, Up, Down bool
}

// WalkVector combines the camera basis with the pressed directions:
// forward·forwardWeight for Up, minus for Down, left·sideWeight for Left,
// minus for Right.
func WalkVector(forward, left rl.Vector3, s MoveState, forwardWeight, sideWeight float32) rl.Vector3 {
	camDir := rl.Vector3Scale(forward, forwardWeight)
	camLeft := rl.Vector3Scale(left, sideWeight)

	var walk rl.Vector3
	if s.Left {
		walk = rl.Vector3Add(walk, camLeft)
	}
	if s.Right {
		walk = rl.Vector3Subtract(walk, camLeft)
	}
	if s.Up {
		walk = rl.Vector3Add(walk, camDir)
	}
	if s.Down {
		walk = rl.Vector3Subtract(walk, camDir)
	}
	return walk
}

type Game struct {
	Config       *config.Config
	World        *world.World
	Player       *engine.GameObject
	Controller   *components.CharacterController
	CameraObject *engine.GameObject
	Camera       *components.Camera
	Input        *input.Dispatcher
	DebugMode    bool

	control    walker
	move       MoveState
	walk       rl.Vector3
	lastAction string
	log        *zap.Logger

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New builds the world, player and bindings. It touches no window state, so
// it is safe to call before Run opens the window.
func New(cfg *config.Config, log *zap.Logger, source input.Source) (*Game, error) {
	bindings, err := input.ParseBindings(cfg.Bindings)
	if err != nil {
		return nil, fmt.Errorf("input bindings: %w", err)
	}

	g := &Game{
		Config: cfg,
		World:  world.New(cfg.Build, cfg.Player.Gravity, log),
		Input:  input.NewDispatcher(source, bindings),
		log:    log,
	}
	g.createPlayer()
	g.createCamera()
	g.Input.OnAction.AddListener(g.OnAction)
	g.World.Start()

	return g, nil
}

func (g *Game) createPlayer() {
	p := g.Config.Player
	g.Player = engine.NewGameObject("Player")
	g.Player.Transform.Position = rl.Vector3{X: p.Spawn[0], Y: p.Spawn[1], Z: p.Spawn[2]}

	ctrl := components.NewCharacterController()
	ctrl.Radius = p.Radius
	ctrl.Height = p.Height
	ctrl.StepHeight = p.StepHeight
	ctrl.JumpSpeed = p.JumpSpeed
	ctrl.FallSpeed = p.FallSpeed
	g.Player.AddComponent(ctrl)

	rb := components.NewRigidbody()
	rb.Kinematic = true
	g.Player.AddComponent(rb)

	g.World.Add(g.Player)
	g.Controller = ctrl
	g.control = ctrl
}

func (g *Game) createCamera() {
	g.CameraObject = engine.NewGameObject("MainCamera")
	g.Camera = components.NewCamera()
	g.Camera.LookSpeed = g.Config.Movement.LookSpeed
	g.CameraObject.AddComponent(g.Camera)
	g.CameraObject.Transform.Position = g.control.PhysicsLocation()
	g.World.Scene.AddGameObject(g.CameraObject)
}

// OnAction handles one edge from the input dispatcher.
func (g *Game) OnAction(e input.ActionEvent) {
	switch e.Action {
	case input.ActionLeft:
		g.move.Left = e.Pressed
	case input.ActionRight:
		g.move.Right = e.Pressed
	case input.ActionUp:
		g.move.Up = e.Pressed
	case input.ActionDown:
		g.move.Down = e.Pressed
	case input.ActionJump:
		if e.Pressed {
			g.control.Jump()
		}
	case input.ActionBuild:
		if !e.Pressed {
			g.Build()
		}
	case input.ActionBreak:
		if !e.Pressed {
			g.Break()
		}
	}
}

// Build places a box at the aimed-at contact point. Returns nil on a miss.
func (g *Game) Build() *engine.GameObject {
	hit, ok := g.World.Raycast(g.Camera.Position(), g.Camera.Direction(), g.Config.Build.MaxReach)
	if !ok {
		g.log.Debug("build: nothing in reach")
		return nil
	}
	box := g.World.AddBox(hit.Point)
	g.lastAction = "placed " + box.Name
	return box
}

// Break removes the aimed-at box. Hits on anything else, the floor
// included, are ignored.
func (g *Game) Break() bool {
	hit, ok := g.World.Raycast(g.Camera.Position(), g.Camera.Direction(), g.Config.Build.MaxReach)
	if !ok {
		g.log.Debug("break: nothing in reach")
		return false
	}
	if !g.World.RemoveBox(hit.GameObject) {
		g.log.Debug("break: target is not a box", zap.String("target", hit.GameObject.Name))
		return false
	}
	g.lastAction = "removed " + hit.GameObject.Name
	return true
}

// Update runs one frame: input, look, walk, physics, camera follow.
func (g *Game) Update(deltaTime float32) {
	updateStart := time.Now()

	g.Input.Poll()

	delta := g.Input.MouseDelta()
	g.Camera.Rotate(delta.X, delta.Y)

	g.walk = WalkVector(g.Camera.Direction(), g.Camera.Left(), g.move,
		g.Config.Movement.ForwardWeight, g.Config.Movement.SideWeight)
	g.control.SetWalkDirection(g.walk)

	g.World.Update(deltaTime)

	g.CameraObject.Transform.Position = g.control.PhysicsLocation()

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Run() {
	w := g.Config.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(w.TargetFPS)
	rl.DisableCursor()

	g.log.Info("window open", zap.Int32("width", w.Width), zap.Int32("height", w.Height))

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyF1) {
			g.DebugMode = !g.DebugMode
		}
		g.Update(rl.GetFrameTime())
		g.Draw()
	}

	pos := g.control.PhysicsLocation()
	g.log.Info("window closed",
		zap.Int("boxes", g.World.BoxCount()),
		logger.Vec3("player", pos.X, pos.Y, pos.Z))
}

func (g *Game) Draw() {
	camera := g.Camera.GetRaylibCamera()

	rl.BeginDrawing()
	rl.ClearBackground(skyColor)

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	g.World.Draw()
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	cx := int32(rl.GetScreenWidth() / 2)
	cy := int32(rl.GetScreenHeight() / 2)
	rl.DrawLine(cx-8, cy, cx+8, cy, rl.RayWhite)
	rl.DrawLine(cx, cy-8, cx, cy+8, rl.RayWhite)

	rl.DrawText("WASD to move, Space to jump, Mouse to look", 10, 10, 20, rl.LightGray)
	rl.DrawText("Left click to place a box, right click to remove one", 10, 35, 20, rl.LightGray)
	rl.DrawFPS(10, 60)

	status := fmt.Sprintf("Boxes: %d", g.World.BoxCount())
	if g.lastAction != "" {
		status += "  |  " + g.lastAction
	}
	gui.Label(rl.Rectangle{X: 10, Y: float32(rl.GetScreenHeight() - 30), Width: 600, Height: 20}, status)

	if g.DebugMode {
		pos := g.control.PhysicsLocation()
		rl.DrawText(fmt.Sprintf("Player: (%.2f, %.2f, %.2f)", pos.X, pos.Y, pos.Z), 10, 85, 16, rl.Yellow)
		rl.DrawText(fmt.Sprintf("Walk:   (%.2f, %.2f, %.2f)", g.walk.X, g.walk.Y, g.walk.Z), 10, 105, 16, rl.Yellow)
		rl.DrawText(fmt.Sprintf("Fall:   %.2f  grounded=%v", g.Controller.VerticalSpeed(), g.Controller.OnGround()), 10, 125, 16, rl.Yellow)
		rl.DrawText(fmt.Sprintf("Update: %.2f ms", g.updateMs), 10, 145, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Draw:   %.2f ms", g.drawMs), 10, 165, 16, rl.Green)
	}
}
