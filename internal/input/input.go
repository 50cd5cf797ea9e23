// Package input turns polled key and mouse state into named action events.
package input

import (
	"fmt"
	"strings"

	"github.com/mironco/blockbuilder/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Action string

const (
	ActionLeft  Action = "Left"
	ActionRight Action = "Right"
	ActionUp    Action = "Up"
	ActionDown  Action = "Down"
	ActionJump  Action = "Jump"
	ActionBuild Action = "Build"
	ActionBreak Action = "Break"
)

// Actions lists every action in dispatch order.
var Actions = []Action{ActionLeft, ActionRight, ActionUp, ActionDown, ActionJump, ActionBuild, ActionBreak}

// Trigger is a single key or mouse button.
type Trigger struct {
	Name   string
	Key    int32
	Button rl.MouseButton
	Mouse  bool
}

var keyTriggers = map[string]int32{
	"space": rl.KeySpace, "enter": rl.KeyEnter, "tab": rl.KeyTab,
	"left_shift": rl.KeyLeftShift, "left_control": rl.KeyLeftControl,
	"up": rl.KeyUp, "down": rl.KeyDown, "left": rl.KeyLeft, "right": rl.KeyRight,
}

var mouseTriggers = map[string]rl.MouseButton{
	"mouse_left":   rl.MouseLeftButton,
	"mouse_right":  rl.MouseRightButton,
	"mouse_middle": rl.MouseMiddleButton,
}

// ParseTrigger resolves a trigger name such as "w", "space" or "mouse_left".
func ParseTrigger(name string) (Trigger, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if b, ok := mouseTriggers[n]; ok {
		return Trigger{Name: n, Button: b, Mouse: true}, nil
	}
	if k, ok := keyTriggers[n]; ok {
		return Trigger{Name: n, Key: k}, nil
	}
	if len(n) == 1 && n[0] >= 'a' && n[0] <= 'z' {
		// raylib key codes for letters are their upper-case ASCII values
		return Trigger{Name: n, Key: int32(n[0] - 'a' + 'A')}, nil
	}
	if len(n) == 1 && n[0] >= '0' && n[0] <= '9' {
		return Trigger{Name: n, Key: int32(n[0])}, nil
	}
	return Trigger{}, fmt.Errorf("unknown input trigger %q", name)
}

// Bindings maps each action to the trigger that drives it.
type Bindings map[Action]Trigger

// DefaultBindings returns the WASD / space / mouse layout.
func DefaultBindings() Bindings {
	return Bindings{
		ActionLeft:  {Name: "a", Key: rl.KeyA},
		ActionRight: {Name: "d", Key: rl.KeyD},
		ActionUp:    {Name: "w", Key: rl.KeyW},
		ActionDown:  {Name: "s", Key: rl.KeyS},
		ActionJump:  {Name: "space", Key: rl.KeySpace},
		ActionBuild: {Name: "mouse_left", Button: rl.MouseLeftButton, Mouse: true},
		ActionBreak: {Name: "mouse_right", Button: rl.MouseRightButton, Mouse: true},
	}
}

// ParseBindings builds bindings from action name to trigger name, starting
// from the defaults. Unknown actions and triggers are errors.
func ParseBindings(names map[string]string) (Bindings, error) {
	b := DefaultBindings()
	for actionName, triggerName := range names {
		action, ok := lookupAction(actionName)
		if !ok {
			return nil, fmt.Errorf("unknown action %q", actionName)
		}
		trigger, err := ParseTrigger(triggerName)
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", actionName, err)
		}
		b[action] = trigger
	}
	return b, nil
}

func lookupAction(name string) (Action, bool) {
	for _, a := range Actions {
		if strings.EqualFold(string(a), name) {
			return a, true
		}
	}
	return "", false
}

// Source reports the current device state.
type Source interface {
	IsKeyDown(key int32) bool
	IsMouseButtonDown(button rl.MouseButton) bool
	MouseDelta() rl.Vector2
}

// RaylibSource polls the raylib window. Only valid after InitWindow.
type RaylibSource struct{}

func (RaylibSource) IsKeyDown(key int32) bool { return rl.IsKeyDown(key) }

func (RaylibSource) IsMouseButtonDown(button rl.MouseButton) bool {
	return rl.IsMouseButtonDown(button)
}

func (RaylibSource) MouseDelta() rl.Vector2 { return rl.GetMouseDelta() }

// ActionEvent is emitted on every press or release edge of an action.
type ActionEvent struct {
	Action  Action
	Pressed bool
}

// Dispatcher polls a Source once per frame and emits ActionEvents on
// state changes. Holding a trigger emits nothing after the press edge.
type Dispatcher struct {
	OnAction engine.EventWithArg[ActionEvent]

	source   Source
	bindings Bindings
	state    map[Action]bool
}

func NewDispatcher(source Source, bindings Bindings) *Dispatcher {
	return &Dispatcher{
		source:   source,
		bindings: bindings,
		state:    make(map[Action]bool),
	}
}

// Poll samples every bound trigger and fires events in Actions order.
func (d *Dispatcher) Poll() {
	for _, action := range Actions {
		trigger, ok := d.bindings[action]
		if !ok {
			continue
		}
		var down bool
		if trigger.Mouse {
			down = d.source.IsMouseButtonDown(trigger.Button)
		} else {
			down = d.source.IsKeyDown(trigger.Key)
		}
		if down == d.state[action] {
			continue
		}
		d.state[action] = down
		d.OnAction.Invoke(ActionEvent{Action: action, Pressed: down})
	}
}

// IsDown reports the last polled state of action.
func (d *Dispatcher) IsDown(action Action) bool {
	return d.state[action]
}

// MouseDelta forwards the source's mouse motion since the last frame.
func (d *Dispatcher) MouseDelta() rl.Vector2 {
	return d.source.MouseDelta()
}
