package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")

	scene.AddGameObject(obj)
	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}
	if obj.Scene != scene {
		t.Error("GameObject.Scene not set")
	}
	if !scene.Contains(obj) {
		t.Error("Contains should report an added object")
	}
}

func TestSceneContains(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Player")
	scene.AddGameObject(obj)

	if !scene.Contains(obj) {
		t.Error("Contains failed")
	}
	if scene.Contains(NewGameObject("Stranger")) || scene.Contains(nil) {
		t.Error("Contains should be false for objects never added")
	}
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("Test")
	floor := NewGameObject("Floor")
	box := NewGameObject("Box")
	scene.AddGameObject(floor)
	scene.AddGameObject(box)

	scene.RemoveGameObject(floor)

	if len(scene.GameObjects) != 1 || scene.GameObjects[0] != box {
		t.Fatalf("Expected only the box to remain, got %v", scene.GameObjects)
	}
	if scene.Contains(floor) {
		t.Error("Removed GameObject still in UID map")
	}
	if floor.Scene != nil {
		t.Error("Removed GameObject should have nil Scene")
	}
}

func TestSceneRemoveDetachesFromParent(t *testing.T) {
	scene := NewScene("Test")
	shootables := NewGameObject("Shootables")
	box := NewGameObject("Box")
	scene.AddGameObject(shootables)
	scene.AddGameObject(box)
	shootables.AddChild(box)

	scene.RemoveGameObject(box)

	if shootables.HasChild(box) {
		t.Error("parent still lists removed child")
	}
	if !scene.Contains(shootables) {
		t.Error("parent should stay in the scene")
	}
}

func TestSceneRemoveWithChildren(t *testing.T) {
	scene := NewScene("Test")
	parent := NewGameObject("Shootables")
	child := NewGameObject("Box")
	scene.AddGameObject(parent)
	scene.AddGameObject(child)
	parent.AddChild(child)

	scene.RemoveGameObject(parent)

	if len(scene.GameObjects) != 0 {
		t.Errorf("Expected 0 GameObjects, got %d", len(scene.GameObjects))
	}
	if scene.Contains(child) {
		t.Error("Child still in UID map after removal")
	}
}

func TestSceneFindByTag(t *testing.T) {
	scene := NewScene("Test")
	floor := NewGameObject("Floor")
	box1 := NewGameObject("Box_1")
	box2 := NewGameObject("Box_2")
	box1.Tags = []string{"box"}
	box2.Tags = []string{"box"}
	scene.AddGameObject(floor)
	scene.AddGameObject(box1)
	scene.AddGameObject(box2)

	boxes := scene.FindByTag("box")
	if len(boxes) != 2 || boxes[0] != box1 || boxes[1] != box2 {
		t.Errorf("Expected box1, box2 in order, got %v", boxes)
	}
	if got := len(scene.FindByTag("floor")); got != 0 {
		t.Errorf("Expected no floor tags, got %d", got)
	}
}

func TestSceneUIDMapLazyInit(t *testing.T) {
	scene := &Scene{Name: "Zero"}
	obj := NewGameObject("Player")
	scene.AddGameObject(obj)

	if scene.uidMap == nil {
		t.Error("uidMap should be initialized on first AddGameObject")
	}
}
