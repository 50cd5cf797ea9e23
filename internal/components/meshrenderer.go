package components

import (
	"github.com/mironco/blockbuilder/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MeshRenderer draws a cube in immediate mode. It holds no GPU resources,
// so objects carrying it can be built before a window exists.
type MeshRenderer struct {
	engine.BaseComponent
	Color     rl.Color
	WireColor rl.Color // zero alpha disables the outline
	Size      rl.Vector3
}

func NewMeshRenderer(color rl.Color, size rl.Vector3) *MeshRenderer {
	return &MeshRenderer{
		Color: color,
		Size:  size,
	}
}

func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active {
		return
	}

	pos := g.WorldPosition()
	s := g.WorldScale()
	size := rl.Vector3{X: m.Size.X * s.X, Y: m.Size.Y * s.Y, Z: m.Size.Z * s.Z}

	rl.DrawCubeV(pos, size, m.Color)
	if m.WireColor.A > 0 {
		rl.DrawCubeWiresV(pos, size, m.WireColor)
	}
}
