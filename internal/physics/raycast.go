package physics

import (
	"github.com/mironco/blockbuilder/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	GameObject *engine.GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// RaycastObjects returns the closest hit among objs and their descendants.
// Ties keep the first object encountered.
func RaycastObjects(origin, direction rl.Vector3, maxDistance float32, objs []*engine.GameObject) (RaycastHit, bool) {
	if rl.Vector3Length(direction) == 0 {
		return RaycastHit{}, false
	}
	direction = rl.Vector3Normalize(direction)

	var closest RaycastHit
	closest.Distance = maxDistance
	hit := false

	var visit func(obj *engine.GameObject)
	visit = func(obj *engine.GameObject) {
		if !obj.Active {
			return
		}
		if col, ok := engine.FindComponent[Collider](obj); ok {
			if h, ok := RaycastAABB(origin, direction, col.Bounds(), maxDistance); ok && (!hit || h.Distance < closest.Distance) {
				closest = h
				closest.GameObject = obj
				hit = true
			}
		}
		for _, child := range obj.Children {
			visit(child)
		}
	}
	for _, obj := range objs {
		visit(obj)
	}

	return closest, hit
}

// RaycastAABB intersects a ray with a box using the slab method. direction
// must be normalized. A ray starting inside the box hits its exit face.
func RaycastAABB(origin, direction rl.Vector3, box AABB, maxDistance float32) (RaycastHit, bool) {
	min, max := box.Min, box.Max

	var tmin, tmax float32

	// X slab
	if direction.X != 0 {
		t1 := (min.X - origin.X) / direction.X
		t2 := (max.X - origin.X) / direction.X
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = t1
		tmax = t2
	} else if origin.X < min.X || origin.X > max.X {
		return RaycastHit{}, false
	} else {
		tmin = -1e30
		tmax = 1e30
	}

	// Y slab
	if direction.Y != 0 {
		t1 := (min.Y - origin.Y) / direction.Y
		t2 := (max.Y - origin.Y) / direction.Y
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Y < min.Y || origin.Y > max.Y {
		return RaycastHit{}, false
	}

	if tmin > tmax {
		return RaycastHit{}, false
	}

	// Z slab
	if direction.Z != 0 {
		t1 := (min.Z - origin.Z) / direction.Z
		t2 := (max.Z - origin.Z) / direction.Z
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if origin.Z < min.Z || origin.Z > max.Z {
		return RaycastHit{}, false
	}

	if tmin > tmax || tmax < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	var normal rl.Vector3
	epsilon := float32(0.001)
	switch {
	case abs(point.X-min.X) < epsilon:
		normal = rl.Vector3{X: -1}
	case abs(point.X-max.X) < epsilon:
		normal = rl.Vector3{X: 1}
	case abs(point.Y-min.Y) < epsilon:
		normal = rl.Vector3{Y: -1}
	case abs(point.Y-max.Y) < epsilon:
		normal = rl.Vector3{Y: 1}
	case abs(point.Z-min.Z) < epsilon:
		normal = rl.Vector3{Z: -1}
	default:
		normal = rl.Vector3{Z: 1}
	}

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}
