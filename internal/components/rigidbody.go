package components

import "github.com/mironco/blockbuilder/internal/engine"

// Rigidbody marks how an object takes part in the physics world. A body
// with zero mass that is not kinematic never moves.
type Rigidbody struct {
	engine.BaseComponent
	Mass      float32
	Kinematic bool // moved by a controller, not by the solver
}

func NewRigidbody() *Rigidbody {
	return &Rigidbody{
		Mass: 1.0,
	}
}

// NewStaticBody returns a mass-zero body.
func NewStaticBody() *Rigidbody {
	return &Rigidbody{}
}

// IsKinematic implements physics.Body
func (r *Rigidbody) IsKinematic() bool {
	return r.Kinematic
}
