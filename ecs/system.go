package ecs

// System defines an interface for per-frame simulation steps
type System interface {
	// Update is called once per frame, in registration order
	Update(world *World, dt float64)
}
