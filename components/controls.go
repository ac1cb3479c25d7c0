package components

// ControlsComponent is the held/released state of the driving controls,
// sampled once at the start of a frame
type ControlsComponent struct {
	Accelerate bool
	SteerLeft  bool
	SteerRight bool
}
