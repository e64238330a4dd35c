package component

// Camera follows the player. The camera entity's Transform is the world
// position of the screen's top-left corner.
type Camera struct {
	Zoom float64
	// Smoothness is the fraction of the remaining distance covered each
	// frame; 0 or 1 snaps.
	Smoothness float64
}

var CameraComponent = NewComponent[Camera]()
