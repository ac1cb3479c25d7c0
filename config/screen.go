package config

// Screen layout configuration
const (
	// Window dimensions in pixels
	ScreenWidth  = 800
	ScreenHeight = 600

	// Road geometry, centred horizontally
	RoadWidth = 400
	LaneCount = 3
	LaneWidth = RoadWidth / LaneCount // 133

	RoadLeft  = ScreenWidth/2 - RoadWidth/2 // 200
	RoadRight = ScreenWidth/2 + RoadWidth/2 // 600

	// Target frame rate of the simulation loop
	FPS = 60

	WindowTitle = "OutRun Clone"
)

// Sprite footprints in pixels. Collision does not use these; it works on
// proximity thresholds from Tuning.
const (
	PlayerWidth  = 50
	PlayerHeight = 90

	TrafficWidth  = 50
	TrafficHeight = 90

	TreeSize  = 80
	BoostSize = 40
)

// Player start position. The player never moves vertically.
const (
	PlayerStartX = ScreenWidth/2 - PlayerWidth/2 // 375
	PlayerY      = ScreenHeight - 120            // 480
)

// Spawn row above the visible area
const SpawnY = -100

// GetScreenDimensions returns the screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return ScreenWidth, ScreenHeight
}

// GetWindowSize returns the recommended window size
func GetWindowSize() (width, height int) {
	return ScreenWidth, ScreenHeight
}
