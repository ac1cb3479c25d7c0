package ecs

// EntityID is a unique identifier for an entity within one EntityStore
type EntityID uint64

// Kind identifies which of the three dynamic collections an entity lives in
type Kind int

const (
	KindTraffic Kind = iota
	KindTree
	KindBoost

	kindCount
)

// Kinds lists every entity kind in draw order (trees, boosts, traffic).
var Kinds = [...]Kind{KindTree, KindBoost, KindTraffic}

// String returns the lower-case name of the kind
func (k Kind) String() string {
	switch k {
	case KindTraffic:
		return "traffic"
	case KindTree:
		return "tree"
	case KindBoost:
		return "boost"
	default:
		return "unknown"
	}
}

// Entity represents a spawned, moving game object
type Entity struct {
	ID   EntityID
	Kind Kind

	// Screen position of the sprite's top-left corner. Y grows downward.
	X, Y float64

	// DescentSpeed is only meaningful for traffic; trees and boosts ride the
	// road at the player's speed.
	DescentSpeed int
}
