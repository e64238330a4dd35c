package component

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

const (
	RenderLayerFloor = iota
	RenderLayerWalls
	RenderLayerActors
	RenderLayerOverlay
)

var RenderLayerComponent = NewComponent[RenderLayer]()
