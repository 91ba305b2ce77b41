package model

// Document represents a complete parsed Krita document. It owns all
// layers transitively; no layer outlives its document.
type Document struct {
	Name      string
	Width     int
	Height    int
	ColorMode ColorMode
	Layers    []Layer
}

// NewDocument creates a new empty document.
func NewDocument() *Document {
	return &Document{
		Layers: make([]Layer, 0),
	}
}

// LayerCount returns the total number of layers in the forest, including
// nested group children.
func (d *Document) LayerCount() int {
	count := 0
	d.Walk(func(Layer) bool {
		count++
		return true
	})
	return count
}

// FindLayer returns the layer with the given UUID, or nil if no layer
// matches. The search is depth-first over the entire forest, so targets
// inside collapsed or invisible groups are still found.
func (d *Document) FindLayer(uuid string) Layer {
	var found Layer
	d.Walk(func(l Layer) bool {
		if l.Base().UUID == uuid {
			found = l
			return false
		}
		return true
	})
	return found
}

// Walk visits every layer depth-first, descending into group children.
// The visitor returns false to stop the walk early.
func (d *Document) Walk(visit func(Layer) bool) {
	walkLayers(d.Layers, visit)
}

func walkLayers(layers []Layer, visit func(Layer) bool) bool {
	for _, l := range layers {
		if !visit(l) {
			return false
		}
		if !walkLayers(l.Base().Masks, visit) {
			return false
		}
		if g, ok := l.(*GroupLayer); ok {
			if !walkLayers(g.Children, visit) {
				return false
			}
		}
	}
	return true
}
