package resolver

import (
	"errors"
	"fmt"

	"github.com/tsawler/krago/model"
)

// Resolution errors.
var (
	// ErrMissingTarget indicates a clone's target UUID exists nowhere in
	// the document.
	ErrMissingTarget = errors.New("resolver: clone target not found")
	// ErrCloneCycle indicates a clone chain that references itself.
	ErrCloneCycle = errors.New("resolver: clone cycle")
)

// location addresses one layer slot so a placeholder can be replaced in
// place inside whichever slice owns it.
type location struct {
	slice []model.Layer
	idx   int
}

type resolver struct {
	index     map[string]location              // UUID -> owning slot, whole forest
	resolving map[*model.ClonePlaceholder]bool // in-flight placeholders, for cycle detection
}

// Resolve replaces every clone placeholder in the document with a
// resolved CloneLayer. After a successful return no placeholder remains
// anywhere in the forest.
func Resolve(doc *model.Document) error {
	r := &resolver{
		index:     make(map[string]location),
		resolving: make(map[*model.ClonePlaceholder]bool),
	}

	var locs []location
	collect(doc.Layers, r.index, &locs)

	for _, loc := range locs {
		if _, err := r.resolveAt(loc); err != nil {
			return err
		}
	}
	return nil
}

// collect indexes every layer slot by UUID and records every slot, in
// depth-first order, descending into masks and group children.
func collect(layers []model.Layer, index map[string]location, locs *[]location) {
	for i, l := range layers {
		loc := location{slice: layers, idx: i}
		*locs = append(*locs, loc)

		if uuid := l.Base().UUID; uuid != "" {
			if _, exists := index[uuid]; !exists {
				index[uuid] = loc
			}
		}

		collect(l.Base().Masks, index, locs)
		if g, ok := l.(*model.GroupLayer); ok {
			collect(g.Children, index, locs)
		}
	}
}

// resolveAt resolves the layer in the given slot. Non-placeholders are
// returned as-is; a placeholder is replaced by its CloneLayer, resolving
// the target chain first.
func (r *resolver) resolveAt(loc location) (model.Layer, error) {
	layer := loc.slice[loc.idx]
	p, ok := layer.(*model.ClonePlaceholder)
	if !ok {
		return layer, nil
	}

	if r.resolving[p] {
		return nil, fmt.Errorf("%w involving layer %q (uuid %s)", ErrCloneCycle, p.Name, p.UUID)
	}
	r.resolving[p] = true
	defer delete(r.resolving, p)

	targetLoc, found := r.index[p.TargetUUID]
	if !found {
		return nil, fmt.Errorf("%w: layer %q references uuid %q", ErrMissingTarget, p.Name, p.TargetUUID)
	}

	target, err := r.resolveAt(targetLoc)
	if err != nil {
		return nil, err
	}

	clone := &model.CloneLayer{BaseLayer: p.BaseLayer, Target: target}
	loc.slice[loc.idx] = clone
	return clone, nil
}
