package krago

import "runtime"

// ExtractOptions holds configuration for layer extraction.
type ExtractOptions struct {
	// Crop trims extracted layers to their painted bounding box.
	crop bool

	// Workers bounds the goroutines used by bulk extraction.
	workers int
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		crop:    false,
		workers: runtime.NumCPU(),
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		crop:    o.crop,
		workers: o.workers,
	}
}
