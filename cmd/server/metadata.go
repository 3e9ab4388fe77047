package main

import (
	"geotjs/internal/domain/tjs10"
	"geotjs/internal/metadata"
)

// setupMetadataRegistry initializes and populates the metadata registry.
func setupMetadataRegistry() *metadata.Registry {
	reg := metadata.NewRegistry()
	tjs10.RegisterClasses(reg)
	return reg
}
