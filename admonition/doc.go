// Package admonition holds the shared admonition grammar: the recognized types,
// their enabled toggles and the block matcher used by both the rendered-tree
// and the line-buffer pipelines.
package admonition
