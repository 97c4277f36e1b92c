// Package solid turns 3D shape descriptions plus a chart rotation state into
// filled, depth-ordered 2D paths.
//
// Every shape is stateless between updates: each Faces call re-derives all
// geometry from the current parameters, so there is no incremental patching
// to get wrong. Visibility is decided by the winding of the projected
// outline (back-face culling); degenerate shapes project to zero-area paths
// and are simply hidden, never errors.
//
// Draw order is expressed through numeric z-indices. Within one shape the
// cap/top part always ranks above the wall parts, whatever the rotation.
package solid
