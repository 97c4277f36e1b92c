// Package chart provides charting geometry for Go.
//
// # Overview
//
// chart produces the geometry a host rendering engine needs to draw
// interactive 2D/3D charts: vector paths, grid-axis cell layout, perspective
// projection of 3D shapes with depth ordering, and derived indicator series.
// It deliberately stops at path production; rasterization, styling, and
// animation belong to the caller-supplied drawing surface.
//
// # Quick Start
//
//	import "github.com/chartgeom/chart"
//
//	// Build a path for a pie-slice outline.
//	p := chart.NewPath()
//	p.MoveTo(100, 100)
//	p.Arc(100, 100, 80, 0, math.Pi/3)
//	p.Close()
//
//	// Project a 3D point under the chart's rotation.
//	rot := chart.Rotation3D{Alpha: 0.3, Beta: 0.5, Depth: 50}
//	pts := chart.Project([]chart.Point3{{X: 10, Y: 20, Z: 30}}, rot, true)
//
// # Architecture
//
// The library is organized into:
//   - chart: Point, Point3, Matrix, Path, projection, logging
//   - chart/grid: grid-axis tick/label/cell layout
//   - chart/solid: 3D cuboids, arc slices, and polyhedra with z-ordering
//   - chart/indicator: SMA/EMA/DEMA/TEMA/PPO/Stochastic series math
//   - chart/text: font metrics for label measurement
//   - chart/export: series table export (CSV, XLSX)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right
//
// Under this convention a polygon wound counter-clockwise when facing the
// viewer projects to a negative signed area; the face-culling code in
// chart/solid relies on that sign.
package chart

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
