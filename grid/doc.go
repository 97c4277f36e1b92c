// Package grid computes grid-axis cell layout for table-like charts such as
// Gantt views: the pixel rectangle each tick label occupies, the anchor
// point of the label inside it, the extended tick length that turns tick
// marks into cell walls, and the outermost-axis test that decides which axis
// draws the closing border line.
//
// The package owns only geometry and formatting. Tick generation, scaling,
// and rendering stay with the host axis engine; grid behavior is layered on
// through Decorator, which the host invokes at explicit lifecycle stages
// instead of event hooks.
package grid
