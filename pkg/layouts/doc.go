// Package layouts provides the composite layouts that arrange
// [layout.Layoutable] children: stacking, sequencing, segmenting,
// alignment, sizing overrides, conditional display, coordinate resets,
// squares, margin injection, scrolling and three-slot flexible content.
//
// Trees are built bottom-up, either from struct literals or with the
// builder functions:
//
//	row := layouts.WrapAsLinear(
//	    []layout.Layoutable{icon, title, badge},
//	    geometry.Horizontal, 8,
//	)
//	root := layouts.WithGravity(row, layouts.GravityCenter, layouts.MatchParentModes())
//	layout.StartLayout(root, geometry.RectFromXYWH(0, 0, 320, 480))
//
// A composite owns its children. Adding the same node to two parents
// leaves whichever parent laid it out last in control of its frame.
//
// Every composite measures children with their margins removed from the
// available space and reports margin-inclusive footprints upward, so a
// node's own margins are always applied by its parent. Degenerate input is
// clamped rather than rejected: negative extents become zero and empty
// child lists measure as zero and lay out nothing.
package layouts
