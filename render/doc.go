// Package render draws a terrain map and a route for humans.
//
// Two outputs are provided:
//
//   - ASCII returns one line per grid row using the symbols below.
//   - Image / PNG / EncodePNG rasterize the map with github.com/fogleman/gg,
//     shading passable cells by terrain cost, painting walls black,
//     stroking the route through cell centers and circling terminals.
//
// ASCII symbols, highest precedence first:
//
//	O  origin
//	D  destination
//	W  waypoint
//	*  route cell
//	#  impassable cell
//	.  passable cell
//
// Rendering only reads the map; it never validates the route.
package render
