// Package gouraud generates spans that shade a triangle by linear
// interpolation of its three vertex colors.
//
// A generator is set up with three colors, three positions and an
// optional dilation. Prepare sorts the vertices and builds the edge
// calculators once; Generate then fills one horizontal run at a time.
// Colors are interpolated along the triangle edges for the requested
// scanline and stepped across the span with 14-bit fixed-point DDAs at
// 1/16 pixel precision.
//
// Dilation grows the triangle outward by a fixed distance. The shading
// corners move to the miter points of the offset edges, and Vertices
// returns the six-point beveled outline a rasterizer should fill, so that
// anti-aliased meshes of adjacent triangles leave no seams.
package gouraud
