/*
Package hexgrid provides hexagonal grids of pointy-top hexes.

Cells live in an arena and are addressed by their index; neighbour
relations are indices into the same arena. A grid is immutable once built
and may be shared between goroutines.

Directions

Neighbour directions are numbered counter-clockwise, starting east:

	0 E   1 NE   2 NW   3 W   4 SW   5 SE

Hex vertices are numbered the same way, starting at the north-east
corner. Vertex k sits between neighbour k and neighbour k+1 (mod 6):

	0 NE   1 N   2 NW   3 SW   4 S   5 SE

Every vertex of a hex is one long radius (d/√3) from its centre, where d
is the centre-to-centre distance of adjacent hexes.
*/
package hexgrid
