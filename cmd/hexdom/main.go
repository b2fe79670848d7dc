/*
Command hexdom finds Dirichlet domains in synthetic fields over a hexagonal
grid.

	hexdom trace --rings 10 --seeds 12 --spokes
	hexdom contours --rings 6 --threshold 0.8
	hexdom trace --config scene.yaml --trace debug

A seed stands for one field, falling off with the distance to the seed.
Seeds default to a golden-angle spiral filling the grid. A scene file may
place seeds at arbitrary positions, or on hexes given as axial [q, r]
pairs. Results are
printed as YAML.
*/
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
