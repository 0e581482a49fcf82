// Command fractals renders trees, Koch curves, ferns and Sierpiński figures
// to raster or vector files, watches project files and previews them.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
