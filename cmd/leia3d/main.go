// Command leia3d probes the Leia display library, runs side-by-side detection
// on still frames and switches the panel between 2D and 3D.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
