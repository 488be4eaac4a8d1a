//go:build !js

// Command nodegraph opens an interactive node-link diagram of a graph
// payload, or prints the grid layout it would compute.
package main

import (
	_ "embed"
	"os"
)

//go:embed sample.json
var sampleGraph []byte

func main() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}
