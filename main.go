package main

import (
	"flag"
	"fmt"
	"os"

	"tileworld/internal/demo"
	"tileworld/internal/viewer"
)

func main() {
	sizeX := flag.Int("width", 64, "Map width in tiles")
	sizeY := flag.Int("height", 64, "Map height in tiles")
	seed := flag.Int64("seed", 1, "Terrain seed")
	flag.Parse()

	m, err := demo.NewField(*sizeX, *sizeY, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	v, err := viewer.New(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	v.Run()
}
