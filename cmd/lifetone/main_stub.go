//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of lifetone requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/lifetone` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a windowless run use `go run ./cmd/lifetone-headless`.")
	os.Exit(2)
}
