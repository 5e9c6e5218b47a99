//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of stalagmite requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/stalagmite` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a run without graphics use `go run ./cmd/headless`.")
	os.Exit(2)
}
