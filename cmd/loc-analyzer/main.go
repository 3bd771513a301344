package main

import (
	"fmt"
	"os"
)

// version is overridden at release time via
// -ldflags "-X main.version=vX.Y.Z".
var version = "dev"

func main() {
	if err := Execute(version); err != nil {
		fmt.Fprintf(os.Stderr, "loc-analyzer error: %v\n", err)
		os.Exit(1)
	}
}
