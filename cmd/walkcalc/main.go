// walkcalc computes walking distance, duration, cadence, and calories from
// the command line, using the same engine as the I Love Steps page.
// Usage: go run ./cmd/walkcalc calc --steps 8000 --pace brisk
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
