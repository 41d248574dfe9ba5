// SPDX-License-Identifier: MIT

// Command twocycle solves the two-cycle travelling salesman problem on TSPLIB
// instances, benchmarks the metaheuristics and serves runs over HTTP.
package main

import (
	"log"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
