// SPDX-License-Identifier: MIT

// Command lvnum-demo prints a report exercising every numeric routine.
// It is configured through LVNUM_* environment variables only.
package main

import (
	"log"
	"os"

	"github.com/katalvlaran/lvnum/internal/demo"
)

func main() {
	cfg, err := demo.ParseConfig()
	if err != nil {
		log.Fatalf("lvnum-demo: %v", err)
	}
	if err := demo.Run(cfg, os.Stdout); err != nil {
		log.Fatalf("lvnum-demo: %v", err)
	}
}
