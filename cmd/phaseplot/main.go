// Command phaseplot plots the three-column solver output t, x, \dot{x}
// together on one set of axes.
package main

import (
	"log"

	"odeplot/internal/plotcmd"
	"odeplot/profile"
)

func main() {
	cmd := plotcmd.New(
		"phaseplot",
		"Plot oscillator position and velocity from stdin",
		profile.Phase,
	)
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
