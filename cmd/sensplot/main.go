// Command sensplot plots the nine-column sensitivity output of the
// oscillator solver: one subplot per column under a shared caption.
package main

import (
	"log"

	"odeplot/internal/plotcmd"
	"odeplot/profile"
)

func main() {
	cmd := plotcmd.New(
		"sensplot",
		"Plot oscillator state and sensitivity traces from stdin",
		profile.Sensitivities,
	)
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
