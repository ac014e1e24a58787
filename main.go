package main

import (
	"golang-trade-calculator/cmd"
	"log"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("tradecalc: %v", err)
	}
}
