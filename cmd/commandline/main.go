package main

import (
	"log"

	"github.com/ethanbaker/lineramind/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatalf("[COMMANDLINE]: %v", err)
	}
}
