package main

import (
	"github.com/ethanbaker/lineramind/internal/api"
	"github.com/ethanbaker/lineramind/pkg/utils"
)

// Start the API server
func main() {
	cfg := utils.NewConfigFromEnv(utils.EnvFiles()...)
	api.Start(cfg)
}
