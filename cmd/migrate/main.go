package main

import (
	"kmc/config"
	"kmc/helper"
	"kmc/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

const argLength = 2

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration action (up/down/drop/step-up/version) is required")
	}

	action := os.Args[1]

	if err := helper.Runner(cfg, action); err != nil {
		log.Fatal().Err(err).Str("action", action).Msg("Migration failed")
	}
}
