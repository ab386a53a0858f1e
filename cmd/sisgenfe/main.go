// Package main é o CLI de exemplo do cliente Sisgenfe
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("❌ Falha")
		os.Exit(1)
	}
}
