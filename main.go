package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/traino-dev/traino/cmd"
)

func main() {
	// A local .env is a convenience for development; absence is fine.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
