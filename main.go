package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/padhakulabs/padhaku/cmd"
)

func main() {
	// Optional; deployments without a .env file rely on real env vars.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
