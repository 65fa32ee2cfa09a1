package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"

	"github.com/irbis-tools/irbis2sql/cmd"
)

const version = "0.1.0"

func main() {
	// A .env file is optional; environment variables win without one.
	_ = godotenv.Load()

	root := cmd.NewRootCmd()
	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
