package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/abhisek/intervu/cmd"
)

func main() {
	// A .env in the working directory is a convenience for local runs;
	// its absence is not an error.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
