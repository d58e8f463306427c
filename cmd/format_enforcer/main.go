package main

import (
	"fmt"      // fmt is used to print human-readable output to the terminal
	"log/slog" // slog is the structured diagnostic logger
	"os"       // os is used so we can exit with a non-zero status on error

	"github.com/joho/godotenv" // godotenv loads a local .env file into the environment

	// This import path must match the module path you defined in go.mod.
	// We import the cli package from the internal folder, which handles
	// parsing command-line arguments and calling the enforcer.
	"data_format_enforcer/internal/cli"
)

// MainConfig is a placeholder struct that could hold global settings
// for the main package in the future, such as version information or
// build metadata. Right now it is kept small but still has an
// initializer function to match the project rule that every struct
// has an initializer.
type MainConfig struct{}

// NewMainConfig is an initializer function for MainConfig.
// It returns a pointer to an empty MainConfig. Even though we do not
// use fields yet, having this function keeps struct creation
// consistent across the codebase.
func NewMainConfig() *MainConfig {
	return &MainConfig{}
}

// setupLogging configures the process-wide diagnostic logger exactly once.
// Diagnostics go to stderr as structured text lines (timestamp, severity,
// message, attributes) so they never mix with the generated values on
// stdout. No other component touches global logging state; everything else
// logs through the default logger set here.
func setupLogging() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

// main is the entry point for the program. It keeps the logic very
// small by delegating all the real work to the cli.Run function.
// That makes main easy to read and easier to test in isolation.
func main() {
	// We call NewMainConfig() here to follow the pattern, even if
	// we do not yet use the config fields. This leaves a clear
	// place to add global options later.
	_ = NewMainConfig()

	// A .env file is optional; when present it can set ENFORCER_LOCALE and
	// ENFORCER_COUNT, which Kong picks up as flag defaults. A missing file
	// is not an error.
	_ = godotenv.Load()

	setupLogging()

	// cli.Run() will parse command-line arguments and then call into the
	// enforcer package. Every failure path has already written a structured
	// diagnostic by the time the error reaches us; here we print the
	// user-facing message and exit with a non-zero exit code so shell
	// scripts can detect failure.
	if err := cli.Run(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
