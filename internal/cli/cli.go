package cli

import (
	"github.com/alecthomas/kong" // kong is the library we use to parse command-line arguments

	// This import path must match your module path from go.mod.
	"data_format_enforcer/internal/enforcer"
)

///////////////////////////////////////////////////////////////////////////////
// CLI configuration
///////////////////////////////////////////////////////////////////////////////

// CLIConfig holds the command-line surface of the tool. Kong uses the struct
// tags to know which positional arguments and flags exist and how to parse
// them.
//
// The two positional arguments are:
//
//	format_enforcer <format-type> [<input-data>]
//
// and the flags are --locale and --count. Both flags can also be supplied
// through the environment (ENFORCER_LOCALE, ENFORCER_COUNT), which a .env
// file loaded at startup can populate.
type CLIConfig struct {
	FormatType string `arg:"" name:"format-type" help:"The type of format to enforce (phone_number, zip_code, email, ssn, credit_card_number)."`
	InputData  string `arg:"" optional:"" name:"input-data" help:"The input data to format (optional). If not provided, --count formatted values are generated. Note: the current behavior discards this value and substitutes a freshly generated one."`

	Locale string `help:"The locale to use (e.g. en_US, de_DE)." default:"en_US" env:"ENFORCER_LOCALE"`
	Count  int    `help:"The number of formatted values to generate when no input data is provided." default:"1" env:"ENFORCER_COUNT"`
}

// NewCLIConfig is an initializer function for CLIConfig.
// It sets the same defaults Kong advertises so behavior stays consistent
// when the struct is built without going through flag parsing.
func NewCLIConfig() *CLIConfig {
	return &CLIConfig{
		Locale: "en_US",
		Count:  1,
	}
}

// toRunConfig maps the parsed CLI surface onto the library-agnostic
// enforcer.RunConfig. Keeping this as its own step means the enforcer
// package never sees Kong, and the mapping is trivially testable.
func (c *CLIConfig) toRunConfig() *enforcer.RunConfig {
	runCfg := enforcer.NewRunConfig()
	runCfg.FormatType = c.FormatType
	runCfg.InputData = c.InputData
	runCfg.Locale = c.Locale
	runCfg.Count = c.Count
	return runCfg
}

///////////////////////////////////////////////////////////////////////////////
// Top-level CLI runner
///////////////////////////////////////////////////////////////////////////////

// Run is the main entry point for the CLI layer. It:
//
//  1. Creates a CLIConfig and asks Kong to fill it from command-line
//     arguments (and the ENFORCER_* environment variables).
//  2. Maps it onto an enforcer.RunConfig.
//  3. Hands the config to enforcer.Run, which validates it and generates
//     the requested values.
//
// All user-facing errors come back through the returned error; main prints
// them and sets the exit code. The structured diagnostics are logged at the
// point of failure inside the enforcer package.
func Run() error {
	// Create a new CLIConfig with defaults using the initializer.
	cfg := NewCLIConfig()

	// Parse arguments into cfg. Kong reads os.Args automatically and fills
	// the struct fields based on the tags. If the required positional
	// argument is missing, Kong prints a helpful message and exits.
	kctx := kong.Parse(cfg,
		kong.Name("format_enforcer"),
		kong.Description("Enforces data format consistency by generating locale-correct synthetic values."),
	)
	_ = kctx // we are not using kctx directly, but this avoids a compiler warning

	return enforcer.Run(cfg.toRunConfig())
}
