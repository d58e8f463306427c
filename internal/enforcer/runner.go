package enforcer

import (
	"fmt"      // fmt is used to write the generated values to the output sink
	"io"       // io gives us the output sink abstraction
	"log/slog" // slog writes the structured diagnostic stream
	"os"       // os supplies the default output sink (stdout)
)

///////////////////////////////////////////////////////////////////////////////
// Run configuration
///////////////////////////////////////////////////////////////////////////////

// RunConfig holds everything one invocation needs. It is deliberately
// independent of the CLI library (Kong) so it can be filled in from tests or
// from other callers just as easily as from parsed flags.
type RunConfig struct {
	FormatType string    // FormatType selects the generator, e.g. "phone_number"
	Locale     string    // Locale is the locale identifier handed to the provider, e.g. "en_US"
	Count      int       // Count is how many values to generate in batch mode
	InputData  string    // InputData, when non-empty, switches to single-shot mode (its content is ignored — see EnforceFormat)
	Output     io.Writer // Output receives one generated value per line
}

// NewRunConfig is an initializer function for RunConfig.
// It sets the same defaults the CLI advertises so the caller only has to
// override what they care about.
func NewRunConfig() *RunConfig {
	return &RunConfig{
		Locale: "en_US",   // default locale
		Count:  1,         // default to one generated value
		Output: os.Stdout, // default to printing on stdout
	}
}

///////////////////////////////////////////////////////////////////////////////
// Top-level runner
///////////////////////////////////////////////////////////////////////////////

// Run is the main entry point for this package. It:
//
//  1. Validates the format type and, in batch mode, the count — both before
//     any generation is attempted.
//  2. Builds an Enforcer bound to (FormatType, Locale).
//  3. Generates one value (single-shot mode, input data present) or Count
//     values (batch mode), writing each to cfg.Output as soon as it is
//     produced, in generation order.
//
// Any single generation failure aborts the remaining iterations and is
// returned to the caller: the batch never skips-and-continues and never
// partially succeeds silently. Everything runs sequentially on the calling
// goroutine; there is no concurrency and no retained state between values.
func Run(cfg *RunConfig) error {
	// Validate the format type first so a bad identifier is reported even
	// when the count is also bad, and so the provider is never touched for
	// an unsupported format.
	if !IsSupported(cfg.FormatType) {
		slog.Error("unsupported format type", "format_type", cfg.FormatType, "supported", SupportedFormats())
		return NewUnsupportedFormatError(cfg.FormatType)
	}

	// Count only matters in batch mode; a supplied input value means
	// single-shot and the count is ignored entirely.
	if cfg.InputData == "" && cfg.Count < 1 {
		slog.Error("count must be a positive integer when no input data is provided", "count", cfg.Count)
		return NewInvalidCountError(cfg.Count)
	}

	enf, err := NewEnforcer(cfg.FormatType, cfg.Locale)
	if err != nil {
		// NewEnforcer already logged the diagnostic; just propagate.
		return err
	}

	if cfg.InputData != "" {
		// Single-shot mode: exactly one value. The supplied input's content
		// is discarded by EnforceFormat (preserved quirk).
		value, err := enf.EnforceFormat(cfg.InputData)
		if err != nil {
			return err
		}
		fmt.Fprintln(cfg.Output, value)
		return nil
	}

	// Batch mode: Count sequential, independent generations, emitted in
	// invocation order. The first failure halts the whole batch.
	for i := 0; i < cfg.Count; i++ {
		value, err := enf.EnforceFormat("")
		if err != nil {
			return err
		}
		fmt.Fprintln(cfg.Output, value)
	}

	return nil
}
