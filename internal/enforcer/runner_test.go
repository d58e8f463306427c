package enforcer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// batchConfig builds a RunConfig for batch mode with output captured in buf.
func batchConfig(formatType string, count int, buf *bytes.Buffer) *RunConfig {
	cfg := NewRunConfig()
	cfg.FormatType = formatType
	cfg.Count = count
	cfg.Output = buf
	return cfg
}

func TestRunBatchModeEmitsExactlyCountLines(t *testing.T) {
	var buf bytes.Buffer
	err := Run(batchConfig(FormatZipCode, 5, &buf))
	assert.Nil(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 5)
	for _, line := range lines {
		assert.Regexp(t, `^\d{5}(-\d{4})?$`, line)
	}
}

func TestRunRejectsNonPositiveCountBeforeGenerating(t *testing.T) {
	for _, count := range []int{0, -3} {
		var buf bytes.Buffer
		err := Run(batchConfig(FormatPhoneNumber, count, &buf))

		var ice *InvalidCountError
		assert.True(t, errors.As(err, &ice))
		assert.Equal(t, count, ice.Count)
		assert.Zero(t, buf.Len(), "no output may be produced for count %d", count)
	}
}

func TestRunRejectsUnknownFormatWithNoOutput(t *testing.T) {
	var buf bytes.Buffer
	err := Run(batchConfig("not_a_format", 1, &buf))

	var ufe *UnsupportedFormatError
	assert.True(t, errors.As(err, &ufe))
	assert.Zero(t, buf.Len())
}

// An unknown format type is reported even when the count is also invalid;
// format validation comes first.
func TestRunFormatValidationTakesPriorityOverCount(t *testing.T) {
	var buf bytes.Buffer
	err := Run(batchConfig("not_a_format", 0, &buf))

	var ufe *UnsupportedFormatError
	assert.True(t, errors.As(err, &ufe))
	assert.Zero(t, buf.Len())
}

func TestRunSingleShotEmitsOneFreshValue(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewRunConfig()
	cfg.FormatType = FormatPhoneNumber
	cfg.InputData = "555-1234"
	cfg.Output = &buf

	err := Run(cfg)
	assert.Nil(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 1)
	// The supplied input is discarded, not reformatted (preserved quirk).
	assert.NotEqual(t, "555-1234", lines[0])
	assert.Regexp(t, `^(\(\d{3}\) \d{3}-\d{4}|\d{3}-\d{3}-\d{4}|\+1-\d{3}-\d{3}-\d{4})$`, lines[0])
}

// Count is only validated in batch mode: a supplied input value means
// single-shot, and even a zero count must not get in the way.
func TestRunSingleShotIgnoresCount(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewRunConfig()
	cfg.FormatType = FormatSSN
	cfg.InputData = "123-45-6789"
	cfg.Count = 0
	cfg.Output = &buf

	err := Run(cfg)
	assert.Nil(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 1)
}

func TestRunPropagatesProviderLocaleFailure(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewRunConfig()
	cfg.FormatType = FormatEmail
	cfg.Locale = "zz_ZZ"
	cfg.Output = &buf

	err := Run(cfg)

	var ge *GenerationError
	assert.True(t, errors.As(err, &ge))
	assert.Zero(t, buf.Len())
}

// Two identical batch runs are not expected to produce identical output:
// values are independently randomized per call.
func TestRunOutputIsNotIdempotent(t *testing.T) {
	var first, second bytes.Buffer
	assert.Nil(t, Run(batchConfig(FormatEmail, 10, &first)))
	assert.Nil(t, Run(batchConfig(FormatEmail, 10, &second)))
	assert.NotEqual(t, first.String(), second.String())
}
