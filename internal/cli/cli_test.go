package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func withArgs(t *testing.T, args []string) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = args
}

func TestParseFlagsInputFile(t *testing.T) {
	withArgs(t, []string{"prog", "-a", "acme", "test.prg"})

	opts, err := ParseFlags()

	assert.NoError(t, err)
	assert.Equal(t, "test.prg", opts.Input)
	assert.Equal(t, "acme", opts.Assembler)
}

func TestParseFlagsMissingInputIsUsageError(t *testing.T) {
	withArgs(t, []string{"prog"})

	_, err := ParseFlags()

	assert.Error(t, err)
	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))
}

func TestParseFlagsHelpDoesNotRequireInput(t *testing.T) {
	withArgs(t, []string{"prog", "-help"})

	_, err := ParseFlags()

	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))
}

func TestParseFlagsFlagAfterFileRejected(t *testing.T) {
	withArgs(t, []string{"prog", "test.prg", "-q"})

	_, err := ParseFlags()

	assert.Error(t, err)
}
