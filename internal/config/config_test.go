package config

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestCreateLoggerDebugTakesPriorityOverQuiet(t *testing.T) {
	logger := CreateLogger(true, true)
	assert.NotNil(t, logger)
}

func TestCreateLoggerQuiet(t *testing.T) {
	logger := CreateLogger(false, true)
	assert.NotNil(t, logger)
}

func TestCreateLoggerDefault(t *testing.T) {
	logger := CreateLogger(false, false)
	assert.NotNil(t, logger)
}
