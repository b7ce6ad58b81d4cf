package xlog

import (
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/UeMaBel/bukochess/internal/config"
)

func TestGetReturnsALoggerNamedForTheCaller(t *testing.T) {
	log := Get("xlog-test")
	assert.NotNil(t, log)
}

func TestLevelDefaultsToInfoWhenUnset(t *testing.T) {
	saved := config.Settings.Log.Level
	defer func() { config.Settings.Log.Level = saved }()

	config.Settings.Log.Level = ""
	assert.Equal(t, logging.INFO, level())
}

func TestLevelFallsBackToInfoOnUnknownLevel(t *testing.T) {
	saved := config.Settings.Log.Level
	defer func() { config.Settings.Log.Level = saved }()

	config.Settings.Log.Level = "NOT_A_LEVEL"
	assert.Equal(t, logging.INFO, level())
}

func TestLevelParsesAConfiguredLevel(t *testing.T) {
	saved := config.Settings.Log.Level
	defer func() { config.Settings.Log.Level = saved }()

	config.Settings.Log.Level = "DEBUG"
	assert.Equal(t, logging.DEBUG, level())
}
