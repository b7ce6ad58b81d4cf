package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupFallsBackToDefaultsWithoutAConfigFile(t *testing.T) {
	initialized = false
	ConfFile = "./nonexistent-config.toml"
	Setup()

	assert.Equal(t, "INFO", Settings.Log.Level)
	assert.Equal(t, 4, Settings.Search.Depth)
	assert.Equal(t, 8, Settings.Search.QuiescenceMax)
	assert.Equal(t, 2, Settings.Search.KillerSlots)
	assert.Equal(t, int64(0), Settings.Search.RandomSeed)
	assert.Equal(t, 64, Settings.TT.SizeMB)
}

func TestSetupIsANoOpAfterFirstCall(t *testing.T) {
	initialized = false
	ConfFile = "./nonexistent-config.toml"
	Setup()
	Settings.TT.SizeMB = 128
	Setup()
	assert.Equal(t, 128, Settings.TT.SizeMB)
}
