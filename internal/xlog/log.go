//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package xlog is a thin wrapper over github.com/op/go-logging, kept to
// one file the way the teacher's franky_logging/logging packages are,
// so every other package can get a pre-configured, named *logging.Logger
// in one line instead of repeating backend/formatter setup everywhere.
package xlog

import (
	"os"

	"github.com/op/go-logging"

	"github.com/UeMaBel/bukochess/internal/config"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortpkg:-6.6s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`,
)

// Get returns a Logger named for the calling package, backed by stdout
// and leveled according to config.Settings.Log.Level (defaulting to
// INFO when config.Setup has not been called yet).
func Get(name string) *logging.Logger {
	log := logging.MustGetLogger(name)
	backend := logging.NewLogBackend(os.Stdout, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level(), "")
	log.SetBackend(leveled)
	return log
}

func level() logging.Level {
	if config.Settings.Log.Level == "" {
		return logging.INFO
	}
	lvl, err := logging.LogLevel(config.Settings.Log.Level)
	if err != nil {
		return logging.INFO
	}
	return lvl
}
