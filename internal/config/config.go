//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

// Package config holds globally available configuration variables, read
// from a TOML file with defaults surviving a missing file, the same way
// the teacher's internal/config package does it.
package config

import (
	"log"

	"github.com/BurntSushi/toml"
)

// ConfFile is the path to the config file, relative to the working
// directory. Can be overridden before calling Setup.
var ConfFile = "./config.toml"

// Settings is the global configuration, populated by Setup.
var Settings conf

var initialized = false

type conf struct {
	Log    logConfig    `toml:"log"`
	Search searchConfig `toml:"search"`
	TT     ttConfig     `toml:"tt"`
}

type logConfig struct {
	Level string `toml:"level"`
}

// searchConfig carries the fixed-depth alpha-beta knobs named in
// SPEC_FULL.md §3: nominal search depth and the quiescence extension's
// depth cap (quiescence itself is unbounded by ply in spec.md §4.6, but
// a cap is a sane engineering default to bound pathological exchanges).
type searchConfig struct {
	Depth          int `toml:"depth"`
	QuiescenceMax  int `toml:"quiescence_max"`
	KillerSlots    int `toml:"killer_slots"`
	RandomSeed     int64 `toml:"random_seed"`
}

type ttConfig struct {
	SizeMB int `toml:"size_mb"`
}

func defaults() conf {
	return conf{
		Log:    logConfig{Level: "INFO"},
		Search: searchConfig{Depth: 4, QuiescenceMax: 8, KillerSlots: 2, RandomSeed: 0},
		TT:     ttConfig{SizeMB: 64},
	}
}

// Setup reads the configuration file and fills Settings from it,
// falling back to defaults for any field the file does not set and for
// every field when the file is absent entirely. Safe to call more than
// once; subsequent calls are no-ops.
func Setup() {
	if initialized {
		return
	}
	Settings = defaults()
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("config file not found, using defaults (", err, ")")
	}
	initialized = true
}
