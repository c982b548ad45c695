// Package config layers benchmark parameters over CLI flags using
// github.com/spf13/viper, per the ambient configuration stack described
// alongside the rest of cmd/prioqbench.
package config

import "github.com/spf13/viper"

// Mode selects which of Dijkstra.h's three search variants a run exercises.
type Mode string

const (
	ModeLabelSet     Mode = "label-set"
	ModeBasic        Mode = "basic"
	ModePointToPoint Mode = "point-to-point"
)

// Config holds every knob the benchmark driver needs, sourced from CLI
// flags (and, through viper, environment variables or a config file using
// the same keys).
type Config struct {
	GraphPath       string
	Variants        []string
	Seed            uint64
	StabilityWindow int
	OutputDir       string
	Mode            Mode
	SrcID           int
	DstID           int
}

// FromViper reads a Config out of v. Callers are expected to have already
// bound the relevant pflag.FlagSet to v with BindPFlags.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		GraphPath:       v.GetString("graph"),
		Variants:        v.GetStringSlice("variants"),
		Seed:            v.GetUint64("seed"),
		StabilityWindow: v.GetInt("stability-window"),
		OutputDir:       v.GetString("output"),
		Mode:            Mode(v.GetString("mode")),
		SrcID:           v.GetInt("src"),
		DstID:           v.GetInt("dst"),
	}
}
