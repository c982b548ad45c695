package config_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/vhornak/prioq/internal/config"
)

func TestFromViperReadsKeys(t *testing.T) {
	v := viper.New()
	v.Set("graph", "roads.gr")
	v.Set("variants", []string{"binary_heap", "brodal_queue"})
	v.Set("seed", uint64(7))
	v.Set("stability-window", 50)
	v.Set("output", "out")
	v.Set("mode", "basic")
	v.Set("src", 3)
	v.Set("dst", 9)

	cfg := config.FromViper(v)

	require.Equal(t, "roads.gr", cfg.GraphPath)
	require.Equal(t, []string{"binary_heap", "brodal_queue"}, cfg.Variants)
	require.Equal(t, uint64(7), cfg.Seed)
	require.Equal(t, 50, cfg.StabilityWindow)
	require.Equal(t, "out", cfg.OutputDir)
	require.Equal(t, config.ModeBasic, cfg.Mode)
	require.Equal(t, 3, cfg.SrcID)
	require.Equal(t, 9, cfg.DstID)
}
