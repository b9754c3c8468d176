package seqcore

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"
)

// runtimeConfig holds the loaded tunables: VSOP87Dir is read by the
// VSOP87 ephemeris loader at call time; LogLevel is loaded but no logger
// in this package reads it. Unlike the teacher's configuration, a
// missing config file or environment variable is not fatal: the
// built-in defaults keep the package importable and its tests runnable
// without any external setup.
type runtimeConfig struct {
	VSOP87Dir string
	LogLevel  string
}

var (
	cfgOnce    sync.Once
	cfgLoaded  runtimeConfig
	cfgMu      sync.Mutex
)

// runningConfig returns the process-wide configuration, loading it from
// SEQCORE_CONFIG/conf.toml the first time it is called. Absence of the
// environment variable or the file falls back to usable defaults rather
// than panicking, so unit tests never need a conf.toml on disk.
func runningConfig() runtimeConfig {
	cfgOnce.Do(func() {
		cfgMu.Lock()
		defer cfgMu.Unlock()
		cfgLoaded = runtimeConfig{VSOP87Dir: ".", LogLevel: "info"}
		confPath := os.Getenv("SEQCORE_CONFIG")
		if confPath == "" {
			return
		}
		viper.SetConfigName("conf")
		viper.AddConfigPath(confPath)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "[seqcore:config] %s/conf.toml not found, using defaults: %s\n", confPath, err)
			return
		}
		if dir := viper.GetString("ephemeris.vsop87_dir"); dir != "" {
			cfgLoaded.VSOP87Dir = dir
		}
		if lvl := viper.GetString("log.level"); lvl != "" {
			cfgLoaded.LogLevel = lvl
		}
	})
	return cfgLoaded
}

// resetConfigForTest clears the lazily-loaded singleton so tests can
// exercise runningConfig's fallback path deterministically. It is only
// ever called from _test.go files in this package.
func resetConfigForTest() {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	cfgOnce = sync.Once{}
}
