// Package config resolves desk configuration from the environment. A .env
// file is loaded by main before Load is called; command-line flags then
// override whatever Load returns.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variable names.
const (
	EnvStoreDir     = "EBR_STORE_DIR"
	EnvSettingsFile = "EBR_SETTINGS_FILE"
	EnvTimeZone     = "EBR_TZ"
	EnvRemindWithin = "EBR_REMIND_WITHIN"
	EnvRemindEvery  = "EBR_REMIND_EVERY"
	EnvMetricsFile  = "EBR_METRICS_FILE"
	EnvLogFile      = "EBR_LOG_FILE"
	EnvSampleOrders = "EBR_SAMPLE_ORDERS"
)

// Config is the resolved desk configuration.
type Config struct {
	StoreDir     string        // pebble directory; empty keeps orders in memory
	SettingsFile string        // pricing JSON; empty uses built-in prices
	TimeZone     string        // IANA name used to read pickup dates; empty is local time
	RemindWithin time.Duration // how far ahead the reminder looks
	RemindEvery  time.Duration // how often the reminder checks
	MetricsFile  string        // textfile-collector output; empty disables
	LogFile      string        // "stderr" logs to the console
	SampleOrders bool          // seed the in-memory store with demo orders
}

// Load reads the configuration from the environment with defaults.
func Load() Config {
	return Config{
		StoreDir:     getenv(EnvStoreDir, ""),
		SettingsFile: getenv(EnvSettingsFile, ""),
		TimeZone:     getenv(EnvTimeZone, ""),
		RemindWithin: getDuration(EnvRemindWithin, 2*time.Hour),
		RemindEvery:  getDuration(EnvRemindEvery, time.Minute),
		MetricsFile:  getenv(EnvMetricsFile, ""),
		LogFile:      getenv(EnvLogFile, ".ebr-logs/ebr.log"),
		SampleOrders: getBool(EnvSampleOrders, true),
	}
}

// Location resolves TimeZone. An empty name is local time.
func (c Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

func getBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
