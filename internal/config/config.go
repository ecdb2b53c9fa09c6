// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration knobs for the HTTP server, the backing store
// and the voice boundary.
type Config struct {
	HTTPAddr        string
	SpannerDatabase string
	ShutdownTimeout time.Duration

	// VoiceTTSCmd is the external text-to-speech command probed at startup.
	VoiceTTSCmd string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		SpannerDatabase: getenv("SPANNER_DATABASE", "projects/test-project/instances/emulator-instance/databases/asistente-db"),
		ShutdownTimeout: durenvs("SHUTDOWN_TIMEOUT", 15),
		VoiceTTSCmd:     getenv("VOICE_TTS_CMD", "espeak-ng"),
	}
}
