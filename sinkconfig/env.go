package sinkconfig

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	EnvSinks      = "LAZYASSERT_SINKS"
	EnvLogFormat  = "LAZYASSERT_LOG_FORMAT"
	EnvLogOutput  = "LAZYASSERT_LOG_OUTPUT"
	EnvExitCode   = "LAZYASSERT_EXIT_CODE"
	EnvStackTrace = "LAZYASSERT_STACK_TRACE"
)

// applyEnvOverrides overrides config values with environment variables if set.
// Malformed values are returned as errors rather than ignored.
func applyEnvOverrides(cfg *Config) error {
	if sinks := os.Getenv(EnvSinks); sinks != "" {
		cfg.Sinks = cfg.Sinks[:0:0]
		for _, s := range strings.Split(sinks, ",") {
			if s = strings.TrimSpace(s); s != "" {
				cfg.Sinks = append(cfg.Sinks, strings.ToLower(s))
			}
		}
	}
	if format := os.Getenv(EnvLogFormat); format != "" {
		cfg.Log.Format = strings.ToLower(format)
	}
	if output := os.Getenv(EnvLogOutput); output != "" {
		cfg.Log.Output = output
	}
	if code := os.Getenv(EnvExitCode); code != "" {
		c, err := strconv.Atoi(code)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvExitCode, code, err)
		}
		cfg.Fatal.ExitCode = c
	}
	if trace := os.Getenv(EnvStackTrace); trace != "" {
		t, err := strconv.ParseBool(trace)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvStackTrace, trace, err)
		}
		cfg.Fatal.StackTrace = t
	}
	return nil
}
