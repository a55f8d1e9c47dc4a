package main

import (
	"fmt"
	"strconv"
)

const (
	defaultPath = "measurements.txt"

	envHash    = "CATSTATS_HASH"
	envWorkers = "CATSTATS_WORKERS"
	envVerbose = "CATSTATS_VERBOSE"
)

const usage = "usage: catstats [<measurements>] [<profile-dir>]"

type config struct {
	path       string
	profileDir string
	hasher     string
	workers    int
	verbose    bool
}

// parseConfig reads the positional arguments and the CATSTATS_* switches.
// With neither present it yields the plain run over measurements.txt.
func parseConfig(args []string, getenv func(string) string) (config, error) {
	cfg := config{path: defaultPath, hasher: getenv(envHash)}
	if len(args) > 2 {
		return config{}, fmt.Errorf("too many arguments (%d)", len(args))
	}
	if len(args) >= 1 {
		cfg.path = args[0]
	}
	if len(args) == 2 {
		cfg.profileDir = args[1]
	}

	var err error
	if cfg.verbose, err = envBool(getenv, envVerbose); err != nil {
		return config{}, err
	}
	if v := getenv(envWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return config{}, fmt.Errorf("%s=%q: want a positive integer", envWorkers, v)
		}
		cfg.workers = n
	}
	return cfg, nil
}

func envBool(getenv func(string) string, name string) (bool, error) {
	v := getenv(name)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s=%q: %w", name, v, err)
	}
	return b, nil
}
