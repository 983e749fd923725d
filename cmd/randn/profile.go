package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fumitoshi0524/randn"
)

// Profile is the YAML file accepted by --config. Flags given on the command
// line override it.
type Profile struct {
	Workers   int     `yaml:"workers"`
	Grain     int     `yaml:"grain"`
	Seed      *uint64 `yaml:"seed"`
	MaxMemory string  `yaml:"max_memory"`
	Verbose   bool    `yaml:"verbose"`
}

func loadProfile(path string) (Profile, error) {
	var p Profile
	if path == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("failed to parse config file: %w", err)
	}
	return p, nil
}

// parseMemory accepts sizes like "512MiB" or "2GB"; "", "0" and "unlimited"
// mean no limit.
func parseMemory(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "0" || strings.EqualFold(s, "unlimited") {
		return 0, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid memory size %q: %w", s, err)
	}
	return n, nil
}

// resolve merges the profile named by --config with explicitly set flags.
func resolve(cmd *cobra.Command) (Profile, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString("config")
	p, err := loadProfile(path)
	if err != nil {
		return p, err
	}
	if flags.Changed("workers") {
		p.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("grain") {
		p.Grain, _ = flags.GetInt("grain")
	}
	if flags.Changed("seed") {
		seed, _ := flags.GetUint64("seed")
		p.Seed = &seed
	}
	if flags.Changed("max-memory") {
		p.MaxMemory, _ = flags.GetString("max-memory")
	}
	if flags.Changed("verbose") {
		p.Verbose, _ = flags.GetBool("verbose")
	}
	return p, nil
}

func (p Profile) options(logger func() randn.Option) ([]randn.Option, error) {
	limit, err := parseMemory(p.MaxMemory)
	if err != nil {
		return nil, err
	}
	opts := []randn.Option{
		randn.WithWorkers(p.Workers),
		randn.WithGrain(p.Grain),
		randn.WithMemoryLimit(limit),
	}
	if p.Seed != nil {
		opts = append(opts, randn.WithSeed(*p.Seed))
	}
	if p.Verbose {
		opts = append(opts, logger())
	}
	return opts, nil
}
