// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded into the binary; forks edit it to rename the
// tool, change the environment prefix or swap the default executables.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName          string   `yaml:"cli_name"`
	DisplayName      string   `yaml:"display_name"`
	Description      string   `yaml:"description"`
	EnvPrefix        string   `yaml:"env_prefix"`
	GeneratorInvoker string   `yaml:"generator_invoker"`
	DefaultGenerator string   `yaml:"default_generator"`
	PlatformCLI      string   `yaml:"platform_cli"`
	Labels           []string `yaml:"labels"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:          "scaffoldpr",
			DisplayName:      "ScaffoldPR",
			Description:      "Generate a service scaffold and open its pull request from CI",
			EnvPrefix:        "SCAFFOLDPR",
			GeneratorInvoker: "yo",
			DefaultGenerator: "core-nest-service",
			PlatformCLI:      "gh",
			Labels:           []string{"automated", "generator"},
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "scaffoldpr").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "SCAFFOLDPR").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GeneratorInvoker returns the default executable that runs generators (e.g., "yo").
func GeneratorInvoker() string { load(); return defaults.GeneratorInvoker }

// DefaultGenerator returns the generator used when none is configured.
func DefaultGenerator() string { load(); return defaults.DefaultGenerator }

// PlatformCLI returns the default code-hosting CLI executable (e.g., "gh").
func PlatformCLI() string { load(); return defaults.PlatformCLI }

// Labels returns a copy of the default pull request labels.
func Labels() []string {
	load()
	out := make([]string, len(defaults.Labels))
	copy(out, defaults.Labels)
	return out
}

// EnvVar returns a fully qualified env var name, e.g., EnvVar("project-name") → "SCAFFOLDPR_PROJECT_NAME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(suffix, "-", "_"))
}
