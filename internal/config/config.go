package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/agentx-labs/scaffoldpr/internal/branding"
	"github.com/agentx-labs/scaffoldpr/internal/params"
)

// Keys double as flag names, params file keys and (upper-cased, with the
// env prefix) environment variable names.
const (
	KeyGeneratorName = "generator-name"
	KeyProjectName   = "project-name"
	KeyProjectType   = "project-type"
	KeyComponents    = "components"
	KeyHealthcheck   = "healthcheck-components"
	KeyDescription   = "description"
	KeyAuthor        = "author"
	KeyWithExamples  = "with-examples"
	KeyTargetBranch  = "target-branch"
	KeyPRBranch      = "pr-branch"
	KeyOutputDir     = "output-dir"

	KeyParamsFile       = "params-file"
	KeyGeneratorInvoker = "generator-invoker"
	KeyPlatformCLI      = "platform-cli"
	KeyLabels           = "labels"
	KeyRepoDir          = "repo-dir"
	KeyVerbose          = "verbose"
	KeyLogFormat        = "log-format"
	KeyMinGHVersion     = "min-gh-version"
	KeyMinGenVersion    = "min-generator-version"
)

const fileType = "yaml"

// Settings are the tool-level options that are not part of the parameter record.
type Settings struct {
	GeneratorInvoker    string
	PlatformCLI         string
	Labels              []string
	RepoDir             string
	Verbose             bool
	LogFormat           string
	MinGHVersion        string
	MinGeneratorVersion string
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyGeneratorName, branding.DefaultGenerator())
	v.SetDefault(KeyProjectType, string(params.ProjectStandard))
	v.SetDefault(KeyComponents, params.EmptyList)
	v.SetDefault(KeyHealthcheck, params.EmptyList)
	v.SetDefault(KeyGeneratorInvoker, branding.GeneratorInvoker())
	v.SetDefault(KeyPlatformCLI, branding.PlatformCLI())
	v.SetDefault(KeyLabels, branding.Labels())
	v.SetDefault(KeyLogFormat, "json")
	v.SetDefault(KeyMinGHVersion, "2.0.0")
	return v
}

// RegisterFlags declares every key as a flag on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyGeneratorName, branding.DefaultGenerator(), "Generator (scaffolding template) name")
	fs.String(KeyProjectName, "", "Service name; also the generated directory name")
	fs.String(KeyProjectType, string(params.ProjectStandard), "Project type: standard or custom")
	fs.String(KeyComponents, params.EmptyList, `Components as a JSON array, e.g. '["kafka","redis"]' (custom only)`)
	fs.String(KeyHealthcheck, params.EmptyList, `Health-check components as a JSON array (custom only)`)
	fs.String(KeyDescription, "", `Project description ("null" means unset)`)
	fs.String(KeyAuthor, "", `Project author ("null" means unset)`)
	fs.Bool(KeyWithExamples, false, "Include example code (custom only)")
	fs.String(KeyTargetBranch, "", "Branch the pull request merges into")
	fs.String(KeyPRBranch, "", "Branch the pull request merges from")
	fs.String(KeyOutputDir, "", "Directory the scaffolding tool runs in")

	fs.String(KeyParamsFile, "", "YAML file with parameter defaults")
	fs.String(KeyGeneratorInvoker, branding.GeneratorInvoker(), "Executable that runs generators")
	fs.String(KeyPlatformCLI, branding.PlatformCLI(), "Code-hosting CLI executable")
	fs.StringSlice(KeyLabels, branding.Labels(), "Labels for new pull requests")
	fs.String(KeyRepoDir, "", "Repository checkout the platform CLI runs in (default: current directory)")
	fs.BoolP(KeyVerbose, "v", false, "Enable debug logging")
	fs.String(KeyLogFormat, "json", "Log format: json or console")
	fs.String(KeyMinGHVersion, "2.0.0", "Minimum platform CLI version checked by doctor")
	fs.String(KeyMinGenVersion, "", "Minimum generator invoker version checked by doctor (empty: skip)")
}

// Load binds fs to v and reads the params file when one is named.
func Load(v *viper.Viper, fs *pflag.FlagSet) error {
	if err := v.BindPFlags(fs); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	file := v.GetString(KeyParamsFile)
	if file == "" {
		return nil
	}
	v.SetConfigFile(file)
	v.SetConfigType(fileType)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading params file %s: %w", file, err)
	}
	return nil
}

// Parameters builds the parameter record from v.
func Parameters(v *viper.Viper) (*params.Parameters, error) {
	components, err := listValue(v, KeyComponents)
	if err != nil {
		return nil, err
	}
	healthcheck, err := listValue(v, KeyHealthcheck)
	if err != nil {
		return nil, err
	}

	return &params.Parameters{
		GeneratorName:         v.GetString(KeyGeneratorName),
		ProjectName:           v.GetString(KeyProjectName),
		ProjectType:           params.ProjectType(v.GetString(KeyProjectType)),
		Components:            components,
		HealthcheckComponents: healthcheck,
		Description:           v.GetString(KeyDescription),
		Author:                v.GetString(KeyAuthor),
		WithExamples:          v.GetBool(KeyWithExamples),
		TargetBranch:          v.GetString(KeyTargetBranch),
		PRBranch:              v.GetString(KeyPRBranch),
		OutputDir:             v.GetString(KeyOutputDir),
	}, nil
}

// LoadSettings reads the tool-level settings from v.
func LoadSettings(v *viper.Viper) Settings {
	return Settings{
		GeneratorInvoker:    v.GetString(KeyGeneratorInvoker),
		PlatformCLI:         v.GetString(KeyPlatformCLI),
		Labels:              splitLabels(v.GetStringSlice(KeyLabels)),
		RepoDir:             v.GetString(KeyRepoDir),
		Verbose:             v.GetBool(KeyVerbose),
		LogFormat:           v.GetString(KeyLogFormat),
		MinGHVersion:        v.GetString(KeyMinGHVersion),
		MinGeneratorVersion: v.GetString(KeyMinGenVersion),
	}
}

// listValue returns a list field as raw JSON text. Flags and env carry the
// JSON text already; a params file may use a native YAML list instead, which
// is re-encoded here so both compilers see one representation.
func listValue(v *viper.Viper, key string) (string, error) {
	switch raw := v.Get(key).(type) {
	case nil:
		return "", nil
	case string:
		return raw, nil
	case []interface{}, []string:
		data, err := json.Marshal(raw)
		if err != nil {
			return "", fmt.Errorf("encoding %s: %w", key, err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("%s must be a JSON array string or a list, got %T", key, raw)
	}
}

// splitLabels accepts both repeated values and a single comma-separated
// value, as environment variables deliver.
func splitLabels(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, label := range strings.Split(item, ",") {
			if label = strings.TrimSpace(label); label != "" {
				out = append(out, label)
			}
		}
	}
	return out
}
