package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/agentx-labs/scaffoldpr/internal/branding"
	"github.com/agentx-labs/scaffoldpr/internal/ciout"
	"github.com/agentx-labs/scaffoldpr/internal/config"
	"github.com/agentx-labs/scaffoldpr/internal/logging"
	"github.com/agentx-labs/scaffoldpr/internal/params"
)

// buildInfo is set via ldflags in main.
type buildInfo struct {
	Version string
	Commit  string
	Date    string
}

// app is the state shared by all commands of one invocation.
type app struct {
	build    buildInfo
	v        *viper.Viper
	settings config.Settings
	log      *zap.Logger
	ownsLog  bool
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` drives the code-generation step of a CI pipeline.

"generate" runs the scaffolding tool for the configured service and checks its
output; "publish" opens (or finds) the pull request describing that scaffold.
Parameters come from flags, ` + branding.EnvPrefix() + `_* environment variables or a
--params-file, in that order of precedence (e.g. --project-name, then
` + branding.EnvVar(config.KeyProjectName) + `).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.v = config.New()
			if err := config.Load(a.v, cmd.Flags()); err != nil {
				return err
			}
			a.settings = config.LoadSettings(a.v)

			if a.log != nil {
				return nil
			}
			logger, err := logging.New(a.settings.Verbose, a.settings.LogFormat)
			if err != nil {
				return err
			}
			a.log, a.ownsLog = logger, true
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.ownsLog {
				_ = a.log.Sync()
			}
		},
	}

	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newGenerateCmd(a),
		newPublishCmd(a),
		newPreviewCmd(a),
		newValidateCmd(a),
		newDoctorCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

// parameters resolves the parameter record and validates it for pipeline.
func (a *app) parameters(pipeline params.Pipeline) (*params.Parameters, error) {
	p, err := config.Parameters(a.v)
	if err != nil {
		return nil, err
	}
	result, err := params.Validate(p, pipeline)
	if err != nil {
		return nil, fmt.Errorf("validating parameters: %w", err)
	}
	if err := result.Err(); err != nil {
		return nil, err
	}
	a.log.Debug("parameters resolved",
		zap.String("pipeline", string(pipeline)),
		zap.String("project", p.ProjectName),
		zap.String("type", string(p.ProjectType)))
	return p, nil
}

// execute runs the command tree and reports a fatal error on stderr. No
// outputs are written after the error.
func execute(ctx context.Context, rootCmd *cobra.Command, stderr io.Writer) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		ciout.Annotate(stderr, err)
	}
	return err
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	a := &app{build: buildInfo{Version: version, Commit: commit, Date: date}}
	return execute(context.Background(), newRootCmd(a), os.Stderr)
}
