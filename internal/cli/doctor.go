package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/scaffoldpr/internal/config"
	"github.com/agentx-labs/scaffoldpr/internal/doctor"
)

func newDoctorCmd(a *app) *cobra.Command {
	var skipTools bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Preflight check of the tools and directories the pipelines use",
		Long: `Check that the scaffolding tool and the platform CLI are on PATH and recent
enough, and that the configured output directory is usable.

Parameters are not validated here; use "validate" for that.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.Parameters(a.v)
			if err != nil {
				return err
			}

			checker := doctor.NewChecker(cmd.OutOrStdout())
			if !skipTools {
				checker.CheckTools(cmd.Context(), []doctor.Tool{
					{
						Label:       "scaffolding tool",
						Bin:         a.settings.GeneratorInvoker,
						VersionArgs: []string{"--version"},
						MinVersion:  a.settings.MinGeneratorVersion,
					},
					{
						Label:       "platform CLI",
						Bin:         a.settings.PlatformCLI,
						VersionArgs: []string{"--version"},
						MinVersion:  a.settings.MinGHVersion,
					},
				})
			}
			checker.CheckOutputDir(p.OutputDir, p.ProjectName)

			if err := checker.Err(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All checks passed.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipTools, "skip-tools", false, "Only check directories")
	return cmd
}
