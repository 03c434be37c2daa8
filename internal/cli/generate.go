package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/scaffoldpr/internal/ciout"
	"github.com/agentx-labs/scaffoldpr/internal/params"
	"github.com/agentx-labs/scaffoldpr/internal/scaffold"
)

func newGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Run the scaffolding tool and verify its output",
		Long: `Compile the parameters into a scaffolding-tool command, run it inside
--output-dir and check that <output-dir>/<project-name> was created.

The tool is run once. A non-zero exit or a missing project directory fails the
step and no outputs are written.

Example:
  scaffoldpr generate --generator-name service --project-name orders-svc \
    --project-type custom --components '["kafka","redis"]' --output-dir ./out`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.parameters(params.PipelineGenerate)
			if err != nil {
				return err
			}

			gen := scaffold.NewGenerator(a.settings.GeneratorInvoker, a.log)
			path, err := gen.Generate(cmd.Context(), p)
			if err != nil {
				return err
			}

			if err := ciout.NewOutputs(cmd.OutOrStdout()).Set(ciout.KeyGeneratedDir, path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Generated %s (%s) at %s/\n", p.ProjectName, p.ProjectType, path)
			return ciout.AppendSummary(fmt.Sprintf("### Scaffold generated\n\n`%s` created with generator `%s` at `%s`.\n",
				p.ProjectName, p.GeneratorName, path))
		},
	}
}
