package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/scaffoldpr/internal/ciout"
	"github.com/agentx-labs/scaffoldpr/internal/params"
	"github.com/agentx-labs/scaffoldpr/internal/pullrequest"
)

func newPublishCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "publish",
		Short: "Open the pull request for the scaffold, or find the open one",
		Long: `Build the pull request title and body from the parameters and make sure an
open pull request from --pr-branch into --target-branch exists.

An already open pull request is reported as is. Otherwise one is created with
the configured labels; if that fails it is created once more without labels.

Example:
  scaffoldpr publish --generator-name service --project-name orders-svc \
    --target-branch main --pr-branch scaffold/orders-svc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.parameters(params.PipelinePublish)
			if err != nil {
				return err
			}

			pub := &pullrequest.Publisher{
				Platform: pullrequest.NewGHClient(a.settings.PlatformCLI, a.settings.RepoDir),
				Labels:   a.settings.Labels,
				Log:      a.log,
			}
			res, err := pub.Publish(cmd.Context(), pullrequest.Title(p), pullrequest.Body(p), p.TargetBranch, p.PRBranch)
			if err != nil {
				return err
			}

			out := ciout.NewOutputs(cmd.OutOrStdout())
			for _, kv := range [][2]string{
				{ciout.KeyPRURL, res.URL},
				{ciout.KeyPRNumber, res.Number},
				{ciout.KeyPRExisting, strconv.FormatBool(res.Existing)},
			} {
				if err := out.Set(kv[0], kv[1]); err != nil {
					return err
				}
			}

			verb := "Created"
			if res.Existing {
				verb = "Found existing"
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s pull request #%s: %s\n", verb, res.Number, res.URL)
			return ciout.AppendSummary(fmt.Sprintf("### Pull request\n\n%s pull request [#%s](%s) for `%s`.\n",
				verb, res.Number, res.URL, p.ProjectName))
		},
	}
}
