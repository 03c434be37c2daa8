package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/scaffoldpr/internal/config"
	"github.com/agentx-labs/scaffoldpr/internal/params"
)

func newValidateCmd(a *app) *cobra.Command {
	var pipeline string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the parameter record without running anything",
		Long: `Validate the resolved parameters against the schema for a pipeline
(generate, publish or all). For custom projects the component lists are
decoded too.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pl := params.Pipeline(pipeline)
			switch pl {
			case params.PipelineGenerate, params.PipelinePublish, params.PipelineAll:
			default:
				return fmt.Errorf("invalid --pipeline %q (must be generate, publish or all)", pipeline)
			}

			p, err := config.Parameters(a.v)
			if err != nil {
				return err
			}
			result, err := params.Validate(p, pl)
			if err != nil {
				return fmt.Errorf("validating parameters: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Parameter validation (%s):\n", pl)
			problems := len(result.Issues)
			if result.Valid {
				fmt.Fprintln(w, "  [ OK ] schema")
			} else {
				fmt.Fprintf(w, "  [FAIL] %d schema issue(s):\n", len(result.Issues))
				for _, issue := range result.Issues {
					fmt.Fprintf(w, "    - %s\n", issue)
				}
			}

			if p.IsCustom() {
				for _, check := range []struct {
					field string
					fn    func() ([]string, error)
				}{
					{params.FieldComponents, p.DecodeComponents},
					{params.FieldHealthcheck, p.DecodeHealthcheck},
				} {
					list, err := check.fn()
					if err != nil {
						problems++
						fmt.Fprintf(w, "  [FAIL] %v\n", err)
						continue
					}
					fmt.Fprintf(w, "  [ OK ] %s: [%s]\n", check.field, strings.Join(list, ", "))
				}
			}

			if problems > 0 {
				return fmt.Errorf("%d parameter problem(s) found", problems)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pipeline, "pipeline", string(params.PipelineAll), "Pipeline to validate for: generate, publish or all")
	return cmd
}
