package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/agentx-labs/scaffoldpr/internal/params"
	"github.com/agentx-labs/scaffoldpr/internal/pullrequest"
	"github.com/agentx-labs/scaffoldpr/internal/runner"
	"github.com/agentx-labs/scaffoldpr/internal/scaffold"
)

const previewWrapWidth = 100

func newPreviewCmd(a *app) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the scaffolding command and pull request text without running anything",
		Long: `Print the argument vector the generate pipeline would run and the title and
body the publish pipeline would submit. No external program is started.

The body is rendered for the terminal unless --raw is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.parameters(params.PipelinePreview)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()

			argv, compileErr := scaffold.CompileArgs(a.settings.GeneratorInvoker, p)
			fmt.Fprintln(w, "Command:")
			if compileErr != nil {
				fmt.Fprintf(w, "  (not runnable: %v)\n", compileErr)
			} else {
				c := runner.Command{Name: argv[0], Args: argv[1:], Dir: p.OutputDir}
				fmt.Fprintf(w, "  %s\n", c)
				if p.OutputDir != "" {
					fmt.Fprintf(w, "  (in %s)\n", p.OutputDir)
				}
			}

			fmt.Fprintln(w)
			fmt.Fprintf(w, "Title:\n  %s\n\n", pullrequest.Title(p))
			fmt.Fprintln(w, "Body:")
			writeBody(w, pullrequest.Body(p), raw)

			return compileErr
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the body as plain Markdown")
	return cmd
}

// writeBody renders markdown for the terminal, falling back to the raw text
// when rendering fails.
func writeBody(w io.Writer, markdown string, raw bool) {
	if raw {
		fmt.Fprint(w, markdown)
		if !strings.HasSuffix(markdown, "\n") {
			fmt.Fprintln(w)
		}
		return
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(previewWrapWidth),
	)
	if err != nil {
		writeBody(w, markdown, true)
		return
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		writeBody(w, markdown, true)
		return
	}
	fmt.Fprint(w, rendered)
}
