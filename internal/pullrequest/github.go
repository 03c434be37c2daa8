package pullrequest

import (
	"context"
	"strings"

	"github.com/agentx-labs/scaffoldpr/internal/runner"
)

// firstURLQuery makes `gh pr list` print the first URL or an empty line.
const firstURLQuery = `.[0].url // ""`

// GHClient implements Platform on top of the GitHub CLI.
type GHClient struct {
	Bin    string // executable, usually "gh"
	Runner runner.Runner
	Dir    string // working directory; gh resolves the repository from it
}

// NewGHClient returns a GHClient backed by os/exec.
func NewGHClient(bin, dir string) *GHClient {
	return &GHClient{Bin: bin, Runner: runner.ExecRunner{}, Dir: dir}
}

// FindOpen lists open pull requests for the branch pair and returns the
// first URL.
func (c *GHClient) FindOpen(ctx context.Context, head, base string) (string, error) {
	out, err := runner.RunChecked(ctx, c.Runner, c.command(
		"pr", "list",
		"--head", head,
		"--base", base,
		"--state", "open",
		"--json", "url",
		"--jq", firstURLQuery,
	))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out.Stdout), nil
}

// Create runs `gh pr create` and returns the URL it prints.
func (c *GHClient) Create(ctx context.Context, req CreateRequest) (string, error) {
	args := []string{
		"pr", "create",
		"--title", req.Title,
		"--body", req.Body,
		"--base", req.Base,
		"--head", req.Head,
	}
	for _, label := range req.Labels {
		args = append(args, "--label", label)
	}

	out, err := runner.RunChecked(ctx, c.Runner, c.command(args...))
	if err != nil {
		return "", err
	}
	return lastLine(out.Stdout), nil
}

func (c *GHClient) command(args ...string) runner.Command {
	return runner.Command{Name: c.Bin, Args: args, Dir: c.Dir}
}

// lastLine returns the last non-blank line of s, trimmed. gh may print
// progress text before the URL.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
