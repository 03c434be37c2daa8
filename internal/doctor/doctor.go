package doctor

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/agentx-labs/scaffoldpr/internal/runner"
)

// Tool is an external executable the pipelines depend on.
type Tool struct {
	Label       string   // e.g., "platform CLI"
	Bin         string   // e.g., "gh"
	VersionArgs []string // e.g., ["--version"]
	MinVersion  string   // empty skips the version comparison
}

// Checker runs the preflight checks.
type Checker struct {
	W        io.Writer
	Runner   runner.Runner
	LookPath func(string) (string, error)

	problems int
}

// NewChecker returns a Checker that looks tools up on PATH.
func NewChecker(w io.Writer) *Checker {
	return &Checker{W: w, Runner: runner.ExecRunner{}, LookPath: exec.LookPath}
}

// Problems returns the number of failed or missing checks so far.
func (c *Checker) Problems() int { return c.problems }

// Err returns an error when any check failed.
func (c *Checker) Err() error {
	if c.problems == 0 {
		return nil
	}
	return fmt.Errorf("%d preflight check(s) failed", c.problems)
}

// CheckTools verifies that each tool is on PATH and meets its minimum version.
func (c *Checker) CheckTools(ctx context.Context, tools []Tool) {
	fmt.Fprintln(c.W, "Tools check:")
	for _, t := range tools {
		c.checkTool(ctx, t)
	}
}

func (c *Checker) checkTool(ctx context.Context, t Tool) {
	path, err := c.LookPath(t.Bin)
	if err != nil {
		c.problems++
		fmt.Fprintf(c.W, "  [MISS] %s (%s) not found\n", t.Label, t.Bin)
		return
	}

	if t.MinVersion == "" && len(t.VersionArgs) == 0 {
		fmt.Fprintf(c.W, "  [ OK ] %s found at %s\n", t.Label, path)
		return
	}

	out, err := c.Runner.Run(ctx, runner.Command{Name: path, Args: t.VersionArgs})
	if err != nil || out.ExitCode != 0 {
		c.problems++
		fmt.Fprintf(c.W, "  [FAIL] %s: could not read version from %s\n", t.Label, path)
		return
	}
	version, ok := ExtractVersion(out.Stdout + out.Stderr)
	if !ok {
		if t.MinVersion != "" {
			c.problems++
			fmt.Fprintf(c.W, "  [FAIL] %s: no version in %q\n", t.Label, firstLine(out.Stdout))
			return
		}
		fmt.Fprintf(c.W, "  [ OK ] %s found at %s\n", t.Label, path)
		return
	}

	if t.MinVersion == "" {
		fmt.Fprintf(c.W, "  [ OK ] %s %s at %s\n", t.Label, version, path)
		return
	}

	cmp, err := CompareVersions(version, t.MinVersion)
	if err != nil {
		c.problems++
		fmt.Fprintf(c.W, "  [FAIL] %s: %v\n", t.Label, err)
		return
	}
	if cmp < 0 {
		c.problems++
		fmt.Fprintf(c.W, "  [FAIL] %s %s is older than required %s\n", t.Label, version, t.MinVersion)
		return
	}
	fmt.Fprintf(c.W, "  [ OK ] %s %s (>= %s) at %s\n", t.Label, version, t.MinVersion, path)
}

// CheckOutputDir reports whether outputDir is usable and whether the project
// directory is already present from an earlier run.
func (c *Checker) CheckOutputDir(outputDir, projectName string) {
	fmt.Fprintln(c.W, "Output directory check:")
	if outputDir == "" {
		fmt.Fprintln(c.W, "  [INFO] no output directory configured")
		return
	}

	info, err := os.Stat(outputDir)
	switch {
	case os.IsNotExist(err):
		fmt.Fprintf(c.W, "  [ OK ] %s will be created\n", outputDir)
		return
	case err != nil:
		c.problems++
		fmt.Fprintf(c.W, "  [FAIL] %s: %v\n", outputDir, err)
		return
	case !info.IsDir():
		c.problems++
		fmt.Fprintf(c.W, "  [FAIL] %s exists but is not a directory\n", outputDir)
		return
	}
	fmt.Fprintf(c.W, "  [ OK ] %s exists\n", outputDir)

	if projectName == "" {
		return
	}
	target := filepath.Join(outputDir, projectName)
	if _, err := os.Stat(target); err == nil {
		fmt.Fprintf(c.W, "  [WARN] %s already exists; the generator may refuse or overwrite it\n", target)
	}
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
