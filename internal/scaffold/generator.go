package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/agentx-labs/scaffoldpr/internal/params"
	"github.com/agentx-labs/scaffoldpr/internal/runner"
)

// ExitError reports a scaffolding run that exited non-zero.
type ExitError struct {
	Argv   []string
	Output *runner.Output
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("scaffolding tool %s exited with status %d", e.Argv[0], e.Output.ExitCode)
}

// Diagnostics returns the captured streams of the failed run.
func (e *ExitError) Diagnostics() string {
	return runner.FormatStreams(e.Output)
}

// MissingArtifactError reports a successful run that did not leave the
// expected project directory behind.
type MissingArtifactError struct {
	Path    string
	Entries []string // contents of the output directory
}

func (e *MissingArtifactError) Error() string {
	return fmt.Sprintf("scaffolding tool succeeded but %s is not a directory", e.Path)
}

// Diagnostics lists what the output directory actually contains.
func (e *MissingArtifactError) Diagnostics() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Contents of %s:\n", filepath.Dir(e.Path))
	if len(e.Entries) == 0 {
		b.WriteString("  (empty)\n")
	}
	for _, name := range e.Entries {
		fmt.Fprintf(&b, "  %s\n", name)
	}
	return b.String()
}

// Generator runs the scaffolding tool.
type Generator struct {
	Invoker string
	Runner  runner.Runner
	Log     *zap.Logger
}

// NewGenerator returns a Generator backed by os/exec.
func NewGenerator(invoker string, log *zap.Logger) *Generator {
	return &Generator{
		Invoker: invoker,
		Runner:  runner.ExecRunner{},
		Log:     log,
	}
}

// Generate compiles the parameters and invokes the tool. It returns the
// path of the generated project directory.
func (g *Generator) Generate(ctx context.Context, p *params.Parameters) (string, error) {
	argv, err := CompileArgs(g.Invoker, p)
	if err != nil {
		return "", err
	}
	return g.Invoke(ctx, argv, p.OutputDir, p.ProjectName)
}

// Invoke runs argv with outputDir as its working directory and checks that
// outputDir/projectName exists afterwards. The working directory is passed to
// the child process; this process's own directory is left untouched.
func (g *Generator) Invoke(ctx context.Context, argv []string, outputDir, projectName string) (string, error) {
	if len(argv) == 0 {
		return "", errors.New("empty scaffolding command")
	}
	log := g.logger()

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}

	cmd := runner.Command{Name: argv[0], Args: argv[1:], Dir: outputDir}
	log.Info("running scaffolding tool",
		zap.String("dir", outputDir),
		zap.Strings("argv", argv))

	out, err := g.Runner.Run(ctx, cmd)
	if err != nil {
		return "", fmt.Errorf("running scaffolding tool: %w", err)
	}
	if out.ExitCode != 0 {
		return "", &ExitError{Argv: argv, Output: out}
	}
	log.Debug("scaffolding tool finished",
		zap.String("stdout", out.Stdout),
		zap.String("stderr", out.Stderr))

	artifact := filepath.Join(outputDir, projectName)
	info, statErr := os.Stat(artifact)
	if statErr != nil || !info.IsDir() {
		return "", &MissingArtifactError{Path: artifact, Entries: listDir(outputDir)}
	}

	log.Info("project generated", zap.String("path", artifact))
	return artifact, nil
}

func (g *Generator) logger() *zap.Logger {
	if g.Log == nil {
		return zap.NewNop()
	}
	return g.Log
}

// listDir returns the sorted entry names of dir, with a trailing slash on
// directories. Read errors yield an empty listing.
func listDir(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
