package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/agentx-labs/scaffoldpr/internal/params"
	"github.com/agentx-labs/scaffoldpr/internal/runner"
)

// fakeRunner records calls and optionally creates directories inside the
// working directory to simulate the scaffolding tool.
type fakeRunner struct {
	calls  []runner.Command
	create string
	output *runner.Output
	runErr error
}

func (f *fakeRunner) Run(_ context.Context, cmd runner.Command) (*runner.Output, error) {
	f.calls = append(f.calls, cmd)
	if f.runErr != nil {
		return nil, f.runErr
	}
	if f.create != "" {
		if err := os.MkdirAll(filepath.Join(cmd.Dir, f.create), 0755); err != nil {
			return nil, err
		}
	}
	if f.output == nil {
		return &runner.Output{}, nil
	}
	return f.output, nil
}

func newTestGenerator(t *testing.T, r runner.Runner) *Generator {
	return &Generator{Invoker: "yo", Runner: r, Log: zaptest.NewLogger(t)}
}

func TestInvoke_Success(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "nested", "out")
	fr := &fakeRunner{create: "orders-svc"}
	g := newTestGenerator(t, fr)

	argv := []string{"yo", "service", "--headless"}
	path, err := g.Invoke(context.Background(), argv, outDir, "orders-svc")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "orders-svc"), path)

	require.Len(t, fr.calls, 1)
	assert.Equal(t, "yo", fr.calls[0].Name)
	assert.Equal(t, []string{"service", "--headless"}, fr.calls[0].Args)
	assert.Equal(t, outDir, fr.calls[0].Dir)
}

func TestInvoke_OutputDirAlreadyExists(t *testing.T) {
	outDir := t.TempDir()
	g := newTestGenerator(t, &fakeRunner{create: "svc"})

	_, err := g.Invoke(context.Background(), []string{"yo"}, outDir, "svc")
	require.NoError(t, err)
}

func TestInvoke_NonZeroExitNotRetried(t *testing.T) {
	fr := &fakeRunner{
		create: "svc",
		output: &runner.Output{ExitCode: 2, Stdout: "partial", Stderr: "generator exploded"},
	}
	g := newTestGenerator(t, fr)

	path, err := g.Invoke(context.Background(), []string{"yo", "service"}, t.TempDir(), "svc")
	require.Error(t, err)
	assert.Empty(t, path)
	assert.Len(t, fr.calls, 1)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Output.ExitCode)
	assert.Contains(t, exitErr.Diagnostics(), "generator exploded")
	assert.Contains(t, exitErr.Diagnostics(), "partial")
	assert.Contains(t, err.Error(), "status 2")
}

func TestInvoke_MissingArtifact(t *testing.T) {
	outDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "stray.txt"), []byte("x"), 0644))
	fr := &fakeRunner{create: "wrong-name"}
	g := newTestGenerator(t, fr)

	path, err := g.Invoke(context.Background(), []string{"yo"}, outDir, "orders-svc")
	require.Error(t, err)
	assert.Empty(t, path)

	var missing *MissingArtifactError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, filepath.Join(outDir, "orders-svc"), missing.Path)
	assert.Equal(t, []string{"stray.txt", "wrong-name/"}, missing.Entries)
	assert.Contains(t, missing.Diagnostics(), "wrong-name/")
}

func TestInvoke_ArtifactIsFileNotDir(t *testing.T) {
	outDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "svc"), []byte("x"), 0644))
	g := newTestGenerator(t, &fakeRunner{})

	_, err := g.Invoke(context.Background(), []string{"yo"}, outDir, "svc")
	var missing *MissingArtifactError
	require.True(t, errors.As(err, &missing))
}

func TestInvoke_EmptyOutputDirListing(t *testing.T) {
	err := &MissingArtifactError{Path: filepath.Join("out", "svc")}
	assert.Contains(t, err.Diagnostics(), "(empty)")
}

func TestInvoke_StartFailure(t *testing.T) {
	g := newTestGenerator(t, &fakeRunner{runErr: errors.New("executable file not found")})

	_, err := g.Invoke(context.Background(), []string{"yo"}, t.TempDir(), "svc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "executable file not found")
}

func TestInvoke_WorkingDirectoryUnchanged(t *testing.T) {
	before, err := os.Getwd()
	require.NoError(t, err)

	g := newTestGenerator(t, &fakeRunner{output: &runner.Output{ExitCode: 1}})
	_, _ = g.Invoke(context.Background(), []string{"yo"}, t.TempDir(), "svc")

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestGenerate_MalformedInputMakesNoCall(t *testing.T) {
	fr := &fakeRunner{create: "svc"}
	g := newTestGenerator(t, fr)

	p := &params.Parameters{
		GeneratorName: "service",
		ProjectName:   "svc",
		ProjectType:   params.ProjectCustom,
		Components:    "[oops",
		OutputDir:     t.TempDir(),
	}
	_, err := g.Generate(context.Background(), p)
	require.Error(t, err)
	assert.Empty(t, fr.calls)
}

func TestGenerate_EndToEnd(t *testing.T) {
	fr := &fakeRunner{create: "orders-svc"}
	g := newTestGenerator(t, fr)

	p := &params.Parameters{
		GeneratorName: "service",
		ProjectName:   "orders-svc",
		ProjectType:   params.ProjectStandard,
		OutputDir:     t.TempDir(),
	}
	path, err := g.Generate(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(p.OutputDir, "orders-svc"), path)
	require.Len(t, fr.calls, 1)
	assert.Equal(t, prefix, fr.calls[0].Argv())
}

func TestInvoke_EmptyArgv(t *testing.T) {
	g := newTestGenerator(t, &fakeRunner{})
	_, err := g.Invoke(context.Background(), nil, t.TempDir(), "svc")
	assert.Error(t, err)
}
