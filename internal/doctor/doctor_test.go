package doctor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agentx-labs/scaffoldpr/internal/runner"
)

type bannerRunner map[string]*runner.Output

func (b bannerRunner) Run(_ context.Context, cmd runner.Command) (*runner.Output, error) {
	out, ok := b[cmd.Name]
	if !ok {
		return nil, errors.New("not runnable")
	}
	return out, nil
}

func lookPathIn(found ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, f := range found {
			if f == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("executable file not found in $PATH")
	}
}

func newTestChecker(buf *bytes.Buffer, r runner.Runner, found ...string) *Checker {
	return &Checker{W: buf, Runner: r, LookPath: lookPathIn(found...)}
}

func TestCheckTools(t *testing.T) {
	tests := []struct {
		name     string
		tool     Tool
		found    []string
		outputs  bannerRunner
		wantLine string
		wantErr  bool
	}{
		{
			name:     "missing",
			tool:     Tool{Label: "platform CLI", Bin: "gh", VersionArgs: []string{"--version"}, MinVersion: "2.0.0"},
			wantLine: "[MISS] platform CLI (gh) not found",
			wantErr:  true,
		},
		{
			name:     "new enough",
			tool:     Tool{Label: "platform CLI", Bin: "gh", VersionArgs: []string{"--version"}, MinVersion: "2.0.0"},
			found:    []string{"gh"},
			outputs:  bannerRunner{"/usr/bin/gh": {Stdout: "gh version 2.45.0 (2024-03-04)\n"}},
			wantLine: "[ OK ] platform CLI 2.45.0 (>= 2.0.0) at /usr/bin/gh",
		},
		{
			name:     "too old",
			tool:     Tool{Label: "platform CLI", Bin: "gh", VersionArgs: []string{"--version"}, MinVersion: "2.0.0"},
			found:    []string{"gh"},
			outputs:  bannerRunner{"/usr/bin/gh": {Stdout: "gh version 1.14.0\n"}},
			wantLine: "[FAIL] platform CLI 1.14.0 is older than required 2.0.0",
			wantErr:  true,
		},
		{
			name:     "version command fails",
			tool:     Tool{Label: "generator invoker", Bin: "yo", VersionArgs: []string{"--version"}, MinVersion: "4.0.0"},
			found:    []string{"yo"},
			outputs:  bannerRunner{"/usr/bin/yo": {ExitCode: 1}},
			wantLine: "[FAIL] generator invoker: could not read version",
			wantErr:  true,
		},
		{
			name:     "no minimum reports version",
			tool:     Tool{Label: "generator invoker", Bin: "yo", VersionArgs: []string{"--version"}},
			found:    []string{"yo"},
			outputs:  bannerRunner{"/usr/bin/yo": {Stdout: "5.0.0\n"}},
			wantLine: "[ OK ] generator invoker 5.0.0 at /usr/bin/yo",
		},
		{
			name:     "presence only",
			tool:     Tool{Label: "git", Bin: "git"},
			found:    []string{"git"},
			wantLine: "[ OK ] git found at /usr/bin/git",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			c := newTestChecker(&buf, tt.outputs, tt.found...)
			c.CheckTools(context.Background(), []Tool{tt.tool})

			if !strings.Contains(buf.String(), tt.wantLine) {
				t.Errorf("output missing %q:\n%s", tt.wantLine, buf.String())
			}
			if (c.Err() != nil) != tt.wantErr {
				t.Errorf("Err() = %v, wantErr %v", c.Err(), tt.wantErr)
			}
		})
	}
}

func TestCheckOutputDir(t *testing.T) {
	t.Run("not yet created", func(t *testing.T) {
		var buf bytes.Buffer
		c := newTestChecker(&buf, nil)
		c.CheckOutputDir(filepath.Join(t.TempDir(), "out"), "svc")
		if !strings.Contains(buf.String(), "will be created") || c.Problems() != 0 {
			t.Errorf("unexpected report (problems=%d):\n%s", c.Problems(), buf.String())
		}
	})

	t.Run("existing project warns", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.Mkdir(filepath.Join(dir, "svc"), 0755); err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		c := newTestChecker(&buf, nil)
		c.CheckOutputDir(dir, "svc")
		if !strings.Contains(buf.String(), "[WARN]") || c.Problems() != 0 {
			t.Errorf("unexpected report (problems=%d):\n%s", c.Problems(), buf.String())
		}
	})

	t.Run("file in the way", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "out")
		if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		c := newTestChecker(&buf, nil)
		c.CheckOutputDir(file, "svc")
		if c.Err() == nil {
			t.Errorf("expected failure:\n%s", buf.String())
		}
	})

	t.Run("unset", func(t *testing.T) {
		var buf bytes.Buffer
		c := newTestChecker(&buf, nil)
		c.CheckOutputDir("", "svc")
		if !strings.Contains(buf.String(), "[INFO]") {
			t.Errorf("unexpected report:\n%s", buf.String())
		}
	})
}
