package ciout

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Environment variables set by GitHub Actions.
const (
	EnvOutputFile  = "GITHUB_OUTPUT"
	EnvSummaryFile = "GITHUB_STEP_SUMMARY"
)

// Output keys.
const (
	KeyGeneratedDir = "generated_dir"
	KeyPRURL        = "pr_url"
	KeyPRNumber     = "pr_number"
	KeyPRExisting   = "pr_existing"
)

// Outputs collects step outputs.
type Outputs struct {
	W    io.Writer // key=value lines
	File string    // optional $GITHUB_OUTPUT path
}

// NewOutputs writes to w and to $GITHUB_OUTPUT when the variable is set.
func NewOutputs(w io.Writer) *Outputs {
	return &Outputs{W: w, File: os.Getenv(EnvOutputFile)}
}

// Set emits key=value. Values containing newlines are written to the output
// file with a heredoc delimiter and flattened on the stream.
func (o *Outputs) Set(key, value string) error {
	if _, err := fmt.Fprintf(o.W, "%s=%s\n", key, flatten(value)); err != nil {
		return fmt.Errorf("writing output %s: %w", key, err)
	}
	if o.File == "" {
		return nil
	}

	var entry string
	if strings.ContainsAny(value, "\r\n") {
		delim := "ghadelimiter_" + uuid.NewString()
		entry = fmt.Sprintf("%s<<%s\n%s\n%s\n", key, delim, value, delim)
	} else {
		entry = fmt.Sprintf("%s=%s\n", key, value)
	}
	return appendFile(o.File, entry)
}

// AppendSummary appends Markdown to $GITHUB_STEP_SUMMARY. It is a no-op
// outside GitHub Actions.
func AppendSummary(markdown string) error {
	path := os.Getenv(EnvSummaryFile)
	if path == "" {
		return nil
	}
	if !strings.HasSuffix(markdown, "\n") {
		markdown += "\n"
	}
	return appendFile(path, markdown)
}

// Annotate reports a fatal error: any captured diagnostics first, then an
// ::error:: workflow command.
func Annotate(w io.Writer, err error) {
	if err == nil {
		return
	}
	var d interface{ Diagnostics() string }
	if errors.As(err, &d) {
		if diag := d.Diagnostics(); diag != "" {
			fmt.Fprint(w, diag)
			if !strings.HasSuffix(diag, "\n") {
				fmt.Fprintln(w)
			}
		}
	}
	fmt.Fprintf(w, "::error::%s\n", escapeData(err.Error()))
}

// escapeData applies the workflow command escaping rules for message data.
func escapeData(s string) string {
	s = strings.ReplaceAll(s, "%", "%25")
	s = strings.ReplaceAll(s, "\r", "%0D")
	return strings.ReplaceAll(s, "\n", "%0A")
}

func flatten(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

func appendFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
