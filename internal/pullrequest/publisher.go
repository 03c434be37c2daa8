package pullrequest

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// CreateRequest describes a pull request to open.
type CreateRequest struct {
	Title  string
	Body   string
	Base   string // target branch
	Head   string // source branch
	Labels []string
}

// Platform is the hosting platform as seen through its CLI.
type Platform interface {
	// FindOpen returns the URL of an open pull request from head into base,
	// or "" when there is none.
	FindOpen(ctx context.Context, head, base string) (string, error)
	// Create opens a pull request and returns its URL.
	Create(ctx context.Context, req CreateRequest) (string, error)
}

// Result identifies the published pull request.
type Result struct {
	URL      string
	Number   string
	Existing bool // an open pull request was already there
	Attempts int  // create calls issued
}

// PublishError reports that both create attempts failed.
type PublishError struct {
	Enhanced error // attempt with labels
	Plain    error // attempt without labels
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("creating pull request failed with and without labels: %v", e.Plain)
}

func (e *PublishError) Unwrap() []error {
	return []error{e.Enhanced, e.Plain}
}

// Diagnostics returns the captured output of both attempts.
func (e *PublishError) Diagnostics() string {
	var b strings.Builder
	for _, attempt := range []struct {
		name string
		err  error
	}{{"with labels", e.Enhanced}, {"without labels", e.Plain}} {
		if attempt.err == nil {
			continue
		}
		fmt.Fprintf(&b, "Attempt %s: %v\n", attempt.name, attempt.err)
		if d := diagnosticsOf(attempt.err); d != "" {
			b.WriteString(d)
		}
	}
	return b.String()
}

func diagnosticsOf(err error) string {
	var d interface{ Diagnostics() string }
	if errors.As(err, &d) {
		return d.Diagnostics()
	}
	return ""
}

// Publisher opens pull requests without duplicating them.
type Publisher struct {
	Platform Platform
	Labels   []string
	Log      *zap.Logger
}

// Publish makes sure an open pull request from head into base exists and
// returns it. Re-running it for the same branch pair is safe.
//
// States: check for an existing pull request (a failed query is fatal), then
// create with labels, then on any failure create once more without labels.
// There are no further retries.
func (p *Publisher) Publish(ctx context.Context, title, body, base, head string) (*Result, error) {
	log := p.logger().With(zap.String("base", base), zap.String("head", head))

	existing, err := p.Platform.FindOpen(ctx, head, base)
	if err != nil {
		return nil, fmt.Errorf("checking for an existing pull request: %w", err)
	}
	if existing != "" {
		log.Info("pull request already open", zap.String("url", existing))
		return &Result{URL: existing, Number: ExtractNumber(existing), Existing: true}, nil
	}

	req := CreateRequest{Title: title, Body: body, Base: base, Head: head}
	result := &Result{}

	var enhancedErr error
	if len(p.Labels) > 0 {
		req.Labels = p.Labels
		result.Attempts++
		url, err := p.Platform.Create(ctx, req)
		if err == nil {
			return p.done(log, result, url), nil
		}
		enhancedErr = err
		log.Warn("creating pull request with labels failed, retrying without labels",
			zap.Strings("labels", p.Labels), zap.Error(err))
		req.Labels = nil
	}

	result.Attempts++
	url, err := p.Platform.Create(ctx, req)
	if err != nil {
		if enhancedErr == nil {
			return nil, fmt.Errorf("creating pull request: %w", err)
		}
		return nil, &PublishError{Enhanced: enhancedErr, Plain: err}
	}
	return p.done(log, result, url), nil
}

func (p *Publisher) done(log *zap.Logger, result *Result, url string) *Result {
	result.URL = url
	result.Number = ExtractNumber(url)
	log.Info("pull request created",
		zap.String("url", url),
		zap.Int("attempts", result.Attempts))
	return result
}

func (p *Publisher) logger() *zap.Logger {
	if p.Log == nil {
		return zap.NewNop()
	}
	return p.Log
}

var trailingNumber = regexp.MustCompile(`(\d+)$`)

// ExtractNumber returns the run of decimal digits ending url, or "" when url
// does not end in a digit.
func ExtractNumber(url string) string {
	m := trailingNumber.FindStringSubmatch(strings.TrimSpace(url))
	if m == nil {
		return ""
	}
	return m[1]
}
