// Package ciout writes results for a CI orchestrator: single-line key=value
// outputs on stdout (mirrored into $GITHUB_OUTPUT when set), Markdown job
// summaries into $GITHUB_STEP_SUMMARY, and ::error:: annotations for fatal
// conditions.
package ciout
