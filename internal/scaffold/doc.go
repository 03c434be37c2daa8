// Package scaffold turns a parameter record into the scaffolding tool's
// argument vector, runs the tool inside the output directory and checks that
// it produced the project directory it was asked for. The tool is treated as
// unsafe to re-run, so a failure is reported once and never retried.
package scaffold
