// Package doctor runs preflight checks before a CI run: the scaffolding
// invoker and the platform CLI must be on PATH and new enough, and the output
// directory must be usable. Results are printed in the [ OK ]/[MISS]/[FAIL]
// report format used by the CLI.
package doctor
