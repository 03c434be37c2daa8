// Package cli defines the Cobra command tree for the scaffoldpr CLI. Each file
// registers one command (generate, publish, preview, validate, doctor,
// version). Commands resolve parameters through the config package and
// delegate the work to internal packages; they only handle flag parsing,
// output formatting and fatal-error reporting.
package cli
