// Package config layers command-line flags, SCAFFOLDPR_* environment
// variables and an optional YAML params file into the parameter record and
// the tool settings (executables, labels, logging). Flags win over the
// environment, which wins over the file, which wins over built-in defaults.
package config
