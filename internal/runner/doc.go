// Package runner executes external programs with an explicit working
// directory and captures their output in full. The generate pipeline runs the
// scaffolding tool through it and the publish pipeline runs the hosting
// platform's CLI through it; tests substitute a fake Runner.
package runner
