// Package pullrequest compiles the title and Markdown body of the pull request
// that accompanies a generated scaffold, and publishes it idempotently through
// the hosting platform's CLI.
//
// Publishing first looks for an open pull request for the same branch pair and
// returns it untouched when found. Otherwise it creates one with the
// categorization labels and, if that fails for any reason, retries exactly once
// without them, which covers repositories where the labels were never created.
package pullrequest
