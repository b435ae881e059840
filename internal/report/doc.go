// Package report renders the final build status for the user: the artifact
// path and an opened output folder on success, a marked error with the
// packaging tool's verbatim diagnostics and an acknowledgment pause on
// failure.
package report
