// Package diag defines the diagnostic model shared by the loader, the
// linker's external validation stage, and the CLI.
//
// Diagnostic is the central record: a Severity, a compact numeric Code
// with a stable string form, a human message, the dotted path of the node
// the finding is about, and optional formatting values. The linker works
// on trees whose positions have been discarded by the front end, so
// diagnostics carry node paths rather than source spans.
//
// Producers emit through the Reporter interface; BagReporter aggregates
// into a Bag, which supports limits, merging, sorting, and deduplication.
// Rendering is the CLI's responsibility.
package diag
