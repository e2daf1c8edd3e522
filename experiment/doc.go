// Package experiment drives the bold and cautious analyzers over the
// candidate (attacker, safe cell) sweep: the first ten agents crossed
// with the first ten obstacle cells. Each attempt is embarrassingly
// parallel — it owns its own time-expanded graph and mutable state — so
// the sweep is dispatched across a bounded worker pool via
// golang.org/x/sync/errgroup, with a progress bar as the only
// process-level shared resource.
package experiment
