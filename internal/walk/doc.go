// Package walk computes grouped disk usage for a set of filesystem roots.
//
// A pool of walkers enumerates the roots in parallel and sends one Message per
// visited entry to a single Aggregator, which deduplicates hard links by file
// identity and accumulates sizes per group key. Filesystem failures are
// collected as data in the Result rather than aborting the walk.
package walk
