// Package visited provides the per-traversal visited set used by field-of-view
// scans to yield each position at most once.
package visited
