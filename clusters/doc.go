// Package clusters classifies receiver clusters by positioning accuracy.
//
// A receiver cluster is the set of receivers whose detections were combined
// into one fixed-position estimate. Every estimate carries the horizontal
// position error (HPEm) against the known reference position. Classify groups
// estimates per cluster, computes the fraction meeting the accuracy goal, and
// labels each cluster with at least MinGroupSize estimates as a good performer
// (pass rate >= confidence level) or a bad performer (pass rate below it).
// Smaller clusters stay in the summary but are left unclassified.
//
// The package performs no I/O. Untyped rows from an upstream table can be
// mapped onto Estimate values with EstimatesFromRecords.
package clusters
