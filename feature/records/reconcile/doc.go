// Package reconcile deduplicates incoming run observations against the
// stored canonical records and maintains the per runner/category/region
// personal-best flag.
//
// Matching is a five-tier fallback: source run id, then runner+time, then
// video URL, then comment, then "new record". The matching step is separated
// from the merge/create step so the precedence rules stay in one place.
package reconcile
