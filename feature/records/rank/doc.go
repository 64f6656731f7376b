// Package rank provides the read-only ranking queries over the canonical
// record set: top ten, world record, personal best, per-runner record list
// and numeric rank.
package rank
