// Package models defines the canonical data model for tracked speedrun
// records: runners, records, the closed category/region taxonomy with its
// stable storage encodings, and clock-time parsing/rendering.
package models
