// Package store implements the typed repository over the runners and records
// tables.
//
// Rows decode once into the typed models at the store boundary, with
// category and region codes validated through their explicit encoding
// tables, so callers never re-parse raw column values.
//
// Creates and updates are separate operations so callers cannot accidentally
// mix up intent, and Transaction exposes explicit boundaries for the
// check-and-act sequences in identity resolution and reconciliation.
package store
