// Package sources decodes raw payloads from the external run trackers into
// normalized run observations.
//
// Decoding is pure: no network I/O happens here. The client interfaces are
// implemented by the surrounding process (or satisfied by payloads saved to
// disk), and the decoders classify categories/regions and parse times so the
// reconciliation engine only ever sees the normalized shape.
package sources
