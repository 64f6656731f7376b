// Package records implements the speedrun record tracking feature.
//
// It maintains a canonical set of Super Metroid records by reconciling
// observations from two external trackers:
//  1. deertier.com: the community leaderboard (JSON records dump).
//  2. speedrun.com: per-category leaderboard payloads.
//
// # Components
//
//   - Service: Orchestrates ingestion, manual submission and the ranking queries.
//   - Handler: Exposes HTTP endpoints for queries, submission and ingestion.
//   - Loader: Registers the feature with the application.
//
// The heavy lifting lives in the subpackages: sources decodes and normalizes
// raw payloads, resolve pins runs to canonical runner identities, reconcile
// merges observations into the record set, and rank answers the leaderboard
// queries.
//
// # HTTP Endpoints
//
//   - GET  /records/top     : Top 10 records for a category.
//   - GET  /records/wr      : World record for a category.
//   - GET  /records/pb      : A runner's personal best for a category.
//   - GET  /records/runner  : All active records of a runner.
//   - POST /records/submit  : Reconcile a manually submitted run.
//   - POST /records/ingest/deertier : Reconcile a deertier payload.
//   - POST /records/ingest/speedrun : Reconcile a speedrun.com payload.
package records
