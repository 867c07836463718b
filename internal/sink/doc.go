// Package sink delivers decoded feed messages to their destinations.
//
// Sinks:
//   - CSV sink (normalized rows, one line per message)
//   - Text sink (human-readable, one line per message)
//   - Postgres writer (batched inserts via pgx)
//
// The postgres writer is append-only (never update, only insert).
// Prices are stored as integer ten-thousandths of a dollar; rendering
// to decimal happens only at the CSV and text sinks.
package sink
