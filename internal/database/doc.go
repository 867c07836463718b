// Package database provides connection pool management for the
// PostgreSQL store holding decoded feed messages.
package database
