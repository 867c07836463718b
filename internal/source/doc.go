// Package source produces raw feed bytes from files, UDP sockets, and
// WebSocket connections. Every source emits Chunks; a chunk carries no
// alignment guarantee, so messages may start or end anywhere inside it.
package source
