// Package itto decodes Nasdaq ITTO-style fixed-layout feed messages.
//
// Every message begins with a one-byte ASCII tag that fixes its total
// length and field layout. The package provides the big-endian field
// primitives, the per-tag layout table, the typed decode of each of the
// twenty recognized kinds, the plausibility validation used by the
// stream framer, and the per-kind handler dispatch.
//
// Decoding is byte-exact against the upstream wire format: layout
// lengths and offsets here are a contract, not an internal choice.
package itto
