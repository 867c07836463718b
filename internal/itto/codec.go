package itto

import (
	"encoding/binary"
	"strings"
)

// Field read primitives. Callers slice the input to the exact width
// before calling; none of these read past the bytes they are given.

// Uint16 reads a big-endian 16-bit value from the first 2 bytes of b.
func Uint16(b []byte) uint16 {
	return binary.BigEndian.Uint16(b)
}

// Uint32 reads a big-endian 32-bit value from the first 4 bytes of b.
func Uint32(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

// Uint48 reads a big-endian 48-bit value from the first 6 bytes of b,
// widened to 64 bits. It reads exactly 6 bytes; feed timestamps are
// packed this way and must never be read through a wider load.
func Uint48(b []byte) uint64 {
	return uint64(b[0])<<40 |
		uint64(b[1])<<32 |
		uint64(b[2])<<24 |
		uint64(b[3])<<16 |
		uint64(b[4])<<8 |
		uint64(b[5])
}

// Uint64 reads a big-endian 64-bit value from the first 8 bytes of b.
func Uint64(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}

// TrimASCII copies b into a string and strips trailing space padding.
func TrimASCII(b []byte) string {
	return strings.TrimRight(string(b), " ")
}
