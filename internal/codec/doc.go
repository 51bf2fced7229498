// Package codec implements the fixed-width scalar byte codec of §6.2:
// big-endian for integers, little-endian IEEE-754 bit patterns for reals,
// a single byte for char, and a 64-byte NUL-padded slot for string. The
// endianness asymmetry between integers and floats is intentional and
// preserved exactly (§9 "Design Notes, Float endianness").
package codec
