package sboxkit

import "errors"

// Sentinel errors returned by the façade. All validation happens at entry;
// once a call has started, every subsequent computation on validated data
// is total and cannot fail.
var (
	// ErrInvalidSBoxLength is returned when a caller-supplied S-box
	// sequence does not have exactly 256 elements.
	ErrInvalidSBoxLength = errors.New("sboxkit: sbox must have exactly 256 entries")

	// ErrInvalidSBoxValue is returned when a caller-supplied S-box
	// sequence contains a value outside [0, 255].
	ErrInvalidSBoxValue = errors.New("sboxkit: sbox value out of range 0-255")

	// ErrNotAPermutation is returned when an S-box sequence has the right
	// length and value range but is not a bijection over [0, 255].
	ErrNotAPermutation = errors.New("sboxkit: sbox is not a permutation of 0-255")

	// ErrInvalidBlockLength is returned when a plaintext, key or
	// ciphertext is not exactly 16 bytes.
	ErrInvalidBlockLength = errors.New("sboxkit: block must be exactly 16 bytes")
)
