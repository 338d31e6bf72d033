package sboxkit

import (
	"context"
	"fmt"

	"github.com/nullsbox/sboxkit/internal/trace"
)

// toBlock16 validates that b is exactly 16 bytes and converts it to an
// array. It exists for collaborators that receive blocks as slices (e.g.
// parsed from hex text); the array-typed façade functions below make the
// 16-byte length structurally impossible to get wrong, so this is the only
// call site that can actually return ErrInvalidBlockLength.
func toBlock16(b []byte) ([16]byte, error) {
	var out [16]byte
	if len(b) != 16 {
		return out, fmt.Errorf("%w: got %d", ErrInvalidBlockLength, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// EncryptStepsBytes is EncryptSteps for collaborators holding plaintext,
// key and sbox as slices rather than fixed-size arrays.
func EncryptStepsBytes(ctx context.Context, plaintext, key, sbox []byte) ([]Step, error) {
	pt, err := toBlock16(plaintext)
	if err != nil {
		return nil, err
	}
	k, err := toBlock16(key)
	if err != nil {
		return nil, err
	}
	s, err := NewSBox(sbox)
	if err != nil {
		return nil, err
	}
	return EncryptSteps(ctx, pt, k, [256]byte(s))
}

// DecryptStepsBytes is DecryptSteps for collaborators holding ciphertext,
// key and sbox as slices rather than fixed-size arrays.
func DecryptStepsBytes(ctx context.Context, ciphertext, key, sbox []byte) ([]Step, error) {
	ct, err := toBlock16(ciphertext)
	if err != nil {
		return nil, err
	}
	k, err := toBlock16(key)
	if err != nil {
		return nil, err
	}
	s, err := NewSBox(sbox)
	if err != nil {
		return nil, err
	}
	return DecryptSteps(ctx, ct, k, [256]byte(s))
}

// EncryptSteps validates that sbox is a permutation, then runs the forward
// AES-128 cipher, returning the full 42-step trace of intermediate states.
func EncryptSteps(ctx context.Context, plaintext, key [16]byte, sbox [256]byte) ([]Step, error) {
	if err := validatePermutation(sbox); err != nil {
		return nil, err
	}
	r, err := trace.Encrypt(ctx, plaintext, key, sbox)
	if err != nil {
		return nil, err
	}
	return r.Steps(), nil
}

// DecryptSteps validates that sbox is a permutation, then runs the inverse
// AES-128 cipher, returning the full 42-step trace of intermediate states.
func DecryptSteps(ctx context.Context, ciphertext, key [16]byte, sbox [256]byte) ([]Step, error) {
	if err := validatePermutation(sbox); err != nil {
		return nil, err
	}
	r, err := trace.Decrypt(ctx, ciphertext, key, sbox)
	if err != nil {
		return nil, err
	}
	return r.Steps(), nil
}

// EncryptBlock encrypts a single 128-bit block and returns only the
// terminal ciphertext, equivalent to draining EncryptSteps to its last
// entry.
func EncryptBlock(ctx context.Context, plaintext, key [16]byte, sbox [256]byte) ([16]byte, error) {
	steps, err := EncryptSteps(ctx, plaintext, key, sbox)
	if err != nil {
		return [16]byte{}, err
	}
	return steps[len(steps)-1].State, nil
}

// DecryptBlock decrypts a single 128-bit block and returns only the
// terminal plaintext, equivalent to draining DecryptSteps to its last
// entry.
func DecryptBlock(ctx context.Context, ciphertext, key [16]byte, sbox [256]byte) ([16]byte, error) {
	steps, err := DecryptSteps(ctx, ciphertext, key, sbox)
	if err != nil {
		return [16]byte{}, err
	}
	return steps[len(steps)-1].State, nil
}
