// Package trace drives the AES-128 core one operation at a time, emitting
// an observable Step after each one, so a caller can watch (or step
// backward through) the full round structure of an encryption or
// decryption instead of only seeing the final block.
package trace

import (
	"context"

	"github.com/nullsbox/sboxkit/internal/aes128"
)

// StepKind names the AES operation that produced a Step's snapshot.
type StepKind int

const (
	Init StepKind = iota
	AddRoundKey
	SubBytes
	ShiftRows
	MixColumns
	InvSubBytes
	InvShiftRows
	InvMixColumns
	Final
)

func (k StepKind) String() string {
	switch k {
	case Init:
		return "Init"
	case AddRoundKey:
		return "AddRoundKey"
	case SubBytes:
		return "SubBytes"
	case ShiftRows:
		return "ShiftRows"
	case MixColumns:
		return "MixColumns"
	case InvSubBytes:
		return "InvSubBytes"
	case InvShiftRows:
		return "InvShiftRows"
	case InvMixColumns:
		return "InvMixColumns"
	case Final:
		return "Final"
	default:
		return "Unknown"
	}
}

// Step is one observable snapshot of the AES state, taken immediately
// after Operation was applied.
type Step struct {
	Round     int
	Operation StepKind
	State     [16]byte
	Progress  int
}

// Recorder holds the full step history of one encryption or decryption
// call. It never re-executes the cipher: every Step was captured as the
// cipher ran, so At is a pure slice lookup.
type Recorder struct {
	steps []Step
}

// Steps returns the full recorded step history in order.
func (r *Recorder) Steps() []Step {
	return r.steps
}

// At returns the step at index i and true, or the zero Step and false if i
// is out of range.
func (r *Recorder) At(i int) (Step, bool) {
	if i < 0 || i >= len(r.steps) {
		return Step{}, false
	}
	return r.steps[i], true
}

const totalSteps = 42

func (r *Recorder) record(round int, op StepKind, s aes128.State) {
	r.steps = append(r.steps, Step{
		Round:     round,
		Operation: op,
		State:     s.Bytes(),
		Progress:  100 * (len(r.steps) + 1) / totalSteps,
	})
}

// Encrypt runs the forward AES-128 cipher on plaintext under key and sbox,
// recording a Step after Init and after each of the 41 operations that
// follow it, and returns the recorder holding all 42 steps.
func Encrypt(ctx context.Context, plaintext, key [16]byte, sbox [256]byte) (*Recorder, error) {
	rks := aes128.ExpandKey(key, sbox)
	r := &Recorder{steps: make([]Step, 0, totalSteps)}

	s := aes128.LoadState(plaintext)
	r.record(0, Init, s)

	s.AddRoundKey(rks[0])
	r.record(0, AddRoundKey, s)

	for round := 1; round <= 9; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.SubBytes(sbox)
		r.record(round, SubBytes, s)

		s.ShiftRows()
		r.record(round, ShiftRows, s)

		s.MixColumns()
		r.record(round, MixColumns, s)

		s.AddRoundKey(rks[round])
		r.record(round, AddRoundKey, s)
	}

	s.SubBytes(sbox)
	r.record(10, SubBytes, s)

	s.ShiftRows()
	r.record(10, ShiftRows, s)

	s.AddRoundKey(rks[10])
	r.record(10, AddRoundKey, s)

	r.record(10, Final, s)

	return r, nil
}

// Decrypt runs the inverse AES-128 cipher on ciphertext under key and
// sbox, recording all 42 steps of the decryption.
func Decrypt(ctx context.Context, ciphertext, key [16]byte, sbox [256]byte) (*Recorder, error) {
	rks := aes128.ExpandKey(key, sbox)
	invSBox := aes128.InvertSBox(sbox)
	r := &Recorder{steps: make([]Step, 0, totalSteps)}

	s := aes128.LoadState(ciphertext)
	r.record(10, Init, s)

	s.AddRoundKey(rks[10])
	r.record(10, AddRoundKey, s)

	for round := 9; round >= 1; round-- {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.InvShiftRows()
		r.record(round, InvShiftRows, s)

		s.SubBytes(invSBox)
		r.record(round, InvSubBytes, s)

		s.AddRoundKey(rks[round])
		r.record(round, AddRoundKey, s)

		s.InvMixColumns()
		r.record(round, InvMixColumns, s)
	}

	s.InvShiftRows()
	r.record(0, InvShiftRows, s)

	s.SubBytes(invSBox)
	r.record(0, InvSubBytes, s)

	s.AddRoundKey(rks[0])
	r.record(0, AddRoundKey, s)

	r.record(0, Final, s)

	return r, nil
}
