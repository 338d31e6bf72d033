// Package encoding implements the small set of textual formats collaborators
// are expected to hand the core: a 256-byte S-box as whitespace-separated
// decimal or 0x-hex integers (optionally laid out as a 16x16 grid, which is
// just 256 whitespace-separated tokens read in row-major order), and a
// 16-byte block as a hex string, optionally whitespace-separated into
// byte pairs. The core itself never parses; these helpers exist for
// cmd/sboxkit and other collaborators.
package encoding

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrHexParse is returned when a hex field could not be parsed as a pair
// of hex digits.
var ErrHexParse = errors.New("encoding: invalid hex digits")

// ParseSBox reads whitespace-separated integer tokens from r, each either
// plain decimal or 0x-prefixed hex, and returns them in the order read.
// It does not validate that the result is a permutation; that is the
// façade's job.
func ParseSBox(r io.Reader) ([]byte, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var out []byte
	for scanner.Scan() {
		tok := scanner.Text()
		v, err := strconv.ParseUint(tok, 0, 16)
		if err != nil {
			return nil, fmt.Errorf("encoding: parse sbox token %q: %w", tok, err)
		}
		if v > 255 {
			return nil, fmt.Errorf("encoding: sbox token %q out of byte range", tok)
		}
		out = append(out, byte(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("encoding: read sbox: %w", err)
	}
	return out, nil
}

// FormatSBox renders sbox as a 16x16 grid of decimal tokens, one row per
// line, the inverse of ParseSBox for the decimal form.
func FormatSBox(sbox []byte) string {
	var b strings.Builder
	for i, v := range sbox {
		if i > 0 {
			if i%16 == 0 {
				b.WriteByte('\n')
			} else {
				b.WriteByte(' ')
			}
		}
		fmt.Fprintf(&b, "%d", v)
	}
	return b.String()
}

// ParseBlock parses a 16-byte block from hex text, accepting both a
// contiguous 32-digit hex string and whitespace-separated byte pairs
// (e.g. "2b 7e 15 16 ...").
func ParseBlock(s string) ([16]byte, error) {
	var block [16]byte
	compact := strings.Join(strings.Fields(s), "")
	if len(compact) != 32 {
		return block, fmt.Errorf("encoding: block must decode to 16 bytes, got %d hex digits", len(compact))
	}
	for i := 0; i < 16; i++ {
		pair := compact[2*i : 2*i+2]
		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			return block, fmt.Errorf("%w: %q", ErrHexParse, pair)
		}
		block[i] = byte(v)
	}
	return block, nil
}

// FormatBlock renders a 16-byte block as whitespace-separated hex pairs.
func FormatBlock(block [16]byte) string {
	var b strings.Builder
	for i, v := range block {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02x", v)
	}
	return b.String()
}
