// Package reportcache is an optional, AEAD-sealed local cache for
// analysis results, adapted from the teacher's cache-encryption pair
// (internal/cache/encryption.go + internal/runtime_crypto/aead.go): a
// seed derives a ChaCha20-Poly1305 key via SHA-256, and the ciphertext is
// prefixed with a random nonce. It is never touched by Analyze or the
// step recorder — it exists purely for the cmd/sboxkit collaborator (its
// "analyze -cache" flag seals, its "cache" subcommand opens), keeping
// persistence outside the core.
package reportcache

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"encoding/gob"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

func deriveKey(seed []byte) [chacha20poly1305.KeySize]byte {
	h := sha256.New()
	h.Write(seed)
	h.Write([]byte("sboxkit-report-cache-v1"))
	sum := h.Sum(nil)

	var key [chacha20poly1305.KeySize]byte
	copy(key[:], sum[:chacha20poly1305.KeySize])
	return key
}

// Seal serialises data with gob and encrypts it under a key derived from
// seed, prefixing the output with the random nonce used to seal it.
func Seal(data any, seed []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(data); err != nil {
		return nil, fmt.Errorf("reportcache: serialize: %w", err)
	}

	key := deriveKey(seed)
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return nil, fmt.Errorf("reportcache: new aead: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("reportcache: nonce: %w", err)
	}

	sealed := aead.Seal(nil, nonce, buf.Bytes(), nil)

	out := make([]byte, len(nonce)+len(sealed))
	copy(out, nonce)
	copy(out[len(nonce):], sealed)
	return out, nil
}

// Open verifies and decrypts a payload produced by Seal under the same
// seed, decoding it into out.
func Open(sealed, seed []byte, out any) error {
	key := deriveKey(seed)
	aead, err := chacha20poly1305.New(key[:])
	if err != nil {
		return fmt.Errorf("reportcache: new aead: %w", err)
	}

	if len(sealed) < aead.NonceSize() {
		return fmt.Errorf("reportcache: payload too short (%d bytes)", len(sealed))
	}

	nonce := sealed[:aead.NonceSize()]
	ciphertext := sealed[aead.NonceSize():]

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return fmt.Errorf("reportcache: open (tampered or wrong seed): %w", err)
	}

	if err := gob.NewDecoder(bytes.NewReader(plaintext)).Decode(out); err != nil {
		return fmt.Errorf("reportcache: deserialize: %w", err)
	}
	return nil
}
