package aes128

// InvertSBox inverts permutation sbox, so that inv[sbox[x]] == x for all x.
// Computed once per decryption; the caller's sbox is not modified.
func InvertSBox(sbox [256]byte) [256]byte {
	var inv [256]byte
	for x, y := range sbox {
		inv[y] = byte(x)
	}
	return inv
}
