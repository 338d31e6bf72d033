package aes128

// RoundKeys holds the 11 round keys (176 bytes) produced by AES-128 key
// expansion.
type RoundKeys [11][16]byte

// word is a 4-byte AES key-schedule word.
type word [4]byte

// rotWord rotates a word left by one byte: [a,b,c,d] -> [b,c,d,a].
func rotWord(w word) word {
	return word{w[1], w[2], w[3], w[0]}
}

// subWord applies the active sbox to every byte of a word.
func subWord(w word, sbox [256]byte) word {
	return word{sbox[w[0]], sbox[w[1]], sbox[w[2]], sbox[w[3]]}
}

// rcon computes the round constant word for round k (1-indexed): rc_1 = 1,
// rc_{k+1} = xtime(rc_k), packed as (rc_k, 0, 0, 0).
func rcon(k int) word {
	rc := byte(1)
	for i := 1; i < k; i++ {
		rc = xtime(rc)
	}
	return word{rc, 0, 0, 0}
}

// ExpandKey runs the AES-128 key expansion, producing 44 words (11 round
// keys) from a 16-byte master key, using sbox in the SubWord step.
func ExpandKey(key [16]byte, sbox [256]byte) RoundKeys {
	var w [44]word
	for i := 0; i < 4; i++ {
		w[i] = word{key[4*i], key[4*i+1], key[4*i+2], key[4*i+3]}
	}
	for i := 4; i < 44; i++ {
		temp := w[i-1]
		if i%4 == 0 {
			temp = subWord(rotWord(temp), sbox)
			rc := rcon(i / 4)
			temp = word{temp[0] ^ rc[0], temp[1] ^ rc[1], temp[2] ^ rc[2], temp[3] ^ rc[3]}
		}
		w[i] = word{
			w[i-4][0] ^ temp[0],
			w[i-4][1] ^ temp[1],
			w[i-4][2] ^ temp[2],
			w[i-4][3] ^ temp[3],
		}
	}

	var rks RoundKeys
	for round := 0; round < 11; round++ {
		for i := 0; i < 4; i++ {
			wd := w[round*4+i]
			copy(rks[round][4*i:4*i+4], wd[:])
		}
	}
	return rks
}
