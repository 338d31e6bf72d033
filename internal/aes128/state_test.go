package aes128

import "testing"

func TestLoadStateColumnMajor(t *testing.T) {
	var block [16]byte
	for i := range block {
		block[i] = byte(i)
	}
	s := LoadState(block)
	// byte k lands at row k%4, column k/4.
	for k := 0; k < 16; k++ {
		if s[k%4][k/4] != byte(k) {
			t.Fatalf("byte %d landed at wrong position", k)
		}
	}
	if s.Bytes() != block {
		t.Fatalf("Bytes() did not invert LoadState")
	}
}

func TestShiftRowsInverse(t *testing.T) {
	var block [16]byte
	for i := range block {
		block[i] = byte(i * 7)
	}
	s := LoadState(block)
	orig := s
	s.ShiftRows()
	s.InvShiftRows()
	if s != orig {
		t.Fatalf("InvShiftRows did not invert ShiftRows")
	}
}

func TestMixColumnsInverse(t *testing.T) {
	var block [16]byte
	for i := range block {
		block[i] = byte(i * 13)
	}
	s := LoadState(block)
	orig := s
	s.MixColumns()
	s.InvMixColumns()
	if s != orig {
		t.Fatalf("InvMixColumns did not invert MixColumns")
	}
}

func TestAddRoundKeyIsSelfInverse(t *testing.T) {
	var block, rk [16]byte
	for i := range block {
		block[i] = byte(i * 3)
		rk[i] = byte(i * 5)
	}
	s := LoadState(block)
	s.AddRoundKey(rk)
	s.AddRoundKey(rk)
	if s.Bytes() != block {
		t.Fatalf("AddRoundKey twice did not recover original state")
	}
}

func TestSubBytesWithInverse(t *testing.T) {
	sbox := StandardSBox
	inv := InvertSBox(sbox)

	var block [16]byte
	for i := range block {
		block[i] = byte(i * 17)
	}
	s := LoadState(block)
	s.SubBytes(sbox)
	s.SubBytes(inv)
	if s.Bytes() != block {
		t.Fatalf("SubBytes with inverse sbox did not recover original state")
	}
}

func TestXtimeKnownValues(t *testing.T) {
	// From FIPS-197: xtime(0x57) = 0xae, xtime(0xae) = 0x47.
	if got := xtime(0x57); got != 0xae {
		t.Errorf("xtime(0x57) = %#x, want 0xae", got)
	}
	if got := xtime(0xae); got != 0x47 {
		t.Errorf("xtime(0xae) = %#x, want 0x47", got)
	}
}

func TestGmulKnownValue(t *testing.T) {
	// From FIPS-197 4.2.1: 0x57 * 0x83 = 0xc1.
	if got := gmul(0x57, 0x83); got != 0xc1 {
		t.Errorf("gmul(0x57, 0x83) = %#x, want 0xc1", got)
	}
}
