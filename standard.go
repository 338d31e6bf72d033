package sboxkit

import "github.com/nullsbox/sboxkit/internal/aes128"

// StandardSBox is the S-box defined by FIPS-197, the substitution table
// used by standard AES-128/192/256. It is provided so callers and tests
// have a known-good permutation to analyse or encrypt with without
// depending on crypto/aes.
var StandardSBox = aes128.StandardSBox
