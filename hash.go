package fflonk

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/crypto/sha3"
)

// maxTranscriptWords is the length of the longest single absorb call in the
// verifier (the alpha challenge absorbs 16 scalars). It is not a protocol
// limit, and hashToFr does not check its argument count against it.
const maxTranscriptWords = 16

// hashToFr concatenates each word as 32 bytes big-endian, Keccak-256s the
// result, and reduces the digest mod r. This is the Solidity/SnarkJS
// `keccak256(...) % r` idiom and must stay bit-exact: no padding, no
// little-endian, no domain separator.
func hashToFr(words ...*big.Int) fr.Element {
	h := sha3.NewLegacyKeccak256()
	var buf [32]byte
	for _, w := range words {
		buf = [32]byte{}
		w.FillBytes(buf[:])
		h.Write(buf[:])
	}
	digest := h.Sum(nil)

	var out fr.Element
	out.SetBigInt(new(big.Int).SetBytes(digest))
	return out
}
